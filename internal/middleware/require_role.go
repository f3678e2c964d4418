package middleware

import (
	"net/http"

	"github.com/SupremeBender/ajac-website/internal/auth"
)

// RequireRole gates a route group on a role name from the caller's claims.
// API key callers bypass the check: the bot enforces its own permissions.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())
			if claims == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if claims.Source() != "API_KEY" && !claims.HasRole(role) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
