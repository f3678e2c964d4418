package middleware

import (
	"net/http"
	"strings"

	"github.com/SupremeBender/ajac-website/internal/auth"
	"github.com/SupremeBender/ajac-website/internal/db/repositories"
	"github.com/SupremeBender/ajac-website/internal/logging"
)

// AuthMiddleware resolves caller identity from a session cookie, a Bearer
// token, or an X-API-Key header, in that order. API keys identify trusted
// services (the Discord bot); the key carries no user identity, so the
// caller supplies it via X-Discord-Id.
func AuthMiddleware(sessionSecret string, keysRepo *repositories.KeysRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var claims auth.UserClaims

			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get("X-API-Key")
			cookie, _ := r.Cookie("session")

			switch {
			case cookie != nil && cookie.Value != "":
				c, err := auth.VerifySessionToken(sessionSecret, cookie.Value)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid session", http.StatusUnauthorized)
					return
				}
				claims = c

			case strings.HasPrefix(authHeader, "Bearer "):
				c, err := auth.VerifySessionToken(sessionSecret, strings.TrimPrefix(authHeader, "Bearer "))
				if err != nil {
					http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
					return
				}
				claims = c

			case apiKey != "":
				keyRes, err := keysRepo.GetStatus(r.Context(), apiKey)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid API Key", http.StatusUnauthorized)
					return
				}
				if !keyRes.Status {
					http.Error(w, "Unauthorized. Inactive API Key", http.StatusUnauthorized)
					return
				}

				userID := r.Header.Get("X-Discord-Id")
				if userID == "" {
					http.Error(w, "Unauthorized. Missing X-Discord-Id", http.StatusUnauthorized)
					return
				}
				claims = &auth.APIKeyClaims{
					DiscordID: userID,
					Name:      r.Header.Get("X-Discord-Name"),
				}

			default:
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			logging.Debug("Request authenticated",
				"user_id", claims.UserID(),
				"source", claims.Source(),
			)

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
