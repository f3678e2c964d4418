package api

import (
	"net/http"
	"time"

	"github.com/SupremeBender/ajac-website/internal/auth"
	"github.com/SupremeBender/ajac-website/internal/common"
	"github.com/SupremeBender/ajac-website/internal/db/repositories"
	"github.com/SupremeBender/ajac-website/internal/services"
)

// SessionHandler handles POST /api/v1/auth/session. The bot calls this with
// its API key after a user authenticates on Discord; the response carries a
// session token the web client uses from then on.
func SessionHandler(identity *services.IdentityService, users *repositories.UserRepository, sessionSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		userID := claims.UserID()

		displayName, roles := identity.Resolve(r.Context(), userID)
		if displayName == "" {
			displayName = services.CleanDisplayName(claims.DisplayName())
		}

		if _, err := users.Upsert(r.Context(), userID, displayName); err != nil {
			common.RespondError(w, initTime, err, "Failed to register user")
			return
		}

		token, err := auth.MintSessionToken(sessionSecret, userID, displayName, roles)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to mint session token")
			return
		}

		common.RespondSuccess(w, initTime, "Session created", map[string]any{
			"token":        token,
			"display_name": displayName,
			"roles":        roles,
		})
	}
}

// MeHandler handles GET /api/v1/auth/me
func MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		common.RespondSuccess(w, initTime, "Identity", map[string]any{
			"user_id":      claims.UserID(),
			"display_name": claims.DisplayName(),
			"roles":        claims.Roles(),
			"source":       claims.Source(),
		})
	}
}
