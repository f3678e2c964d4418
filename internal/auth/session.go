package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is how long a minted session token stays valid.
const SessionTTL = 24 * time.Hour

type sessionTokenClaims struct {
	DisplayName string   `json:"display_name"`
	Roles       []string `json:"roles"`
	jwt.RegisteredClaims
}

// MintSessionToken issues a signed session JWT for a Discord user.
func MintSessionToken(secret, discordID, displayName string, roles []string) (string, error) {
	now := time.Now()
	claims := sessionTokenClaims{
		DisplayName: displayName,
		Roles:       roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   discordID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySessionToken parses and validates a session JWT, returning the
// claims it carries.
func VerifySessionToken(secret, tokenString string) (*SessionClaims, error) {
	var claims sessionTokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return &SessionClaims{
		DiscordID: claims.Subject,
		Name:      claims.DisplayName,
		RoleNames: claims.Roles,
	}, nil
}
