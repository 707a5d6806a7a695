package http

import (
	"net/http"

	"github.com/WNVissie/BurgundyRoster/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// actorID extracts the authenticated employee's ID from the JWT claims.
func actorID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}
