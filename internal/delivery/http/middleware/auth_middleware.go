package middleware

import (
	"context"
	"net/http"

	"rajaprint-backend/internal/domain"
	"rajaprint-backend/pkg/utils"
)

// userFromRequest builds the caller's identity from a verified token. The
// token claims are trusted as-is; no store lookup happens per request.
func userFromRequest(r *http.Request) (*domain.User, error) {
	claims, err := utils.ExtractClaims(r)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if utils.TokenFromRequest(r) == "" {
			utils.WriteError(w, http.StatusUnauthorized, "Unauthorized: No token provided")
			return
		}

		user, err := userFromRequest(r)
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), domain.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attaches the user when a valid token is present and lets
// anonymous requests through untouched. A bad token is treated as absent.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, err := userFromRequest(r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), domain.UserContextKey, user))
		}
		next.ServeHTTP(w, r)
	})
}
