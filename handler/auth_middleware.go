package handler

import (
	"context"
	"hbnb-api/auth"
	"hbnb-api/common"
	"hbnb-api/service"
	"net/http"
	"strings"
)

type contextKey string

const (
	UserIDKey  contextKey = "userID"
	IsAdminKey contextKey = "isAdmin"
)

// TokenParser verifies access tokens.
type TokenParser interface {
	Parse(tokenString string) (*auth.Claims, error)
}

// NewAuthMiddleware rejects requests without a valid bearer token and stores
// the caller's identity in the request context.
func NewAuthMiddleware(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.Unauthorized("Authorization header is required", nil).Send(w)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				common.Unauthorized("Invalid authorization header format", nil).Send(w)
				return
			}

			claims, err := tokens.Parse(headerParts[1])
			if err != nil {
				common.Unauthorized("Invalid or expired token", nil).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.Subject)
			ctx = context.WithValue(ctx, IsAdminKey, claims.IsAdmin)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware must run after the auth middleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isAdmin, ok := r.Context().Value(IsAdminKey).(bool)
		if !ok || !isAdmin {
			common.Forbidden("Admin privileges required").Send(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// actorFrom reads the caller set by the auth middleware.
func actorFrom(r *http.Request) (service.Actor, *common.AppError) {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok || userID == "" {
		return service.Actor{}, common.Unauthorized("Invalid user ID in token", nil)
	}
	isAdmin, _ := r.Context().Value(IsAdminKey).(bool)
	return service.Actor{UserID: userID, IsAdmin: isAdmin}, nil
}
