package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"rootle-backend/internal/auth"
	"rootle-backend/utils/response"
)

type contextKey string

const UserContextKey contextKey = "user"

type AuthMiddleware struct {
	tokens *auth.Manager
}

func NewAuthMiddleware(tokens *auth.Manager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth verifies the caller's token and binds the authenticated
// username into the request context. Any verification failure
// short-circuits with 401.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := m.tokens.Verify(ExtractToken(r))
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrMissingToken):
				response.Error(w, http.StatusUnauthorized, response.KindMissingToken, "No token, authorization denied")
			case errors.Is(err, auth.ErrExpiredToken):
				response.Error(w, http.StatusUnauthorized, response.KindExpiredToken, "Token is expired")
			default:
				response.Error(w, http.StatusUnauthorized, response.KindInvalidToken, "Token is not valid")
			}
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ExtractToken pulls the bearer token from the request. The dedicated
// x-auth-token header carries the raw token and wins over the standard
// Authorization Bearer form when both are present.
func ExtractToken(r *http.Request) string {
	if token := r.Header.Get("x-auth-token"); token != "" {
		return token
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetUserFromContext returns the authenticated username bound by
// RequireAuth, or "" when the request was not authenticated.
func GetUserFromContext(ctx context.Context) string {
	username, ok := ctx.Value(UserContextKey).(string)
	if !ok {
		return ""
	}
	return username
}
