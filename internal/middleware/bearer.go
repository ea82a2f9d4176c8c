package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/laplogger/internal/logger"
)

// TokenValidator проверяет bearer-токен (service.AuthService).
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (int64, error)
}

// BearerAuth пропускает только запросы с "Authorization: Bearer <token>" и валидным токеном, иначе 401.
func BearerAuth(v TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, `{"error":"authorization header required"}`, http.StatusUnauthorized)
				return
			}
			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || scheme != "Bearer" || token == "" {
				http.Error(w, `{"error":"invalid authorization header format"}`, http.StatusUnauthorized)
				return
			}
			userID, err := v.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Debugf("bearer auth %s %s token=%s: %v", r.Method, r.URL.Path, MaskToken(token), err)
				http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
