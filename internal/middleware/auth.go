package middleware

import (
	"context"
	"net/http"
	"strings"

	"portfolio/internal/logger"
	"portfolio/internal/reqctx"
	"portfolio/internal/utils"
	"portfolio/internal/utils/helpers"

	"go.uber.org/zap"
)

// JWTAuth требует валидный access token и кладёт user_id и role в контекст.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			tokenString, ok := bearerToken(r)
			if !ok {
				logger.WithCtx(r.Context()).Warn("JWTAuth: отсутствует access token")
				helpers.Error(w, http.StatusUnauthorized, "Отсутствует access token")
				return
			}

			claims, err := utils.ParseToken(secret, tokenString)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("JWTAuth: неверный или просроченный токен", zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, "Неверный или просроченный токен")
				return
			}

			ctx := withClaims(r.Context(), claims)
			logger.WithCtx(ctx).Debug("JWTAuth: токен валиден", zap.String("role", claims.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth разбирает токен, если он есть и валиден, и никогда не отказывает.
// Нужен публичным маршрутам, которые ведут себя иначе для администратора.
func OptionalAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenString, ok := bearerToken(r); ok {
				if claims, err := utils.ParseToken(secret, tokenString); err == nil {
					r = r.WithContext(withClaims(r.Context(), claims))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

func withClaims(ctx context.Context, claims *utils.Claims) context.Context {
	ctx = reqctx.WithUserID(ctx, claims.UserID)
	return reqctx.WithRole(ctx, claims.Role)
}
