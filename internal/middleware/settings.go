package middleware

import (
	"context"
	"net/http"

	"portfolio/internal/fetch"
	"portfolio/internal/reqctx"
	"portfolio/internal/settings"
)

type SettingsLoader interface {
	Load(ctx context.Context) fetch.Result[settings.Settings]
}

// Settings читает настройки один раз на запрос и кладёт снимок в контекст.
// Ошибка чтения не прерывает запрос: дальше по цепочке все ключи отдают дефолты.
func Settings(loader SettingsLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := loader.Load(r.Context())
			next.ServeHTTP(w, r.WithContext(reqctx.WithSettings(r.Context(), res.Data)))
		})
	}
}
