package gate

import (
	"context"
	"net/http"
	"strings"

	"portfolio/internal/logger"
	"portfolio/internal/models"

	"go.uber.org/zap"
)

type RedirectSource interface {
	Enabled(ctx context.Context) []models.Redirect
}

// Match ищет первый редирект с точным совпадением from_path. Записи, ведущие сами на себя, пропускаются.
func Match(list []models.Redirect, path string) (models.Redirect, bool) {
	for _, rd := range list {
		if rd.FromPath == path && rd.ToPath != rd.FromPath {
			return rd, true
		}
	}
	return models.Redirect{}, false
}

// Status: 301 для постоянного редиректа, 302 для временного.
func Status(rd models.Redirect) int {
	if rd.Permanent {
		return http.StatusMovedPermanently
	}
	return http.StatusFound
}

// Target: куда вести. Query исходного запроса сохраняется, если у цели своего нет.
func Target(rd models.Redirect, rawQuery string) string {
	if rawQuery == "" || strings.Contains(rd.ToPath, "?") {
		return rd.ToPath
	}
	return rd.ToPath + "?" + rawQuery
}

// Redirects перенаправляет GET и HEAD запросы по таблице редиректов до маршрутизации.
func Redirects(src RedirectSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			rd, ok := Match(src.Enabled(r.Context()), r.URL.Path)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			target := Target(rd, r.URL.RawQuery)
			logger.WithCtx(r.Context()).Debug("redirect",
				zap.String("from", r.URL.Path), zap.String("to", target), zap.Int("status", Status(rd)))
			http.Redirect(w, r, target, Status(rd))
		})
	}
}
