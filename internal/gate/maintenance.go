package gate

import (
	"net/http"
	"strconv"
	"time"

	"portfolio/internal/logger"
	"portfolio/internal/reqctx"
	"portfolio/internal/settings"
	"portfolio/internal/utils/helpers"

	"go.uber.org/zap"
)

const (
	DefaultMaintenanceMessage = "The site is under maintenance. Please check back soon."
	RetryAfter                = time.Hour
)

// MaintenanceNotice: тело ответа 503.
type MaintenanceNotice struct {
	Maintenance bool   `json:"maintenance"`
	Message     string `json:"message"`
	SiteTitle   string `json:"site_title,omitempty"`
}

// Maintenance отвечает 503 всем, кроме администратора, пока maintenance_mode == "true".
// Читает снимок настроек из контекста, поэтому стоит после middleware.Settings и OptionalAuth.
func Maintenance(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := reqctx.Settings(r.Context())
		if !s.Enabled(settings.KeyMaintenanceMode) || reqctx.IsAdmin(r.Context()) {
			next.ServeHTTP(w, r)
			return
		}

		logger.WithCtx(r.Context()).Debug("maintenance: запрос остановлен", zap.String("path", r.URL.Path))

		w.Header().Set("Retry-After", strconv.Itoa(int(RetryAfter.Seconds())))
		w.Header().Set("Cache-Control", "no-store")
		helpers.JSON(w, http.StatusServiceUnavailable, MaintenanceNotice{
			Maintenance: true,
			Message:     s.Get(settings.KeyMaintenanceMessage, DefaultMaintenanceMessage),
			SiteTitle:   s.Get(settings.KeySiteTitle, ""),
		})
	})
}
