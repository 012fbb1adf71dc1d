package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio/internal/fetch"
	"portfolio/internal/handlers"
	"portfolio/internal/models"
	"portfolio/internal/settings"
	"portfolio/internal/utils"
	"portfolio/internal/utils/validation"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

const secret = "routes-secret"

type staticSettings map[string]string

func (s staticSettings) Load(context.Context) fetch.Result[settings.Settings] {
	return fetch.OK(settings.FromMap(s))
}

type staticRedirects []models.Redirect

func (s staticRedirects) Enabled(context.Context) []models.Redirect { return s }

type emptyNav struct{ handlers.NavigationService }

func (emptyNav) PublicTree(context.Context) fetch.Result[[]models.NavNode] {
	return fetch.OK([]models.NavNode{})
}

type emptyRedirects struct{ handlers.RedirectService }

func (emptyRedirects) List(context.Context) ([]models.Redirect, error) { return []models.Redirect{}, nil }

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRouter(values staticSettings) http.Handler {
	v := validation.NewValidator()
	h := Handlers{
		Auth:       handlers.NewAuthHandler(nil, v),
		Navigation: handlers.NewNavigationHandler(emptyNav{}, v),
		Settings:   handlers.NewSettingsHandler(nil, v),
		Pages:      handlers.NewPageHandler(nil, v),
		Redirects:  handlers.NewRedirectHandler(emptyRedirects{}, v),
		Logs:       handlers.NewAdminLogsHandler("logs"),
		Health:     handlers.NewHealthHandler(okPinger{}),
	}
	g := Gates{
		JWTSecret: secret,
		Settings:  values,
		Redirects: staticRedirects{{FromPath: "/blog", ToPath: "/research", Permanent: true, Enabled: true}},
	}
	return InitRoutes(mux.NewRouter(), h, g)
}

func do(h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func adminToken(t *testing.T) string {
	tok, _, err := utils.GenerateToken(secret, "u-1", "admin", time.Hour)
	assert.NoError(t, err)
	return tok
}

func TestPublicRoutes(t *testing.T) {
	h := newTestRouter(staticSettings{"site_title": "Jane"})

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/navigation", "").Code)
	rec := do(h, http.MethodGet, "/api/settings", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jane")
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/healthz", "").Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRedirectBeforeRouting(t *testing.T) {
	h := newTestRouter(nil)

	rec := do(h, http.MethodGet, "/blog", "")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/research", rec.Header().Get("Location"))

	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/nothing-here", "").Code)
}

func TestMaintenanceGate(t *testing.T) {
	h := newTestRouter(staticSettings{"maintenance_mode": "true"})

	assert.Equal(t, http.StatusServiceUnavailable, do(h, http.MethodGet, "/api/navigation", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(h, http.MethodGet, "/blog", "").Code, "maintenance wins over redirects")
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/navigation", adminToken(t)).Code, "admin previews the site")
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/admin/redirects", adminToken(t)).Code)
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	h := newTestRouter(nil)

	assert.Equal(t, http.StatusUnauthorized, do(h, http.MethodGet, "/api/admin/redirects", "").Code)

	editor, _, err := utils.GenerateToken(secret, "u-2", "editor", time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, do(h, http.MethodGet, "/api/admin/redirects", editor).Code)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/admin/redirects", adminToken(t)).Code)
}
