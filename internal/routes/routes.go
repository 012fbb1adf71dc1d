package routes

import (
	"net/http"

	"portfolio/internal/gate"
	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/reqctx"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Navigation *handlers.NavigationHandler
	Settings   *handlers.SettingsHandler
	Pages      *handlers.PageHandler
	Redirects  *handlers.RedirectHandler
	Logs       *handlers.AdminLogsHandler
	Health     *handlers.HealthHandler
}

type Gates struct {
	JWTSecret string
	Settings  middleware.SettingsLoader
	Redirects gate.RedirectSource
}

// Служебные пути, которые не закрываются техработами и не перенаправляются.
var reserved = []string{"/api/login", "/api/admin", "/healthz", "/swagger/"}

// InitRoutes регистрирует маршруты и возвращает корневой обработчик.
// Гейты стоят снаружи роутера: mux запускает свои middleware только после совпадения маршрута,
// а редирект должен сработать и для пути, которого в таблице нет.
func InitRoutes(router *mux.Router, h Handlers, g Gates) http.Handler {
	router.HandleFunc("/healthz", h.Health.Healthz).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/navigation", h.Navigation.Public).Methods(http.MethodGet)
	api.HandleFunc("/settings", h.Settings.Public).Methods(http.MethodGet)
	api.HandleFunc("/pages/{slug}", h.Pages.Get).Methods(http.MethodGet)

	// --- Админка ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.JWTAuth(g.JWTSecret))

	admin.Handle("/me", middleware.AnyRole(reqctx.RoleAdmin, "editor")(http.HandlerFunc(h.Auth.Me))).Methods(http.MethodGet)

	content := admin.NewRoute().Subrouter()
	content.Use(middleware.OnlyRole(reqctx.RoleAdmin))

	content.HandleFunc("/navigation", h.Navigation.List).Methods(http.MethodGet)
	content.HandleFunc("/navigation", h.Navigation.Create).Methods(http.MethodPost)
	content.HandleFunc("/navigation/tree", h.Navigation.Tree).Methods(http.MethodGet)
	content.HandleFunc("/navigation/{id}", h.Navigation.Update).Methods(http.MethodPatch)
	content.HandleFunc("/navigation/{id}", h.Navigation.Delete).Methods(http.MethodDelete)

	content.HandleFunc("/settings", h.Settings.Grouped).Methods(http.MethodGet)
	content.HandleFunc("/settings", h.Settings.Create).Methods(http.MethodPost)
	content.HandleFunc("/settings/{id}", h.Settings.Update).Methods(http.MethodPatch)
	content.HandleFunc("/settings/{id}", h.Settings.Delete).Methods(http.MethodDelete)

	content.HandleFunc("/pages", h.Pages.List).Methods(http.MethodGet)
	content.HandleFunc("/pages", h.Pages.Create).Methods(http.MethodPost)
	content.HandleFunc("/pages/preview", h.Pages.Preview).Methods(http.MethodPost)
	content.HandleFunc("/pages/{id}", h.Pages.Update).Methods(http.MethodPatch)
	content.HandleFunc("/pages/{id}", h.Pages.Delete).Methods(http.MethodDelete)

	content.HandleFunc("/redirects", h.Redirects.List).Methods(http.MethodGet)
	content.HandleFunc("/redirects", h.Redirects.Create).Methods(http.MethodPost)
	content.HandleFunc("/redirects/{id}", h.Redirects.Update).Methods(http.MethodPatch)
	content.HandleFunc("/redirects/{id}", h.Redirects.Delete).Methods(http.MethodDelete)

	content.HandleFunc("/logs/days", h.Logs.ListDays).Methods(http.MethodGet)
	content.HandleFunc("/logs", h.Logs.GetLogs).Methods(http.MethodGet)

	return middleware.Chain(router,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logging,
		middleware.Except(reserved, middleware.OptionalAuth(g.JWTSecret)),
		middleware.Except(reserved, middleware.Settings(g.Settings)),
		middleware.Except(reserved, gate.Maintenance),
		middleware.Except(reserved, gate.Redirects(g.Redirects)),
	)
}
