package app

import (
	"context"
	"net/http"

	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/handlers"
	"portfolio/internal/logger"
	"portfolio/internal/repository"
	"portfolio/internal/routes"
	"portfolio/internal/services"
	"portfolio/internal/utils/validation"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App собирает приложение: корневой обработчик и то, что нужно закрыть при остановке.
type App struct {
	Handler http.Handler

	pool       *pgxpool.Pool
	redis      *cache.RedisCache
	warmer     *CacheWarmer
	navigation *services.NavigationService
	redirects  *services.RedirectService
}

func InitApp(ctx context.Context, cfg *config.Config) (*App, error) {
	conn, err := db.NewPostgresConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	// Redis необязателен: без него каждый инстанс держит только свой кеш в памяти.
	var store cache.Store
	var redisCache *cache.RedisCache
	if cfg.RedisURL != "" {
		redisCache, err = cache.NewRedisCache(cfg.RedisURL, "portfolio:")
		if err != nil {
			logger.Log.Warn("Redis недоступен, работаем без второго уровня кеша", zap.Error(err))
		} else {
			store = redisCache
			logger.Log.Info("Redis подключён")
		}
	}
	cacheOpts := cache.Options{
		TTL:      cfg.NavCacheTTLDuration(),
		MaxStale: cfg.NavCacheMaxStaleDuration(),
		Store:    store,
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	navRepo := repository.NewNavigationRepo(conn)
	settingsRepo := repository.NewSettingsRepo(conn)
	pageRepo := repository.NewPageRepo(conn)
	redirectRepo := repository.NewRedirectRepo(conn)

	// Сервисы
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenDuration())
	navService := services.NewNavigationService(navRepo, cacheOpts)
	settingsService := services.NewSettingsService(settingsRepo)
	pageService := services.NewPageService(pageRepo)
	redirectService := services.NewRedirectService(redirectRepo, cacheOpts)

	if err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Log.Error("Не удалось создать администратора", zap.Error(err))
	}

	// Хендлеры
	v := validation.NewValidator()
	h := routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService, v),
		Navigation: handlers.NewNavigationHandler(navService, v),
		Settings:   handlers.NewSettingsHandler(settingsService, v),
		Pages:      handlers.NewPageHandler(pageService, v),
		Redirects:  handlers.NewRedirectHandler(redirectService, v),
		Logs:       handlers.NewAdminLogsHandler(cfg.LogDir),
		Health:     handlers.NewHealthHandler(conn),
	}
	g := routes.Gates{
		JWTSecret: cfg.JWTSecret,
		Settings:  settingsService,
		Redirects: redirectService,
	}

	warmer := NewCacheWarmer(map[string]Warmable{
		"navigation": navService,
		"redirects":  redirectService,
	})
	warmer.WarmAll()
	if err := warmer.Start(cfg.CacheWarmSpec); err != nil {
		logger.Log.Error("Неверное расписание прогрева кеша", zap.String("spec", cfg.CacheWarmSpec), zap.Error(err))
	}

	// Маршруты
	router := mux.NewRouter()
	handler := routes.InitRoutes(router, h, g)

	return &App{
		Handler:    handler,
		pool:       conn,
		redis:      redisCache,
		warmer:     warmer,
		navigation: navService,
		redirects:  redirectService,
	}, nil
}

// Close останавливает фоновые задачи и закрывает соединения. Вызывается после остановки HTTP-сервера.
func (a *App) Close() {
	a.warmer.Stop()
	a.navigation.Wait()
	a.redirects.Wait()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.Log.Warn("Ошибка закрытия Redis", zap.Error(err))
		}
	}
	a.pool.Close()
}
