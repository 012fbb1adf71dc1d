package app

import (
	"context"
	"time"

	"portfolio/internal/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Warmable: кеш, который можно перечитать заранее.
type Warmable interface {
	Warm(ctx context.Context) error
}

// CacheWarmer по расписанию перечитывает кеши меню и редиректов,
// чтобы публичные запросы не попадали на холодный кеш.
type CacheWarmer struct {
	cron    *cron.Cron
	targets map[string]Warmable
	timeout time.Duration
}

func NewCacheWarmer(targets map[string]Warmable) *CacheWarmer {
	return &CacheWarmer{
		cron:    cron.New(),
		targets: targets,
		timeout: 10 * time.Second,
	}
}

// Start регистрирует задачу и запускает планировщик. Пустой spec или "off" выключает прогрев.
func (w *CacheWarmer) Start(spec string) error {
	if spec == "" || spec == "off" {
		logger.Log.Info("Прогрев кеша выключен")
		return nil
	}
	if _, err := w.cron.AddFunc(spec, w.WarmAll); err != nil {
		return err
	}
	w.cron.Start()
	logger.Log.Info("Прогрев кеша запущен", zap.String("spec", spec))
	return nil
}

// WarmAll перечитывает все кеши. Ошибка одного не мешает остальным.
func (w *CacheWarmer) WarmAll() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	for name, t := range w.targets {
		if err := t.Warm(ctx); err != nil {
			logger.Log.Warn("Прогрев кеша не удался", zap.String("cache", name), zap.Error(err))
			continue
		}
		logger.Log.Debug("Кеш прогрет", zap.String("cache", name))
	}
}

// Stop останавливает планировщик и ждёт выполняющуюся задачу.
func (w *CacheWarmer) Stop() {
	<-w.cron.Stop().Done()
}
