package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"portfolio/internal/fetch"
	"portfolio/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// LoadFunc читает свежие данные из источника (БД).
type LoadFunc[T any] func(ctx context.Context) (T, error)

type Options struct {
	// Key: имя записи в Store и ключ singleflight.
	Key string
	// TTL задаёт окно свежести; внутри него значение отдаётся из памяти без обращений к источнику.
	TTL time.Duration
	// MaxStale: до этого возраста устаревшее значение отдаётся сразу, а обновление идёт в фоне.
	MaxStale time.Duration
	// LoadTimeout ограничивает чтение источника. Чтение идёт в отвязанном от запроса контексте.
	LoadTimeout time.Duration
	// Store: необязательный общий второй уровень (Redis).
	Store Store
}

// envelope лежит во втором уровне: значение и время его чтения из источника.
type envelope[T any] struct {
	Value     T         `json:"value"`
	FetchedAt time.Time `json:"fetched_at"`
}

// SWR: stale-while-revalidate кеш одного значения.
type SWR[T any] struct {
	opts Options
	load LoadFunc[T]
	now  func() time.Time

	group      singleflight.Group
	refreshing atomic.Bool
	bg         sync.WaitGroup

	mu        sync.RWMutex
	value     T
	fetchedAt time.Time
	has       bool
	gen       uint64
}

func NewSWR[T any](opts Options, load func(ctx context.Context) (T, error)) *SWR[T] {
	if opts.TTL <= 0 {
		opts.TTL = 5 * time.Minute
	}
	if opts.MaxStale < opts.TTL {
		opts.MaxStale = opts.TTL
	}
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = 5 * time.Second
	}
	return &SWR[T]{opts: opts, load: load, now: time.Now}
}

// Get отдаёт значение по правилам stale-while-revalidate.
// Свежее отдаётся сразу. Устаревшее в пределах MaxStale тоже сразу, со Stale=true и фоновым обновлением.
// Иначе: синхронное чтение; при ошибке отдаётся прежнее значение (если было) со Stale=true и Err.
func (c *SWR[T]) Get(ctx context.Context) fetch.Result[T] {
	c.mu.RLock()
	value, at, has := c.value, c.fetchedAt, c.has
	c.mu.RUnlock()

	if has {
		age := c.now().Sub(at)
		if age < c.opts.TTL {
			return fetch.OK(value)
		}
		if age < c.opts.MaxStale {
			c.refreshAsync()
			return fetch.Result[T]{Data: value, Stale: true}
		}
	}

	fresh, err := c.fetch(ctx, true)
	if err != nil {
		if has {
			return fetch.Result[T]{Data: value, Stale: true, Err: err}
		}
		var zero T
		return fetch.Fail(err, zero)
	}
	return fetch.OK(fresh)
}

// Refresh перечитывает источник в обход второго уровня и обновляет оба уровня.
func (c *SWR[T]) Refresh(ctx context.Context) error {
	_, err := c.fetch(ctx, false)
	return err
}

// Invalidate сбрасывает значение. Чтение, начатое до сброса, результат уже не сохранит.
func (c *SWR[T]) Invalidate(ctx context.Context) {
	c.mu.Lock()
	var zero T
	c.value, c.has, c.fetchedAt = zero, false, time.Time{}
	c.gen++
	c.mu.Unlock()

	if c.opts.Store != nil {
		if err := c.opts.Store.Delete(ctx, c.opts.Key); err != nil {
			logger.WithCtx(ctx).Warn("cache: не удалось удалить ключ во втором уровне",
				zap.String("key", c.opts.Key), zap.Error(err))
		}
	}
}

// Wait дожидается фоновых обновлений (для остановки сервиса и тестов).
func (c *SWR[T]) Wait() { c.bg.Wait() }

func (c *SWR[T]) refreshAsync() {
	if !c.refreshing.CompareAndSwap(false, true) {
		return
	}
	c.bg.Add(1)
	go func() {
		defer c.bg.Done()
		defer c.refreshing.Store(false)
		if _, err := c.fetch(context.Background(), true); err != nil {
			logger.Log.Warn("cache: фоновое обновление не удалось, остаётся устаревшее значение",
				zap.String("key", c.opts.Key), zap.Error(err))
		}
	}()
}

func (c *SWR[T]) fetch(ctx context.Context, useStore bool) (T, error) {
	c.mu.RLock()
	gen := c.gen
	c.mu.RUnlock()

	flightKey := fmt.Sprintf("%s#%d#%t", c.opts.Key, gen, useStore)
	v, err, _ := c.group.Do(flightKey, func() (interface{}, error) {
		// общий полёт не должен падать из-за отмены запроса, который его начал
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.LoadTimeout)
		defer cancel()

		if useStore && c.opts.Store != nil {
			var env envelope[T]
			if err := c.opts.Store.GetJSON(loadCtx, c.opts.Key, &env); err == nil && c.now().Sub(env.FetchedAt) < c.opts.TTL {
				c.store(gen, env.Value, env.FetchedAt)
				return env.Value, nil
			}
		}

		fresh, err := c.load(loadCtx)
		if err != nil {
			return fresh, err
		}
		at := c.now()
		// чтение, пережившее Invalidate, не должно вернуть старые строки во второй уровень
		if !c.store(gen, fresh, at) {
			return fresh, nil
		}
		if c.opts.Store != nil {
			if err := c.opts.Store.SetJSON(loadCtx, c.opts.Key, envelope[T]{Value: fresh, FetchedAt: at}, c.opts.TTL); err != nil {
				logger.Log.Warn("cache: не удалось записать второй уровень", zap.String("key", c.opts.Key), zap.Error(err))
			} else if !c.current(gen) {
				// Invalidate успел между store и SetJSON: его Delete мог пройти раньше нашей записи
				_ = c.opts.Store.Delete(loadCtx, c.opts.Key)
			}
		}
		return fresh, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (c *SWR[T]) current(gen uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return gen == c.gen
}

// store сохраняет значение, только если с начала чтения не было Invalidate.
func (c *SWR[T]) store(gen uint64, value T, at time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.value, c.fetchedAt, c.has = value, at, true
	return true
}
