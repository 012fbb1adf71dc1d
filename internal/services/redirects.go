package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio/internal/cache"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repository"

	"go.uber.org/zap"
)

const redirectsCacheKey = "redirects:enabled"

type RedirectService struct {
	repo  repository.RedirectRepo
	cache *cache.SWR[[]models.Redirect]
}

func NewRedirectService(repo repository.RedirectRepo, opts cache.Options) *RedirectService {
	if opts.Key == "" {
		opts.Key = redirectsCacheKey
	}
	return &RedirectService{
		repo:  repo,
		cache: cache.NewSWR(opts, repo.ListEnabled),
	}
}

// Enabled: включённые редиректы в порядке создания. Если таблица недоступна,
// отдаётся то, что есть в кеше (или пусто), и сайт работает без редиректов.
func (s *RedirectService) Enabled(ctx context.Context) []models.Redirect {
	res := s.cache.Get(ctx)
	if res.Err != nil {
		logger.WithCtx(ctx).Warn("redirects: не удалось получить таблицу редиректов", zap.Error(res.Err), zap.Bool("stale", res.Stale))
	}
	return res.Data
}

func (s *RedirectService) Warm(ctx context.Context) error { return s.cache.Refresh(ctx) }

func (s *RedirectService) Wait() { s.cache.Wait() }

func (s *RedirectService) List(ctx context.Context) ([]models.Redirect, error) {
	return s.repo.List(ctx)
}

func (s *RedirectService) Create(ctx context.Context, req models.RedirectRequest) (*models.Redirect, error) {
	log := logger.WithCtx(ctx)

	rd, err := fromRedirectRequest(req, true)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &rd); err != nil {
		log.Error("redirects: ошибка создания (repo)", zap.String("from", rd.FromPath), zap.Error(err))
		return nil, err
	}
	s.cache.Invalidate(ctx)

	log.Info("redirects: редирект создан", zap.String("from", rd.FromPath), zap.String("to", rd.ToPath), zap.Bool("permanent", rd.Permanent))
	return &rd, nil
}

func (s *RedirectService) Update(ctx context.Context, id string, req models.RedirectRequest) (*models.Redirect, error) {
	log := logger.WithCtx(ctx)

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rd, err := fromRedirectRequest(req, current.Enabled)
	if err != nil {
		return nil, err
	}
	rd.ID = id
	if err := s.repo.Update(ctx, &rd); err != nil {
		log.Error("redirects: ошибка обновления (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	s.cache.Invalidate(ctx)

	log.Info("redirects: редирект обновлён", zap.String("id", id))
	return &rd, nil
}

func (s *RedirectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.WithCtx(ctx).Error("redirects: ошибка удаления (repo)", zap.String("id", id), zap.Error(err))
		}
		return err
	}
	s.cache.Invalidate(ctx)
	logger.WithCtx(ctx).Info("redirects: редирект удалён", zap.String("id", id))
	return nil
}

func fromRedirectRequest(req models.RedirectRequest, enabled bool) (models.Redirect, error) {
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	rd := models.Redirect{
		FromPath:  strings.TrimSpace(req.FromPath),
		ToPath:    strings.TrimSpace(req.ToPath),
		Permanent: req.Permanent,
		Enabled:   enabled,
	}
	if rd.FromPath == rd.ToPath {
		return rd, fmt.Errorf("%w: redirect from %s to itself", ErrValidation, rd.FromPath)
	}
	return rd, nil
}
