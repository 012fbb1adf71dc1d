package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio/internal/cache"
	"portfolio/internal/fetch"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/navtree"
	"portfolio/internal/repository"

	"go.uber.org/zap"
)

const navigationCacheKey = "navigation:visible"

type NavigationService struct {
	repo  repository.NavigationRepo
	cache *cache.SWR[[]models.NavigationItem]
}

// NewNavigationService кеширует видимые строки меню по правилам stale-while-revalidate.
// opts.Key можно не задавать.
func NewNavigationService(repo repository.NavigationRepo, opts cache.Options) *NavigationService {
	if opts.Key == "" {
		opts.Key = navigationCacheKey
	}
	return &NavigationService{
		repo:  repo,
		cache: cache.NewSWR(opts, repo.ListVisible),
	}
}

// PublicTree: меню для шапки сайта. Ошибка чтения не роняет страницу:
// Data тогда пустое дерево (или дерево из устаревшего кеша), а причина лежит в Err.
func (s *NavigationService) PublicTree(ctx context.Context) fetch.Result[[]models.NavNode] {
	log := logger.WithCtx(ctx)

	rows := s.cache.Get(ctx)
	if rows.Err != nil {
		log.Warn("navigation: не удалось получить пункты меню", zap.Error(rows.Err), zap.Bool("stale", rows.Stale))
	}

	return fetch.Result[[]models.NavNode]{
		Data:  navtree.Build(rows.Data),
		Err:   rows.Err,
		Stale: rows.Stale,
	}
}

// Warm перечитывает меню в кеш (cron).
func (s *NavigationService) Warm(ctx context.Context) error {
	return s.cache.Refresh(ctx)
}

// Wait дожидается фоновых обновлений кеша.
func (s *NavigationService) Wait() { s.cache.Wait() }

// List: все строки, включая скрытые, в порядке показа. Для админки всегда из БД.
func (s *NavigationService) List(ctx context.Context) ([]models.NavigationItem, error) {
	return s.repo.ListAll(ctx)
}

// AdminTree: дерево из всех строк без ограничения глубины, как его видит редактор меню.
func (s *NavigationService) AdminTree(ctx context.Context) ([]models.NavNode, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return navtree.New(rows).Nodes(0), nil
}

func (s *NavigationService) Create(ctx context.Context, req models.NavigationItemRequest) (*models.NavigationItem, error) {
	log := logger.WithCtx(ctx)

	item := fromNavRequest(req, true)
	err := s.repo.InTx(ctx, func(tx repository.NavigationRepo) error {
		if item.ParentID != nil {
			if err := tx.LockForUpdate(ctx, *item.ParentID); err != nil {
				return err
			}
		}
		if err := checkParent(ctx, tx, "", item.ParentID); err != nil {
			log.Warn("navigation: недопустимый родитель", zap.Error(err))
			return err
		}
		return tx.Create(ctx, &item)
	})
	if err != nil {
		if !isClientErr(err) {
			log.Error("navigation: ошибка создания пункта (repo)", zap.Error(err))
		}
		return nil, err
	}
	s.cache.Invalidate(ctx)

	log.Info("navigation: пункт создан", zap.String("id", item.ID), zap.String("path", item.Path))
	return &item, nil
}

func (s *NavigationService) Update(ctx context.Context, id string, req models.NavigationItemRequest) (*models.NavigationItem, error) {
	log := logger.WithCtx(ctx)

	var item models.NavigationItem
	err := s.repo.InTx(ctx, func(tx repository.NavigationRepo) error {
		// сам пункт и новый родитель блокируются вместе: параллельная правка
		// не сможет сделать из них цепочку глубже одного уровня
		lock := []string{id}
		if req.ParentID != nil && strings.TrimSpace(*req.ParentID) != "" {
			lock = append(lock, strings.TrimSpace(*req.ParentID))
		}
		if err := tx.LockForUpdate(ctx, lock...); err != nil {
			return err
		}

		current, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		// без visible в запросе пункт остаётся таким, каким был
		item = fromNavRequest(req, current.Visible)
		item.ID = id
		if err := checkParent(ctx, tx, id, item.ParentID); err != nil {
			log.Warn("navigation: недопустимый родитель", zap.String("id", id), zap.Error(err))
			return err
		}
		return tx.Update(ctx, &item)
	})
	if err != nil {
		if !isClientErr(err) {
			log.Error("navigation: ошибка обновления пункта (repo)", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}
	s.cache.Invalidate(ctx)

	log.Info("navigation: пункт обновлён", zap.String("id", id))
	return &item, nil
}

func (s *NavigationService) Delete(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error("navigation: ошибка удаления пункта (repo)", zap.String("id", id), zap.Error(err))
		}
		return err
	}
	s.cache.Invalidate(ctx)

	log.Info("navigation: пункт удалён", zap.String("id", id))
	return nil
}

// checkParent держит меню одноуровневым: родитель существует, это не сам пункт,
// родитель сам верхнего уровня, а у пункта с детьми родителя быть не может.
func checkParent(ctx context.Context, repo repository.NavigationRepo, selfID string, parentID *string) error {
	if parentID == nil {
		return nil
	}
	if *parentID == selfID {
		return fmt.Errorf("%w: item cannot be its own parent", ErrConflict)
	}

	parent, err := repo.GetByID(ctx, *parentID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: parent %s not found", ErrConflict, *parentID)
	}
	if err != nil {
		return err
	}
	if !parent.IsTopLevel() {
		return fmt.Errorf("%w: parent must be a top-level item", ErrConflict)
	}

	if selfID != "" {
		children, err := repo.CountChildren(ctx, selfID)
		if err != nil {
			return err
		}
		if children > 0 {
			return fmt.Errorf("%w: item with sub-items cannot be nested", ErrConflict)
		}
	}
	return nil
}

func isClientErr(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation)
}

func fromNavRequest(req models.NavigationItemRequest, visible bool) models.NavigationItem {
	if req.Visible != nil {
		visible = *req.Visible
	}
	var parentID *string
	if req.ParentID != nil && strings.TrimSpace(*req.ParentID) != "" {
		p := strings.TrimSpace(*req.ParentID)
		parentID = &p
	}
	return models.NavigationItem{
		Label:        strings.TrimSpace(req.Label),
		Path:         strings.TrimSpace(req.Path),
		ParentID:     parentID,
		Visible:      visible,
		Icon:         strings.TrimSpace(req.Icon),
		DisplayOrder: req.DisplayOrder,
	}
}
