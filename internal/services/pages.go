package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"
)

type PageService struct {
	repo   repository.PageRepo
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewPageService(repo repository.PageRepo) *PageService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("figure", "figcaption")
	p.AllowAttrs("loading").OnElements("img")
	p.RequireNoFollowOnLinks(true)

	return &PageService{
		repo:   repo,
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: p,
	}
}

// Render превращает markdown в HTML и чистит его политикой UGC.
func (s *PageService) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(s.policy.Sanitize(buf.String())), nil
}

// Published отдаёт опубликованную страницу по slug. Черновики снаружи не видны (ErrNotFound).
func (s *PageService) Published(ctx context.Context, slug string) (*models.RenderedPage, error) {
	page, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.WithCtx(ctx).Error("pages: ошибка чтения страницы (repo)", zap.String("slug", slug), zap.Error(err))
		}
		return nil, err
	}
	if !page.Published {
		return nil, fmt.Errorf("%w: page %q is not published", ErrNotFound, slug)
	}
	return s.rendered(page)
}

// Preview рендерит черновик без сохранения.
func (s *PageService) Preview(req models.PageRequest) (*models.RenderedPage, error) {
	page := fromPageRequest(req)
	return s.rendered(&page)
}

func (s *PageService) List(ctx context.Context) ([]models.Page, error) {
	return s.repo.List(ctx)
}

func (s *PageService) Create(ctx context.Context, req models.PageRequest) (*models.Page, error) {
	log := logger.WithCtx(ctx)

	page := fromPageRequest(req)
	if err := s.ensureUniqueSlug(ctx, page.Slug, ""); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &page); err != nil {
		log.Error("pages: ошибка создания (repo)", zap.String("slug", page.Slug), zap.Error(err))
		return nil, err
	}

	log.Info("pages: страница создана", zap.String("id", page.ID), zap.String("slug", page.Slug))
	return &page, nil
}

func (s *PageService) Update(ctx context.Context, id string, req models.PageRequest) (*models.Page, error) {
	log := logger.WithCtx(ctx)

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	page := fromPageRequest(req)
	page.ID = id
	if err := s.ensureUniqueSlug(ctx, page.Slug, id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, &page); err != nil {
		log.Error("pages: ошибка обновления (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("pages: страница обновлена", zap.String("id", id))
	return &page, nil
}

func (s *PageService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.WithCtx(ctx).Error("pages: ошибка удаления (repo)", zap.String("id", id), zap.Error(err))
		}
		return err
	}
	logger.WithCtx(ctx).Info("pages: страница удалена", zap.String("id", id))
	return nil
}

func (s *PageService) ensureUniqueSlug(ctx context.Context, slug, excludeID string) error {
	exists, err := s.repo.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: slug %q is taken", ErrConflict, slug)
	}
	return nil
}

func (s *PageService) rendered(p *models.Page) (*models.RenderedPage, error) {
	out := &models.RenderedPage{Slug: p.Slug, Title: p.Title, UpdatedAt: p.UpdatedAt}
	if p.MetaDescription != nil {
		out.MetaDescription = *p.MetaDescription
	}
	if p.Body != nil {
		html, err := s.Render(*p.Body)
		if err != nil {
			return nil, err
		}
		out.BodyHTML = html
	}
	return out, nil
}

func fromPageRequest(req models.PageRequest) models.Page {
	p := models.Page{
		Slug:      strings.TrimSpace(req.Slug),
		Title:     strings.TrimSpace(req.Title),
		Published: req.Published,
	}
	if req.Body != "" {
		body := req.Body
		p.Body = &body
	}
	if meta := strings.TrimSpace(req.MetaDescription); meta != "" {
		p.MetaDescription = &meta
	}
	return p
}
