package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio/internal/fetch"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/settings"

	"go.uber.org/zap"
)

type SettingsService struct {
	repo repository.SettingsRepo
}

func NewSettingsService(repo repository.SettingsRepo) *SettingsService {
	return &SettingsService{repo: repo}
}

// Load читает все строки и собирает снимок настроек на один запрос.
// При ошибке Data: пустой снимок, и любой Get вернёт значение по умолчанию.
func (s *SettingsService) Load(ctx context.Context) fetch.Result[settings.Settings] {
	rows, err := s.repo.List(ctx)
	if err != nil {
		logger.WithCtx(ctx).Warn("settings: не удалось прочитать настройки, используются значения по умолчанию", zap.Error(err))
		return fetch.Fail(err, settings.Settings{})
	}
	return fetch.OK(settings.Build(rows))
}

func (s *SettingsService) List(ctx context.Context) ([]models.SettingEntry, error) {
	return s.repo.List(ctx)
}

// Grouped: строки, разложенные по разделам каталога (экран настроек в админке).
func (s *SettingsService) Grouped(ctx context.Context) ([]settings.Group, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("settings: ошибка чтения (repo)", zap.Error(err))
		return nil, err
	}
	return settings.GroupRows(rows, settings.Catalogue), nil
}

func (s *SettingsService) Create(ctx context.Context, req models.SettingRequest) (*models.SettingEntry, error) {
	log := logger.WithCtx(ctx)

	entry := fromSettingRequest(req)
	if err := s.ensureUniqueKey(ctx, entry.Key, ""); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &entry); err != nil {
		log.Error("settings: ошибка создания (repo)", zap.String("key", entry.Key), zap.Error(err))
		return nil, err
	}

	log.Info("settings: настройка создана", zap.String("key", entry.Key))
	return &entry, nil
}

func (s *SettingsService) Update(ctx context.Context, id string, req models.SettingRequest) (*models.SettingEntry, error) {
	log := logger.WithCtx(ctx)

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	entry := fromSettingRequest(req)
	entry.ID = id
	if err := s.ensureUniqueKey(ctx, entry.Key, id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, &entry); err != nil {
		log.Error("settings: ошибка обновления (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("settings: настройка обновлена", zap.String("id", id), zap.String("key", entry.Key))
	return &entry, nil
}

func (s *SettingsService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.WithCtx(ctx).Error("settings: ошибка удаления (repo)", zap.String("id", id), zap.Error(err))
		}
		return err
	}
	logger.WithCtx(ctx).Info("settings: настройка удалена", zap.String("id", id))
	return nil
}

func (s *SettingsService) ensureUniqueKey(ctx context.Context, key, excludeID string) error {
	exists, err := s.repo.KeyExists(ctx, key, excludeID)
	if err != nil {
		logger.WithCtx(ctx).Error("settings: ошибка проверки ключа (repo)", zap.String("key", key), zap.Error(err))
		return err
	}
	if exists {
		return fmt.Errorf("%w: setting %q already exists", ErrConflict, key)
	}
	return nil
}

func fromSettingRequest(req models.SettingRequest) models.SettingEntry {
	return models.SettingEntry{
		Key:         strings.TrimSpace(req.Key),
		Value:       req.Value,
		Description: strings.TrimSpace(req.Description),
	}
}
