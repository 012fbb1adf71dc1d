package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/reqctx"
	"portfolio/internal/utils"

	"go.uber.org/zap"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	AdminExists(ctx context.Context) (bool, error)
}

type AuthService struct {
	repo      UserRepo
	jwtSecret string
	accessTTL time.Duration
}

func NewAuthService(repo UserRepo, jwtSecret string, accessTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, jwtSecret: jwtSecret, accessTTL: accessTTL}
}

// Login проверяет пароль и выдаёт access-токен. Неизвестный логин и неверный пароль
// неразличимы для вызывающего: оба дают ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	log := logger.WithCtx(ctx)
	username = strings.TrimSpace(username)
	log.Info("Попытка входа (service)", zap.String("username", username))

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("Пользователь не найден (service)", zap.String("username", username))
			return nil, ErrUnauthorized
		}
		log.Error("Ошибка чтения пользователя (service)", zap.Error(err))
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		log.Warn("Неверный пароль (service)", zap.String("username", username))
		return nil, ErrUnauthorized
	}

	token, expiresAt, err := utils.GenerateToken(s.jwtSecret, user.ID, user.Role, s.accessTTL)
	if err != nil {
		log.Error("Ошибка генерации access-токена", zap.Error(err))
		return nil, err
	}

	log.Info("Вход выполнен (service)", zap.String("username", username))
	return &models.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Username:    user.Username,
		Role:        user.Role,
	}, nil
}

func (s *AuthService) Me(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// EnsureAdmin создаёт первого администратора, если в таблице его ещё нет.
// Пустые логин или пароль означают, что бутстрап выключен.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	exists, err := s.repo.AdminExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Ошибка хеширования пароля", zap.Error(err))
		return err
	}
	user := &models.User{Username: username, PasswordHash: hashed, Role: reqctx.RoleAdmin}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		logger.Log.Error("Ошибка создания администратора", zap.Error(err))
		return err
	}
	logger.Log.Info("Создан администратор", zap.String("username", username))
	return nil
}
