package handlers

import (
	"context"
	"net/http"

	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/reqctx"
	"portfolio/internal/utils/helpers"
	"portfolio/internal/utils/validation"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Me(ctx context.Context, id string) (*models.User, error)
}

type AuthHandler struct {
	authService AuthService
	validator   *validation.Validator
}

func NewAuthHandler(authService AuthService, v *validation.Validator) *AuthHandler {
	return &AuthHandler{authService: authService, validator: v}
}

// Login godoc
// @Summary Вход в админку
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.LoginRequest true "Логин и пароль"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} helpers.Response "Неверный логин или пароль"
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	resp, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "Ошибка входа")
		return
	}

	logger.WithCtx(r.Context()).Info("Вход выполнен", zap.String("username", resp.Username))
	helpers.JSON(w, http.StatusOK, resp)
}

// Me godoc
// @Summary Текущий пользователь
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} helpers.Response
// @Router /api/admin/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := reqctx.GetUserID(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Нет пользователя в контексте")
		return
	}
	user, err := h.authService.Me(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "Ошибка получения пользователя")
		return
	}
	helpers.JSON(w, http.StatusOK, user)
}
