package handlers

import (
	"context"
	"net/http"

	"portfolio/internal/models"
	"portfolio/internal/utils/helpers"
	"portfolio/internal/utils/validation"
)

type RedirectService interface {
	List(ctx context.Context) ([]models.Redirect, error)
	Create(ctx context.Context, req models.RedirectRequest) (*models.Redirect, error)
	Update(ctx context.Context, id string, req models.RedirectRequest) (*models.Redirect, error)
	Delete(ctx context.Context, id string) error
}

type RedirectHandler struct {
	svc       RedirectService
	validator *validation.Validator
}

func NewRedirectHandler(svc RedirectService, v *validation.Validator) *RedirectHandler {
	return &RedirectHandler{svc: svc, validator: v}
}

// List godoc
// @Summary Таблица редиректов (только admin)
// @Tags admin-redirects
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Redirect
// @Router /api/admin/redirects [get]
func (h *RedirectHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Ошибка получения редиректов")
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Create godoc
// @Summary Создать редирект (только admin)
// @Tags admin-redirects
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.RedirectRequest true "Редирект"
// @Success 201 {object} models.Redirect
// @Failure 400 {object} helpers.Response
// @Router /api/admin/redirects [post]
func (h *RedirectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.RedirectRequest
	if !decode(w, r, h.validator, &req) {
		return
	}
	rd, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "Ошибка создания редиректа")
		return
	}
	helpers.JSON(w, http.StatusCreated, rd)
}

// Update godoc
// @Summary Обновить редирект (только admin)
// @Tags admin-redirects
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID редиректа"
// @Param input body models.RedirectRequest true "Редирект"
// @Success 200 {object} models.Redirect
// @Router /api/admin/redirects/{id} [patch]
func (h *RedirectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.RedirectRequest
	if !decode(w, r, h.validator, &req) {
		return
	}
	rd, err := h.svc.Update(r.Context(), pathID(r), req)
	if err != nil {
		writeServiceError(w, r, err, "Ошибка обновления редиректа")
		return
	}
	helpers.JSON(w, http.StatusOK, rd)
}

// Delete godoc
// @Summary Удалить редирект (только admin)
// @Tags admin-redirects
// @Security ApiKeyAuth
// @Param id path string true "ID редиректа"
// @Success 204
// @Router /api/admin/redirects/{id} [delete]
func (h *RedirectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, r, err, "Ошибка удаления редиректа")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
