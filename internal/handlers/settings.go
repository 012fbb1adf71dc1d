package handlers

import (
	"context"
	"net/http"

	"portfolio/internal/models"
	"portfolio/internal/reqctx"
	"portfolio/internal/settings"
	"portfolio/internal/utils/helpers"
	"portfolio/internal/utils/validation"
)

type SettingsService interface {
	Grouped(ctx context.Context) ([]settings.Group, error)
	Create(ctx context.Context, req models.SettingRequest) (*models.SettingEntry, error)
	Update(ctx context.Context, id string, req models.SettingRequest) (*models.SettingEntry, error)
	Delete(ctx context.Context, id string) error
}

type SettingsHandler struct {
	svc       SettingsService
	validator *validation.Validator
}

func NewSettingsHandler(svc SettingsService, v *validation.Validator) *SettingsHandler {
	return &SettingsHandler{svc: svc, validator: v}
}

// Public godoc
// @Summary Настройки сайта
// @Description Все пары ключ-значение. Если настройки не прочитались, отдаётся пустой объект.
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/settings [get]
func (h *SettingsHandler) Public(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, reqctx.Settings(r.Context()).All())
}

// Grouped godoc
// @Summary Настройки по разделам (только admin)
// @Tags admin-settings
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} settings.Group
// @Router /api/admin/settings [get]
func (h *SettingsHandler) Grouped(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.Grouped(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Ошибка получения настроек")
		return
	}
	helpers.JSON(w, http.StatusOK, groups)
}

// Create godoc
// @Summary Создать настройку (только admin)
// @Tags admin-settings
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.SettingRequest true "Настройка"
// @Success 201 {object} models.SettingEntry
// @Failure 409 {object} helpers.Response "Ключ уже существует"
// @Router /api/admin/settings [post]
func (h *SettingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SettingRequest
	if !decode(w, r, h.validator, &req) {
		return
	}
	entry, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "Ошибка создания настройки")
		return
	}
	helpers.JSON(w, http.StatusCreated, entry)
}

// Update godoc
// @Summary Обновить настройку (только admin)
// @Tags admin-settings
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID настройки"
// @Param input body models.SettingRequest true "Настройка"
// @Success 200 {object} models.SettingEntry
// @Router /api/admin/settings/{id} [patch]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.SettingRequest
	if !decode(w, r, h.validator, &req) {
		return
	}
	entry, err := h.svc.Update(r.Context(), pathID(r), req)
	if err != nil {
		writeServiceError(w, r, err, "Ошибка обновления настройки")
		return
	}
	helpers.JSON(w, http.StatusOK, entry)
}

// Delete godoc
// @Summary Удалить настройку (только admin)
// @Tags admin-settings
// @Security ApiKeyAuth
// @Param id path string true "ID настройки"
// @Success 204
// @Router /api/admin/settings/{id} [delete]
func (h *SettingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, r, err, "Ошибка удаления настройки")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
