package handlers

import (
	"context"
	"net/http"

	"portfolio/internal/fetch"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/navtree"
	"portfolio/internal/utils/helpers"
	"portfolio/internal/utils/validation"

	"go.uber.org/zap"
)

type NavigationService interface {
	PublicTree(ctx context.Context) fetch.Result[[]models.NavNode]
	List(ctx context.Context) ([]models.NavigationItem, error)
	AdminTree(ctx context.Context) ([]models.NavNode, error)
	Create(ctx context.Context, req models.NavigationItemRequest) (*models.NavigationItem, error)
	Update(ctx context.Context, id string, req models.NavigationItemRequest) (*models.NavigationItem, error)
	Delete(ctx context.Context, id string) error
}

type NavigationHandler struct {
	svc       NavigationService
	validator *validation.Validator
}

func NewNavigationHandler(svc NavigationService, v *validation.Validator) *NavigationHandler {
	return &NavigationHandler{svc: svc, validator: v}
}

// NavigationResponse: меню для шапки. Degraded означает, что чтение меню не удалось
// и отдано пустое дерево или последнее удачное. Обычная фоновая ревалидация его не выставляет.
type NavigationResponse struct {
	Items    []models.NavNode `json:"items"`
	Degraded bool             `json:"degraded"`
}

// Public godoc
// @Summary Меню сайта
// @Description Видимые пункты меню с одним уровнем подпунктов. path помечает активный пункт. degraded=true, только если меню не удалось прочитать.
// @Tags navigation
// @Produce json
// @Param path query string false "Текущий путь страницы"
// @Success 200 {object} NavigationResponse
// @Router /api/navigation [get]
func (h *NavigationHandler) Public(w http.ResponseWriter, r *http.Request) {
	res := h.svc.PublicTree(r.Context())
	items := res.Data
	if path := r.URL.Query().Get("path"); path != "" {
		items = navtree.MarkActive(items, path)
	}
	helpers.JSON(w, http.StatusOK, NavigationResponse{Items: items, Degraded: res.Failed()})
}

// List godoc
// @Summary Все пункты меню (только admin)
// @Tags admin-navigation
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.NavigationItem
// @Router /api/admin/navigation [get]
func (h *NavigationHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Ошибка получения меню")
		return
	}
	helpers.JSON(w, http.StatusOK, items)
}

// Tree godoc
// @Summary Дерево меню со скрытыми пунктами (только admin)
// @Tags admin-navigation
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.NavNode
// @Router /api/admin/navigation/tree [get]
func (h *NavigationHandler) Tree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.svc.AdminTree(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Ошибка получения меню")
		return
	}
	helpers.JSON(w, http.StatusOK, tree)
}

// Create godoc
// @Summary Создать пункт меню (только admin)
// @Tags admin-navigation
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.NavigationItemRequest true "Пункт меню"
// @Success 201 {object} models.NavigationItem
// @Failure 400 {object} helpers.Response
// @Failure 409 {object} helpers.Response "Недопустимый родитель"
// @Router /api/admin/navigation [post]
func (h *NavigationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.NavigationItemRequest
	if !decode(w, r, h.validator, &req) {
		return
	}
	item, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "Ошибка создания пункта меню")
		return
	}
	logger.WithCtx(r.Context()).Info("Пункт меню создан", zap.String("id", item.ID))
	helpers.JSON(w, http.StatusCreated, item)
}

// Update godoc
// @Summary Обновить пункт меню (только admin)
// @Tags admin-navigation
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID пункта"
// @Param input body models.NavigationItemRequest true "Пункт меню"
// @Success 200 {object} models.NavigationItem
// @Failure 404 {object} helpers.Response
// @Failure 409 {object} helpers.Response
// @Router /api/admin/navigation/{id} [patch]
func (h *NavigationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.NavigationItemRequest
	if !decode(w, r, h.validator, &req) {
		return
	}
	item, err := h.svc.Update(r.Context(), pathID(r), req)
	if err != nil {
		writeServiceError(w, r, err, "Ошибка обновления пункта меню")
		return
	}
	helpers.JSON(w, http.StatusOK, item)
}

// Delete godoc
// @Summary Удалить пункт меню (только admin)
// @Description Подпункты удалённого пункта поднимаются на верхний уровень.
// @Tags admin-navigation
// @Security ApiKeyAuth
// @Param id path string true "ID пункта"
// @Success 204
// @Failure 404 {object} helpers.Response
// @Router /api/admin/navigation/{id} [delete]
func (h *NavigationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, r, err, "Ошибка удаления пункта меню")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
