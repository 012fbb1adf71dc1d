package handlers

import (
	"context"
	"net/http"

	"portfolio/internal/models"
	"portfolio/internal/utils/helpers"
	"portfolio/internal/utils/validation"

	"github.com/gorilla/mux"
)

type PageService interface {
	Published(ctx context.Context, slug string) (*models.RenderedPage, error)
	Preview(req models.PageRequest) (*models.RenderedPage, error)
	List(ctx context.Context) ([]models.Page, error)
	Create(ctx context.Context, req models.PageRequest) (*models.Page, error)
	Update(ctx context.Context, id string, req models.PageRequest) (*models.Page, error)
	Delete(ctx context.Context, id string) error
}

type PageHandler struct {
	svc       PageService
	validator *validation.Validator
}

func NewPageHandler(svc PageService, v *validation.Validator) *PageHandler {
	return &PageHandler{svc: svc, validator: v}
}

// Get godoc
// @Summary Опубликованная страница
// @Tags pages
// @Produce json
// @Param slug path string true "Slug страницы"
// @Success 200 {object} models.RenderedPage
// @Failure 404 {object} helpers.Response
// @Router /api/pages/{slug} [get]
func (h *PageHandler) Get(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Published(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeServiceError(w, r, err, "Ошибка получения страницы")
		return
	}
	helpers.JSON(w, http.StatusOK, page)
}

// List godoc
// @Summary Все страницы, включая черновики (только admin)
// @Tags admin-pages
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Page
// @Router /api/admin/pages [get]
func (h *PageHandler) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Ошибка получения страниц")
		return
	}
	helpers.JSON(w, http.StatusOK, pages)
}

// Preview godoc
// @Summary Предпросмотр страницы без сохранения (только admin)
// @Tags admin-pages
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.PageRequest true "Страница"
// @Success 200 {object} models.RenderedPage
// @Router /api/admin/pages/preview [post]
func (h *PageHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req models.PageRequest
	if !decode(w, r, h.validator, &req) {
		return
	}
	page, err := h.svc.Preview(req)
	if err != nil {
		writeServiceError(w, r, err, "Ошибка рендера страницы")
		return
	}
	helpers.JSON(w, http.StatusOK, page)
}

// Create godoc
// @Summary Создать страницу (только admin)
// @Tags admin-pages
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.PageRequest true "Страница"
// @Success 201 {object} models.Page
// @Failure 409 {object} helpers.Response "Slug занят"
// @Router /api/admin/pages [post]
func (h *PageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.PageRequest
	if !decode(w, r, h.validator, &req) {
		return
	}
	page, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "Ошибка создания страницы")
		return
	}
	helpers.JSON(w, http.StatusCreated, page)
}

// Update godoc
// @Summary Обновить страницу (только admin)
// @Tags admin-pages
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID страницы"
// @Param input body models.PageRequest true "Страница"
// @Success 200 {object} models.Page
// @Router /api/admin/pages/{id} [patch]
func (h *PageHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.PageRequest
	if !decode(w, r, h.validator, &req) {
		return
	}
	page, err := h.svc.Update(r.Context(), pathID(r), req)
	if err != nil {
		writeServiceError(w, r, err, "Ошибка обновления страницы")
		return
	}
	helpers.JSON(w, http.StatusOK, page)
}

// Delete godoc
// @Summary Удалить страницу (только admin)
// @Tags admin-pages
// @Security ApiKeyAuth
// @Param id path string true "ID страницы"
// @Success 204
// @Router /api/admin/pages/{id} [delete]
func (h *PageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, r, err, "Ошибка удаления страницы")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
