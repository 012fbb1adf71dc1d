package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio/internal/logger"
	"portfolio/internal/services"
	"portfolio/internal/utils/helpers"
	"portfolio/internal/utils/validation"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// decode читает JSON-тело и прогоняет его через валидатор. При ошибке ответ уже записан.
func decode(w http.ResponseWriter, r *http.Request, v *validation.Validator, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return false
	}
	if err := v.ValidateStruct(dst); err != nil {
		helpers.ValidationError(w, validation.FormatValidationErrors(err))
		return false
	}
	return true
}

// writeServiceError переводит ошибку сервиса в HTTP-статус.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.WithCtx(r.Context())
	switch {
	case errors.Is(err, services.ErrValidation):
		helpers.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, "Не найдено")
	case errors.Is(err, services.ErrConflict):
		helpers.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		helpers.Error(w, http.StatusUnauthorized, "Неверный логин или пароль")
	default:
		log.Error(msg, zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, msg)
	}
}

func pathID(r *http.Request) string {
	return mux.Vars(r)["id"]
}
