package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-service/internal/middleware"
	"github.com/SergeyBogomolovv/marketplace-service/pkg/token"
	"github.com/SergeyBogomolovv/marketplace-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Middleware = func(next http.Handler) http.Handler

// writeServiceError переводит ошибки сервисов в HTTP-ответы.
// Неизвестные ошибки логируются и отдаются как 500.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrReviewNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidCredentials),
		errors.Is(err, entities.ErrUserSuspended):
		utils.WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrPreconditionFailed):
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func requester(r *http.Request) token.Claims {
	claims, _ := middleware.ClaimsFrom(r.Context())
	return claims
}

func pageRequest(r *http.Request) entities.PageRequest {
	return entities.PageRequest{
		Page:  utils.QueryInt(r, "page", 1),
		Limit: utils.QueryInt(r, "limit", entities.DefaultPageLimit),
	}.Normalize()
}

type structValidator interface {
	Struct(s any) error
}

func decodeAndValidate(v structValidator, w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeBody(r, dst); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return validateStruct(v, w, dst)
}

// decodeOptionalAndValidate как decodeAndValidate, но пустое тело допустимо,
// в том числе при chunked-запросе без Content-Length.
func decodeOptionalAndValidate(v structValidator, w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeBody(r, dst); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return validateStruct(v, w, dst)
}

func validateStruct(v structValidator, w http.ResponseWriter, dst any) bool {
	if err := v.Struct(dst); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

type varValidator interface {
	Var(field any, tag string) error
}

// pathID достает UUID из параметра пути. Невалидный идентификатор
// отсекается здесь, иначе Postgres ответит ошибкой приведения типа.
func pathID(v varValidator, w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := chi.URLParam(r, name)
	if err := v.Var(id, "required,uuid"); err != nil {
		utils.WriteJSON(w, utils.ValidationErrorResponse{
			Message: "invalid request",
			Fields:  map[string]string{name: "uuid"},
		}, http.StatusBadRequest)
		return "", false
	}
	return id, true
}
