package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ReviewService interface {
	CreateReview(ctx context.Context, reviewerID string, in entities.CreateReviewInput) (entities.Review, error)
	ListSellerReviews(ctx context.Context, sellerID string, page entities.PageRequest) (entities.Page[entities.Review], error)
	SellerRating(ctx context.Context, sellerID string) (entities.Rating, error)
	DeleteReview(ctx context.Context, reviewID, userID string) error
	ListUserReviews(ctx context.Context, reviewerID string, page entities.PageRequest) (entities.Page[entities.Review], error)
	GetOrderReview(ctx context.Context, orderID string) (entities.Review, error)
}

type ReviewHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     Middleware
	svc      ReviewService
}

func NewReviewHandler(logger *slog.Logger, auth Middleware, svc ReviewService) *ReviewHandler {
	return &ReviewHandler{
		logger:   logger.With(slog.String("handler", "reviews")),
		validate: newValidator(),
		auth:     auth,
		svc:      svc,
	}
}

func (h *ReviewHandler) Init(r chi.Router) {
	r.Route("/reviews", func(r chi.Router) {
		r.Get("/order/{id}", h.GetOrderReview)
		r.Get("/reviewer/{id}", h.ListUserReviews)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.CreateReview)
			r.Delete("/{id}", h.DeleteReview)
		})
	})

	r.Get("/sellers/{id}/reviews", h.ListSellerReviews)
	r.Get("/sellers/{id}/rating", h.SellerRating)
}

// CreateReview отзыв доступен покупателю после завершения заказа.
// @Summary      Оставить отзыв о продавце
// @Tags         reviews
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateReviewRequest  true  "Отзыв"
// @Success      201  {object}  Review
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Не покупатель заказа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      422  {object}  utils.ErrorResponse "Заказ не завершен или уже оценен"
// @Router       /reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if !decodeAndValidate(h.validate, w, r, &req) {
		return
	}

	review, err := h.svc.CreateReview(r.Context(), requester(r).UserID, entities.CreateReviewInput{
		OrderID: req.OrderID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to create review")
		return
	}

	utils.WriteJSON(w, ReviewEntityToJSON(review), http.StatusCreated)
}

// DeleteReview удалить отзыв может только его автор.
// @Summary      Удалить свой отзыв
// @Tags         reviews
// @Security     BearerAuth
// @Param        id   path  string  true  "ID отзыва"
// @Success      204
// @Failure      403  {object}  utils.ErrorResponse "Чужой отзыв"
// @Failure      404  {object}  utils.ErrorResponse "Отзыв не найден"
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteReview(r.Context(), id, requester(r).UserID); err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to delete review")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListSellerReviews
// @Summary      Отзывы о продавце
// @Tags         reviews
// @Produce      json
// @Param        id     path      string  true   "ID продавца"
// @Param        page   query     int     false  "Страница"
// @Param        limit  query     int     false  "Размер страницы"
// @Success      200  {object}  Page[Review]
// @Router       /sellers/{id}/reviews [get]
func (h *ReviewHandler) ListSellerReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}

	page, err := h.svc.ListSellerReviews(r.Context(), id, pageRequest(r))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list reviews")
		return
	}

	utils.WriteJSON(w, PageToJSON(page, ReviewEntityToJSON), http.StatusOK)
}

// SellerRating
// @Summary      Рейтинг продавца
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "ID продавца"
// @Success      200  {object}  Rating
// @Router       /sellers/{id}/rating [get]
func (h *ReviewHandler) SellerRating(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}

	rating, err := h.svc.SellerRating(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get seller rating")
		return
	}

	utils.WriteJSON(w, Rating{Average: rating.Average, Count: rating.Count}, http.StatusOK)
}

// ListUserReviews отзывы, которые оставил пользователь.
// @Summary      Отзывы автора
// @Tags         reviews
// @Produce      json
// @Param        id     path      string  true   "ID автора отзывов"
// @Param        page   query     int     false  "Страница"
// @Param        limit  query     int     false  "Размер страницы"
// @Success      200  {object}  Page[Review]
// @Router       /reviews/reviewer/{id} [get]
func (h *ReviewHandler) ListUserReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}

	page, err := h.svc.ListUserReviews(r.Context(), id, pageRequest(r))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list user reviews")
		return
	}

	utils.WriteJSON(w, PageToJSON(page, ReviewEntityToJSON), http.StatusOK)
}

// GetOrderReview
// @Summary      Отзыв по заказу
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "ID заказа"
// @Success      200  {object}  Review
// @Failure      404  {object}  utils.ErrorResponse "Отзыв не найден"
// @Router       /reviews/order/{id} [get]
func (h *ReviewHandler) GetOrderReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}

	review, err := h.svc.GetOrderReview(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get order review")
		return
	}

	utils.WriteJSON(w, ReviewEntityToJSON(review), http.StatusOK)
}
