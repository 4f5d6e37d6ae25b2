package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-service/internal/middleware"
	"github.com/SergeyBogomolovv/marketplace-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProductService interface {
	CreateProduct(ctx context.Context, sellerID string, product entities.Product) (entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context, filter entities.ProductFilter, page entities.PageRequest) (entities.Page[entities.Product], error)
	ListSellerProducts(ctx context.Context, sellerID string, page entities.PageRequest) (entities.Page[entities.Product], error)
	ListPendingProducts(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Product], error)
	UpdateProduct(ctx context.Context, id, sellerID string, upd entities.ProductUpdate) (entities.Product, error)
	DeleteProduct(ctx context.Context, id, sellerID string) error
	ApproveProduct(ctx context.Context, id, adminID string) (entities.Product, error)
	RejectProduct(ctx context.Context, id, adminID, reason string) (entities.Product, error)
	ProductStats(ctx context.Context, sellerID string) (entities.ProductStats, error)
}

type ProductHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     Middleware
	svc      ProductService
}

func NewProductHandler(logger *slog.Logger, auth Middleware, svc ProductService) *ProductHandler {
	return &ProductHandler{
		logger:   logger.With(slog.String("handler", "products")),
		validate: newValidator(),
		auth:     auth,
		svc:      svc,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{id}", h.GetProduct)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.CreateProduct)
			r.Get("/my", h.ListMyProducts)
			r.Get("/stats", h.ProductStats)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})
	})

	r.Get("/sellers/{id}/products", h.ListSellerProducts)

	r.Route("/admin/products", func(r chi.Router) {
		r.Use(h.auth, middleware.RequireRole(string(entities.UserTypeAdmin)))
		r.Get("/pending", h.ListPendingProducts)
		r.Post("/{id}/approve", h.ApproveProduct)
		r.Post("/{id}/reject", h.RejectProduct)
	})
}

// ListProducts публичный каталог, только одобренные и активные объявления.
// @Summary      Каталог объявлений
// @Tags         products
// @Produce      json
// @Param        category   query     string  false  "Категория"
// @Param        search     query     string  false  "Поиск по названию и описанию"
// @Param        min_price  query     int     false  "Минимальная цена"
// @Param        max_price  query     int     false  "Максимальная цена"
// @Param        page       query     int     false  "Страница"
// @Param        limit      query     int     false  "Размер страницы"
// @Success      200  {object}  Page[Product]
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entities.ProductFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		MinPrice: int64(utils.QueryInt(r, "min_price", 0)),
		MaxPrice: int64(utils.QueryInt(r, "max_price", 0)),
	}

	page, err := h.svc.ListProducts(r.Context(), filter, pageRequest(r))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list products")
		return
	}

	utils.WriteJSON(w, PageToJSON(page, ProductEntityToJSON), http.StatusOK)
}

// GetProduct
// @Summary      Получить объявление
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "ID объявления"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse "Объявление не найдено"
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}

	product, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// CreateProduct новое объявление уходит на модерацию.
// @Summary      Создать объявление
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateProductRequest  true  "Объявление"
// @Success      201  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Не продавец"
// @Failure      422  {object}  utils.ErrorResponse "Телефон не подтвержден"
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !decodeAndValidate(h.validate, w, r, &req) {
		return
	}

	product, err := h.svc.CreateProduct(r.Context(), requester(r).UserID, CreateProductJSONToEntity(req))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to create product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusCreated)
}

// ListMyProducts объявления текущего продавца во всех статусах.
// @Summary      Мои объявления
// @Tags         products
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Страница"
// @Param        limit  query     int  false  "Размер страницы"
// @Success      200  {object}  Page[Product]
// @Router       /products/my [get]
func (h *ProductHandler) ListMyProducts(w http.ResponseWriter, r *http.Request) {
	h.listSeller(w, r, requester(r).UserID)
}

// ListSellerProducts
// @Summary      Объявления продавца
// @Tags         products
// @Produce      json
// @Param        id     path      string  true   "ID продавца"
// @Param        page   query     int     false  "Страница"
// @Param        limit  query     int     false  "Размер страницы"
// @Success      200  {object}  Page[Product]
// @Router       /sellers/{id}/products [get]
func (h *ProductHandler) ListSellerProducts(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}
	h.listSeller(w, r, id)
}

func (h *ProductHandler) listSeller(w http.ResponseWriter, r *http.Request, sellerID string) {
	page, err := h.svc.ListSellerProducts(r.Context(), sellerID, pageRequest(r))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list seller products")
		return
	}

	utils.WriteJSON(w, PageToJSON(page, ProductEntityToJSON), http.StatusOK)
}

// UpdateProduct
// @Summary      Обновить объявление
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "ID объявления"
// @Param        request  body      UpdateProductRequest  true  "Измененные поля"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Чужое объявление"
// @Failure      404  {object}  utils.ErrorResponse "Объявление не найдено"
// @Router       /products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}
	var req UpdateProductRequest
	if !decodeAndValidate(h.validate, w, r, &req) {
		return
	}

	product, err := h.svc.UpdateProduct(r.Context(), id, requester(r).UserID, UpdateProductJSONToEntity(req))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to update product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// DeleteProduct снимает объявление с публикации.
// @Summary      Удалить объявление
// @Tags         products
// @Security     BearerAuth
// @Param        id   path  string  true  "ID объявления"
// @Success      204
// @Failure      403  {object}  utils.ErrorResponse "Чужое объявление"
// @Failure      404  {object}  utils.ErrorResponse "Объявление не найдено"
// @Router       /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id, requester(r).UserID); err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPendingProducts
// @Summary      Очередь модерации
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Страница"
// @Param        limit  query     int  false  "Размер страницы"
// @Success      200  {object}  Page[Product]
// @Failure      403  {object}  utils.ErrorResponse "Не администратор"
// @Router       /admin/products/pending [get]
func (h *ProductHandler) ListPendingProducts(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListPendingProducts(r.Context(), pageRequest(r))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list pending products")
		return
	}

	utils.WriteJSON(w, PageToJSON(page, ProductEntityToJSON), http.StatusOK)
}

// ApproveProduct
// @Summary      Одобрить объявление
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "ID объявления"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse "Объявление не найдено"
// @Failure      422  {object}  utils.ErrorResponse "Объявление не на модерации"
// @Router       /admin/products/{id}/approve [post]
func (h *ProductHandler) ApproveProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}

	product, err := h.svc.ApproveProduct(r.Context(), id, requester(r).UserID)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to approve product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// RejectProduct
// @Summary      Отклонить объявление
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "ID объявления"
// @Param        request  body      RejectProductRequest  true  "Причина"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Объявление не найдено"
// @Failure      422  {object}  utils.ErrorResponse "Объявление не на модерации"
// @Router       /admin/products/{id}/reject [post]
func (h *ProductHandler) RejectProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}
	var req RejectProductRequest
	if !decodeAndValidate(h.validate, w, r, &req) {
		return
	}

	product, err := h.svc.RejectProduct(r.Context(), id, requester(r).UserID, req.Reason)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to reject product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// ProductStats количество объявлений текущего продавца по статусам.
// @Summary      Статистика объявлений продавца
// @Tags         products
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /products/stats [get]
func (h *ProductHandler) ProductStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.ProductStats(r.Context(), requester(r).UserID)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get product stats")
		return
	}

	utils.WriteJSON(w, ProductStatsToJSON(stats), http.StatusOK)
}
