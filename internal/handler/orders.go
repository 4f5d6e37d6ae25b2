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

type OrderService interface {
	CreateOrder(ctx context.Context, buyerID string, in entities.CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, orderID, requesterID string) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, number, requesterID string) (entities.Order, error)
	ListBuyerOrders(ctx context.Context, buyerID string, status entities.OrderStatus, page entities.PageRequest) (entities.Page[entities.Order], error)
	ListSellerOrders(ctx context.Context, sellerID string, status entities.OrderStatus, page entities.PageRequest) (entities.Page[entities.Order], error)
	OrderStats(ctx context.Context, sellerID string) (entities.OrderStats, error)
	UpdateOrderStatus(ctx context.Context, orderID, requesterID string, status entities.OrderStatus, notes string) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID, requesterID, reason string) (entities.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID, requesterID string, status entities.PaymentStatus, reference string) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     Middleware
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, auth Middleware, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: newValidator(),
		auth:     auth,
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.CreateOrder)
		r.Get("/buyer", h.ListBuyerOrders)
		r.Get("/seller", h.ListSellerOrders)
		r.Get("/stats", h.OrderStats)
		r.Get("/number/{number}", h.GetOrderByNumber)
		r.Get("/{id}", h.GetOrder)
		r.Patch("/{id}/status", h.UpdateOrderStatus)
		r.Post("/{id}/cancel", h.CancelOrder)
		r.Patch("/{id}/payment", h.UpdatePaymentStatus)
	})
}

// CreateOrder создает заказ от имени покупателя.
// @Summary      Создать заказ
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest  true  "Данные заказа"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      404  {object}  utils.ErrorResponse "Товар или покупатель не найден"
// @Failure      422  {object}  utils.ErrorResponse "Товар недоступен или телефон не подтвержден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if !decodeAndValidate(h.validate, w, r, &req) {
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), requester(r).UserID, CreateOrderJSONToEntity(req))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to create order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrder возвращает заказ участнику сделки.
// @Summary      Получить заказ по ID
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Невалидный ID"
// @Failure      403  {object}  utils.ErrorResponse "Не участник заказа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(r.Context(), id, requester(r).UserID)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetOrderByNumber ищет заказ по человекочитаемому номеру.
// @Summary      Получить заказ по номеру
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        number  path      string  true  "Номер заказа, ORD-..."
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse "Не участник заказа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/number/{number} [get]
func (h *OrderHandler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.GetOrderByNumber(r.Context(), chi.URLParam(r, "number"), requester(r).UserID)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get order by number")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListBuyerOrders заказы текущего пользователя как покупателя.
// @Summary      Заказы покупателя
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "Фильтр по статусу"
// @Param        page    query     int     false  "Страница"
// @Param        limit   query     int     false  "Размер страницы"
// @Success      200  {object}  Page[Order]
// @Failure      400  {object}  utils.ValidationErrorResponse "Неизвестный статус"
// @Router       /orders/buyer [get]
func (h *OrderHandler) ListBuyerOrders(w http.ResponseWriter, r *http.Request) {
	h.listOrders(w, r, h.svc.ListBuyerOrders)
}

// ListSellerOrders заказы текущего пользователя как продавца.
// @Summary      Заказы продавца
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "Фильтр по статусу"
// @Param        page    query     int     false  "Страница"
// @Param        limit   query     int     false  "Размер страницы"
// @Success      200  {object}  Page[Order]
// @Failure      400  {object}  utils.ValidationErrorResponse "Неизвестный статус"
// @Router       /orders/seller [get]
func (h *OrderHandler) ListSellerOrders(w http.ResponseWriter, r *http.Request) {
	h.listOrders(w, r, h.svc.ListSellerOrders)
}

type listOrdersFunc func(ctx context.Context, userID string, status entities.OrderStatus, page entities.PageRequest) (entities.Page[entities.Order], error)

func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request, list listOrdersFunc) {
	status := r.URL.Query().Get("status")
	if err := h.validate.Var(status, "omitempty,oneof=pending confirmed shipped delivered cancelled completed"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	page, err := list(r.Context(), requester(r).UserID, entities.OrderStatus(status), pageRequest(r))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, PageToJSON(page, OrderEntityToJSON), http.StatusOK)
}

// OrderStats
// @Summary      Статистика заказов продавца по статусам
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]StatusStats
// @Router       /orders/stats [get]
func (h *OrderHandler) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.OrderStats(r.Context(), requester(r).UserID)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get order stats")
		return
	}

	utils.WriteJSON(w, OrderStatsToJSON(stats), http.StatusOK)
}

// UpdateOrderStatus меняет статус по таблице переходов.
// @Summary      Сменить статус заказа
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "ID заказа"
// @Param        request  body      UpdateStatusRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Не участник заказа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if !decodeAndValidate(h.validate, w, r, &req) {
		return
	}

	order, err := h.svc.UpdateOrderStatus(r.Context(), id, requester(r).UserID, entities.OrderStatus(req.Status), req.Notes)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to update order status")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder тело запроса необязательно.
// @Summary      Отменить заказ
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string              true   "ID заказа"
// @Param        request  body      CancelOrderRequest  false  "Причина"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse "Не участник заказа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ нельзя отменить"
// @Router       /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}
	var req CancelOrderRequest
	if !decodeOptionalAndValidate(h.validate, w, r, &req) {
		return
	}

	order, err := h.svc.CancelOrder(r.Context(), id, requester(r).UserID, req.Reason)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to cancel order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdatePaymentStatus статус оплаты не влияет на статус заказа.
// @Summary      Сменить статус оплаты
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "ID заказа"
// @Param        request  body      UpdatePaymentRequest  true  "Статус оплаты"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Не участник заказа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{id}/payment [patch]
func (h *OrderHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(h.validate, w, r, "id")
	if !ok {
		return
	}
	var req UpdatePaymentRequest
	if !decodeAndValidate(h.validate, w, r, &req) {
		return
	}

	order, err := h.svc.UpdatePaymentStatus(r.Context(), id, requester(r).UserID,
		entities.PaymentStatus(req.PaymentStatus), req.PaymentReference)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to update payment status")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}
