package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-service/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter, page entities.PageRequest) ([]entities.Order, error)
	CountOrders(ctx context.Context, filter entities.OrderFilter) (int, error)
	OrderStats(ctx context.Context, sellerID string) (entities.OrderStats, error)
	UpdateOrderStatus(ctx context.Context, id string, change entities.StatusChange) (entities.Order, error)
	CancelOrder(ctx context.Context, id string, from entities.OrderStatus, cancelledBy, reason string, at time.Time) (entities.Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus, reference string, at time.Time) (entities.Order, error)
}

type ProductLookup interface {
	ProductByID(ctx context.Context, id string) (entities.Product, error)
	MarkSold(ctx context.Context, id string) (entities.Product, error)
}

type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (entities.User, error)
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error
	EnqueueProductSold(ctx context.Context, task entities.ProductSoldTask) error
}

type IdempotencyStore interface {
	AcquireIdempotencyKey(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseIdempotencyKey(ctx context.Context, key string) error
}

const (
	orderNumberAttempts = 3
	paymentKeyTTL       = 24 * time.Hour
)

var markSoldRetry = utils.RetryConfig{
	MaxAttempts:  3,
	InitialDelay: 50 * time.Millisecond,
	MaxDelay:     time.Second,
	Multiplier:   2,
}

// OrderService единственное место, где меняется статус заказа.
type OrderService struct {
	logger      *slog.Logger
	orders      OrderRepo
	products    ProductLookup
	users       UserLookup
	events      OrderEventPublisher
	idempotency IdempotencyStore
	now         func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	orders OrderRepo,
	products ProductLookup,
	users UserLookup,
	events OrderEventPublisher,
	idempotency IdempotencyStore,
) *OrderService {
	return &OrderService{
		logger:      logger.With(slog.String("service", "order")),
		orders:      orders,
		products:    products,
		users:       users,
		events:      events,
		idempotency: idempotency,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, buyerID string, in entities.CreateOrderInput) (entities.Order, error) {
	buyer, err := s.users.GetUserByID(ctx, buyerID)
	if err != nil {
		return entities.Order{}, err
	}
	if !buyer.PhoneVerified {
		return entities.Order{}, entities.ErrPhoneNotVerified
	}

	product, err := s.products.ProductByID(ctx, in.ProductID)
	if err != nil {
		return entities.Order{}, err
	}
	if product.Status != entities.ProductStatusApproved || !product.IsActive {
		return entities.Order{}, entities.ErrProductUnavailable
	}
	if product.SellerID == buyerID {
		return entities.Order{}, entities.ErrOwnProduct
	}

	quantity := max(in.Quantity, 1)
	now := s.now()
	order := entities.Order{
		ID:              uuid.NewString(),
		ProductID:       product.ID,
		BuyerID:         buyerID,
		SellerID:        product.SellerID,
		Quantity:        quantity,
		TotalAmount:     product.Price * int64(quantity),
		DeliveryMethod:  in.DeliveryMethod,
		PaymentMethod:   in.PaymentMethod,
		DeliveryAddress: in.DeliveryAddress,
		Message:         in.Message,
		Status:          entities.OrderStatusPending,
		PaymentStatus:   entities.PaymentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var created entities.Order
	for range orderNumberAttempts {
		order.OrderNumber = newOrderNumber(now)
		created, err = s.orders.CreateOrder(ctx, order)
		if !errors.Is(err, entities.ErrDuplicateOrderNumber) {
			break
		}
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	ordersCreated.Inc()
	s.publish(ctx, created, entities.OrderEventCreated, "", buyerID)
	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", created.ID),
		slog.String("order_number", created.OrderNumber),
	)
	return created, nil
}

func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%03d", now.UnixMilli(), rand.IntN(1000))
}

// UpdateOrderStatus применяет переход по таблице переходов от имени requesterID.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID, requesterID string, status entities.OrderStatus, notes string) (entities.Order, error) {
	order, role, err := s.orderForParty(ctx, orderID, requesterID)
	if err != nil {
		return entities.Order{}, err
	}
	if status == entities.OrderStatusCancelled {
		return s.cancel(ctx, order, role, requesterID, notes)
	}
	if err := s.checkTransition(order.Status, role, status); err != nil {
		return entities.Order{}, err
	}

	updated, err := s.orders.UpdateOrderStatus(ctx, order.ID, entities.StatusChange{
		From:  order.Status,
		To:    status,
		Notes: notes,
		At:    s.now(),
	})
	if err != nil {
		return entities.Order{}, s.transitionFailed(err)
	}

	s.afterTransition(ctx, order.Status, updated, requesterID)
	return updated, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, orderID, requesterID, reason string) (entities.Order, error) {
	order, role, err := s.orderForParty(ctx, orderID, requesterID)
	if err != nil {
		return entities.Order{}, err
	}
	return s.cancel(ctx, order, role, requesterID, reason)
}

func (s *OrderService) cancel(ctx context.Context, order entities.Order, role entities.Role, requesterID, reason string) (entities.Order, error) {
	if err := s.checkTransition(order.Status, role, entities.OrderStatusCancelled); err != nil {
		return entities.Order{}, err
	}

	updated, err := s.orders.CancelOrder(ctx, order.ID, order.Status, requesterID, reason, s.now())
	if err != nil {
		return entities.Order{}, s.transitionFailed(err)
	}

	s.afterTransition(ctx, order.Status, updated, requesterID)
	return updated, nil
}

func (s *OrderService) checkTransition(from entities.OrderStatus, role entities.Role, to entities.OrderStatus) error {
	if entities.CanTransition(from, role, to) {
		return nil
	}
	orderTransitionsRejected.WithLabelValues("not_allowed").Inc()
	return &entities.TransitionError{From: from, To: to}
}

func (s *OrderService) transitionFailed(err error) error {
	if errors.Is(err, entities.ErrStatusConflict) {
		orderTransitionsRejected.WithLabelValues("conflict").Inc()
		return err
	}
	return fmt.Errorf("failed to update order status: %w", err)
}

func (s *OrderService) afterTransition(ctx context.Context, from entities.OrderStatus, order entities.Order, actorID string) {
	orderTransitions.WithLabelValues(string(from), string(order.Status)).Inc()
	s.logger.InfoContext(ctx, "order status changed",
		slog.String("order_id", order.ID),
		slog.String("from", string(from)),
		slog.String("to", string(order.Status)),
		slog.String("actor_id", actorID),
	)

	if order.Status == entities.OrderStatusCompleted {
		s.markProductSold(ctx, order)
	}
	s.publish(ctx, order, entities.OrderEventStatusChanged, from, actorID)
}

// markProductSold не откатывает завершение заказа: при ошибке задача уходит на сверку.
func (s *OrderService) markProductSold(ctx context.Context, order entities.Order) {
	err := utils.Retry(ctx, markSoldRetry, func() error {
		_, err := s.products.MarkSold(ctx, order.ProductID)
		return err
	}, entities.ErrProductNotFound)
	if err == nil {
		return
	}

	s.logger.ErrorContext(ctx, "failed to mark product sold, scheduling reconciliation",
		slog.String("order_id", order.ID),
		slog.String("product_id", order.ProductID),
		slog.String("error", err.Error()),
	)
	productSoldReconciliations.Inc()

	task := entities.ProductSoldTask{ProductID: order.ProductID, OrderID: order.ID, CreatedAt: s.now()}
	if err := s.events.EnqueueProductSold(context.WithoutCancel(ctx), task); err != nil {
		s.logger.ErrorContext(ctx, "failed to enqueue product sold reconciliation",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}
}

// UpdatePaymentStatus меняет статус оплаты по запросу участника заказа.
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, orderID, requesterID string, status entities.PaymentStatus, reference string) (entities.Order, error) {
	if _, _, err := s.orderForParty(ctx, orderID, requesterID); err != nil {
		return entities.Order{}, err
	}
	return s.updatePayment(ctx, orderID, status, reference, requesterID)
}

// ApplyPaymentConfirmation применяет подтверждение от платежного провайдера.
// Повторная доставка того же подтверждения игнорируется.
func (s *OrderService) ApplyPaymentConfirmation(ctx context.Context, c entities.PaymentConfirmation) error {
	key := fmt.Sprintf("payment:%s:%s:%s", c.OrderID, c.Status, c.Reference)
	acquired, err := s.idempotency.AcquireIdempotencyKey(ctx, key, paymentKeyTTL)
	if err != nil {
		return fmt.Errorf("failed to acquire idempotency key: %w", err)
	}
	if !acquired {
		s.logger.InfoContext(ctx, "duplicate payment confirmation skipped",
			slog.String("order_id", c.OrderID),
			slog.String("reference", c.Reference),
		)
		return nil
	}

	if _, err := s.updatePayment(ctx, c.OrderID, c.Status, c.Reference, ""); err != nil {
		if rerr := s.idempotency.ReleaseIdempotencyKey(context.WithoutCancel(ctx), key); rerr != nil {
			s.logger.WarnContext(ctx, "failed to release idempotency key", slog.String("error", rerr.Error()))
		}
		return err
	}
	return nil
}

func (s *OrderService) updatePayment(ctx context.Context, orderID string, status entities.PaymentStatus, reference, actorID string) (entities.Order, error) {
	updated, err := s.orders.UpdatePaymentStatus(ctx, orderID, status, reference, s.now())
	if err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			return entities.Order{}, err
		}
		return entities.Order{}, fmt.Errorf("failed to update payment status: %w", err)
	}

	s.publish(ctx, updated, entities.OrderEventPaymentUpdate, "", actorID)
	s.logger.InfoContext(ctx, "payment status changed",
		slog.String("order_id", updated.ID),
		slog.String("payment_status", string(updated.PaymentStatus)),
	)
	return updated, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID, requesterID string) (entities.Order, error) {
	order, _, err := s.orderForParty(ctx, orderID, requesterID)
	return order, err
}

func (s *OrderService) GetOrderByNumber(ctx context.Context, number, requesterID string) (entities.Order, error) {
	order, err := s.orders.GetOrderByNumber(ctx, number)
	if err != nil {
		return entities.Order{}, err
	}
	if order.RoleOf(requesterID) == entities.RoleNone {
		return entities.Order{}, entities.ErrNotOrderParty
	}
	return order, nil
}

func (s *OrderService) ListBuyerOrders(ctx context.Context, buyerID string, status entities.OrderStatus, page entities.PageRequest) (entities.Page[entities.Order], error) {
	return s.listOrders(ctx, entities.OrderFilter{BuyerID: buyerID, Status: status}, page)
}

func (s *OrderService) ListSellerOrders(ctx context.Context, sellerID string, status entities.OrderStatus, page entities.PageRequest) (entities.Page[entities.Order], error) {
	return s.listOrders(ctx, entities.OrderFilter{SellerID: sellerID, Status: status}, page)
}

func (s *OrderService) listOrders(ctx context.Context, filter entities.OrderFilter, page entities.PageRequest) (entities.Page[entities.Order], error) {
	return paginate(ctx, page,
		func(ctx context.Context, page entities.PageRequest) ([]entities.Order, error) {
			return s.orders.ListOrders(ctx, filter, page)
		},
		func(ctx context.Context) (int, error) {
			return s.orders.CountOrders(ctx, filter)
		},
	)
}

func (s *OrderService) OrderStats(ctx context.Context, sellerID string) (entities.OrderStats, error) {
	return s.orders.OrderStats(ctx, sellerID)
}

func (s *OrderService) orderForParty(ctx context.Context, orderID, requesterID string) (entities.Order, entities.Role, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, entities.RoleNone, err
	}
	role := order.RoleOf(requesterID)
	if role == entities.RoleNone {
		return entities.Order{}, entities.RoleNone, entities.ErrNotOrderParty
	}
	return order, role, nil
}

// publish best-effort: ошибка брокера не откатывает изменение заказа.
func (s *OrderService) publish(ctx context.Context, order entities.Order, eventType string, from entities.OrderStatus, actorID string) {
	event := entities.OrderEvent{
		Type:           eventType,
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		ProductID:      order.ProductID,
		BuyerID:        order.BuyerID,
		SellerID:       order.SellerID,
		PreviousStatus: from,
		Status:         order.Status,
		PaymentStatus:  order.PaymentStatus,
		ActorID:        actorID,
		OccurredAt:     s.now(),
	}
	if err := s.events.PublishOrderEvent(context.WithoutCancel(ctx), event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order event",
			slog.String("order_id", order.ID),
			slog.String("type", eventType),
			slog.String("error", err.Error()),
		)
	}
}
