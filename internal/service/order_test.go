package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-service/internal/service"
	mocks "github.com/SergeyBogomolovv/marketplace-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	buyerID    = "buyer-1"
	sellerID   = "seller-1"
	strangerID = "stranger-1"
	productID  = "product-1"
	orderID    = "order-1"
)

type orderDeps struct {
	orders      *mocks.MockOrderRepo
	products    *mocks.MockProductLookup
	users       *mocks.MockUserLookup
	events      *mocks.MockOrderEventPublisher
	idempotency *mocks.MockIdempotencyStore
}

func newOrderDeps(t *testing.T) orderDeps {
	return orderDeps{
		orders:      mocks.NewMockOrderRepo(t),
		products:    mocks.NewMockProductLookup(t),
		users:       mocks.NewMockUserLookup(t),
		events:      mocks.NewMockOrderEventPublisher(t),
		idempotency: mocks.NewMockIdempotencyStore(t),
	}
}

func (d orderDeps) newService() *service.OrderService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, d.orders, d.products, d.users, d.events, d.idempotency)
}

func testOrder(status entities.OrderStatus) entities.Order {
	return entities.Order{
		ID:            orderID,
		OrderNumber:   "ORD-1700000000000-042",
		ProductID:     productID,
		BuyerID:       buyerID,
		SellerID:      sellerID,
		Quantity:      1,
		TotalAmount:   1500,
		Status:        status,
		PaymentStatus: entities.PaymentStatusPending,
	}
}

func approvedProduct() entities.Product {
	return entities.Product{
		ID:       productID,
		SellerID: sellerID,
		Price:    500,
		Status:   entities.ProductStatusApproved,
		IsActive: true,
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(d orderDeps)

	dbError := errors.New("db error")
	verifiedBuyer := entities.User{ID: buyerID, PhoneVerified: true}
	input := entities.CreateOrderInput{
		ProductID:      productID,
		Quantity:       3,
		DeliveryMethod: entities.DeliveryMethodPickup,
		PaymentMethod:  entities.PaymentMethodCOD,
	}

	testCases := []struct {
		name         string
		buyerID      string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:    "OK",
			buyerID: buyerID,
			mockBehavior: func(d orderDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, buyerID).Return(verifiedBuyer, nil)
				d.products.EXPECT().ProductByID(mock.Anything, productID).Return(approvedProduct(), nil)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						return o, nil
					})
				d.events.EXPECT().PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
					return e.Type == entities.OrderEventCreated && e.Status == entities.OrderStatusPending
				})).Return(nil)
			},
		},
		{
			name:    "buyer not found",
			buyerID: buyerID,
			mockBehavior: func(d orderDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, buyerID).Return(entities.User{}, entities.ErrUserNotFound)
			},
			wantErr: entities.ErrUserNotFound,
		},
		{
			name:    "phone not verified",
			buyerID: buyerID,
			mockBehavior: func(d orderDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, buyerID).Return(entities.User{ID: buyerID}, nil)
			},
			wantErr: entities.ErrPhoneNotVerified,
		},
		{
			name:    "product not found",
			buyerID: buyerID,
			mockBehavior: func(d orderDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, buyerID).Return(verifiedBuyer, nil)
				d.products.EXPECT().ProductByID(mock.Anything, productID).Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:    "product not approved",
			buyerID: buyerID,
			mockBehavior: func(d orderDeps) {
				product := approvedProduct()
				product.Status = entities.ProductStatusPending
				d.users.EXPECT().GetUserByID(mock.Anything, buyerID).Return(verifiedBuyer, nil)
				d.products.EXPECT().ProductByID(mock.Anything, productID).Return(product, nil)
			},
			wantErr: entities.ErrProductUnavailable,
		},
		{
			name:    "product sold",
			buyerID: buyerID,
			mockBehavior: func(d orderDeps) {
				product := approvedProduct()
				product.Status = entities.ProductStatusSold
				d.users.EXPECT().GetUserByID(mock.Anything, buyerID).Return(verifiedBuyer, nil)
				d.products.EXPECT().ProductByID(mock.Anything, productID).Return(product, nil)
			},
			wantErr: entities.ErrProductUnavailable,
		},
		{
			name:    "own product",
			buyerID: sellerID,
			mockBehavior: func(d orderDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, sellerID).Return(entities.User{ID: sellerID, PhoneVerified: true}, nil)
				d.products.EXPECT().ProductByID(mock.Anything, productID).Return(approvedProduct(), nil)
			},
			wantErr: entities.ErrOwnProduct,
		},
		{
			name:    "insert fails",
			buyerID: buyerID,
			mockBehavior: func(d orderDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, buyerID).Return(verifiedBuyer, nil)
				d.products.EXPECT().ProductByID(mock.Anything, productID).Return(approvedProduct(), nil)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, dbError)
			},
			wantErr: dbError,
		},
		{
			name:    "duplicate order number is regenerated",
			buyerID: buyerID,
			mockBehavior: func(d orderDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, buyerID).Return(verifiedBuyer, nil)
				d.products.EXPECT().ProductByID(mock.Anything, productID).Return(approvedProduct(), nil)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrDuplicateOrderNumber).Once()
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						return o, nil
					}).Once()
				d.events.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:    "publish failure does not fail the order",
			buyerID: buyerID,
			mockBehavior: func(d orderDeps) {
				d.users.EXPECT().GetUserByID(mock.Anything, buyerID).Return(verifiedBuyer, nil)
				d.products.EXPECT().ProductByID(mock.Anything, productID).Return(approvedProduct(), nil)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						return o, nil
					})
				d.events.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			tc.mockBehavior(d)

			order, err := d.newService().CreateOrder(context.Background(), tc.buyerID, input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, order.ID)
			assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
			assert.Equal(t, sellerID, order.SellerID)
			assert.Equal(t, buyerID, order.BuyerID)
			assert.Equal(t, int64(1500), order.TotalAmount)
			assert.Equal(t, entities.OrderStatusPending, order.Status)
			assert.Equal(t, entities.PaymentStatusPending, order.PaymentStatus)
		})
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	type MockBehavior func(d orderDeps)

	applyChange := func(_ context.Context, _ string, c entities.StatusChange) (entities.Order, error) {
		o := testOrder(c.To)
		return o, nil
	}

	testCases := []struct {
		name         string
		current      entities.OrderStatus
		requesterID  string
		target       entities.OrderStatus
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:        "seller confirms pending order",
			current:     entities.OrderStatusPending,
			requesterID: sellerID,
			target:      entities.OrderStatusConfirmed,
			mockBehavior: func(d orderDeps) {
				d.orders.EXPECT().UpdateOrderStatus(mock.Anything, orderID, mock.MatchedBy(func(c entities.StatusChange) bool {
					return c.From == entities.OrderStatusPending && c.To == entities.OrderStatusConfirmed
				})).RunAndReturn(applyChange)
				d.events.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:         "buyer cannot confirm",
			current:      entities.OrderStatusPending,
			requesterID:  buyerID,
			target:       entities.OrderStatusConfirmed,
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidTransition,
		},
		{
			name:         "stranger is forbidden",
			current:      entities.OrderStatusPending,
			requesterID:  strangerID,
			target:       entities.OrderStatusConfirmed,
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:         "seller cannot skip to delivered",
			current:      entities.OrderStatusPending,
			requesterID:  sellerID,
			target:       entities.OrderStatusDelivered,
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidTransition,
		},
		{
			name:         "seller cannot complete",
			current:      entities.OrderStatusDelivered,
			requesterID:  sellerID,
			target:       entities.OrderStatusCompleted,
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidTransition,
		},
		{
			name:         "cancelled is terminal",
			current:      entities.OrderStatusCancelled,
			requesterID:  sellerID,
			target:       entities.OrderStatusConfirmed,
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidTransition,
		},
		{
			name:        "concurrent change is a conflict",
			current:     entities.OrderStatusConfirmed,
			requesterID: sellerID,
			target:      entities.OrderStatusShipped,
			mockBehavior: func(d orderDeps) {
				d.orders.EXPECT().UpdateOrderStatus(mock.Anything, orderID, mock.Anything).
					Return(entities.Order{}, entities.ErrStatusConflict)
			},
			wantErr: entities.ErrStatusConflict,
		},
		{
			name:        "cancel through status update records canceller",
			current:     entities.OrderStatusShipped,
			requesterID: buyerID,
			target:      entities.OrderStatusCancelled,
			mockBehavior: func(d orderDeps) {
				d.orders.EXPECT().CancelOrder(mock.Anything, orderID, entities.OrderStatusShipped, buyerID, "changed my mind", mock.Anything).
					Return(testOrder(entities.OrderStatusCancelled), nil)
				d.events.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:        "buyer completes delivered order and product is sold",
			current:     entities.OrderStatusDelivered,
			requesterID: buyerID,
			target:      entities.OrderStatusCompleted,
			mockBehavior: func(d orderDeps) {
				d.orders.EXPECT().UpdateOrderStatus(mock.Anything, orderID, mock.Anything).RunAndReturn(applyChange)
				d.products.EXPECT().MarkSold(mock.Anything, productID).
					Return(entities.Product{ID: productID, Status: entities.ProductStatusSold}, nil)
				d.events.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			d.orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(testOrder(tc.current), nil)
			tc.mockBehavior(d)

			order, err := d.newService().UpdateOrderStatus(context.Background(), orderID, tc.requesterID, tc.target, "changed my mind")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.target, order.Status)
		})
	}
}

func TestOrderService_UpdateOrderStatus_FollowsTransitionTable(t *testing.T) {
	statuses := []entities.OrderStatus{
		entities.OrderStatusPending,
		entities.OrderStatusConfirmed,
		entities.OrderStatusShipped,
		entities.OrderStatusDelivered,
		entities.OrderStatusCancelled,
		entities.OrderStatusCompleted,
	}
	requesters := map[entities.Role]string{
		entities.RoleBuyer:  buyerID,
		entities.RoleSeller: sellerID,
		entities.RoleNone:   strangerID,
	}

	for _, from := range statuses {
		for role, requester := range requesters {
			for _, to := range statuses {
				t.Run(string(from)+"_"+role.String()+"_"+string(to), func(t *testing.T) {
					d := newOrderDeps(t)
					d.orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(testOrder(from), nil)
					d.orders.EXPECT().UpdateOrderStatus(mock.Anything, orderID, mock.Anything).
						Return(testOrder(to), nil).Maybe()
					d.orders.EXPECT().CancelOrder(mock.Anything, orderID, from, requester, mock.Anything, mock.Anything).
						Return(testOrder(to), nil).Maybe()
					d.products.EXPECT().MarkSold(mock.Anything, productID).Return(entities.Product{}, nil).Maybe()
					d.events.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

					_, err := d.newService().UpdateOrderStatus(context.Background(), orderID, requester, to, "")

					switch {
					case role == entities.RoleNone:
						assert.ErrorIs(t, err, entities.ErrForbidden)
					case entities.CanTransition(from, role, to):
						assert.NoError(t, err)
					default:
						var transitionErr *entities.TransitionError
						require.ErrorAs(t, err, &transitionErr)
						assert.Equal(t, from, transitionErr.From)
						assert.Equal(t, to, transitionErr.To)
					}
				})
			}
		}
	}
}

func TestOrderService_Lifecycle(t *testing.T) {
	d := newOrderDeps(t)
	current := testOrder(entities.OrderStatusPending)
	var deliveredAt, completedAt *time.Time

	d.orders.EXPECT().GetOrderByID(mock.Anything, orderID).
		RunAndReturn(func(context.Context, string) (entities.Order, error) {
			return current, nil
		})
	d.orders.EXPECT().UpdateOrderStatus(mock.Anything, orderID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, c entities.StatusChange) (entities.Order, error) {
			if c.From != current.Status {
				return entities.Order{}, entities.ErrStatusConflict
			}
			current.Status = c.To
			if c.To == entities.OrderStatusDelivered && deliveredAt == nil {
				deliveredAt = &c.At
			}
			if c.To == entities.OrderStatusCompleted && completedAt == nil {
				completedAt = &c.At
			}
			current.DeliveredAt, current.CompletedAt = deliveredAt, completedAt
			return current, nil
		})
	d.products.EXPECT().MarkSold(mock.Anything, productID).
		Return(entities.Product{ID: productID, Status: entities.ProductStatusSold}, nil).Once()
	d.events.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Times(4)

	svc := d.newService()
	ctx := context.Background()

	steps := []struct {
		requester string
		to        entities.OrderStatus
	}{
		{sellerID, entities.OrderStatusConfirmed},
		{sellerID, entities.OrderStatusShipped},
		{sellerID, entities.OrderStatusDelivered},
		{buyerID, entities.OrderStatusCompleted},
	}
	for _, step := range steps {
		order, err := svc.UpdateOrderStatus(ctx, orderID, step.requester, step.to, "")
		require.NoError(t, err)
		assert.Equal(t, step.to, order.Status)
	}

	assert.NotNil(t, current.DeliveredAt)
	assert.NotNil(t, current.CompletedAt)

	// завершенный заказ нельзя отменить
	_, err := svc.CancelOrder(ctx, orderID, sellerID, "too late")
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
}

func TestOrderService_MarkSoldFailureSchedulesReconciliation(t *testing.T) {
	d := newOrderDeps(t)
	d.orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(testOrder(entities.OrderStatusDelivered), nil)
	d.orders.EXPECT().UpdateOrderStatus(mock.Anything, orderID, mock.Anything).
		Return(testOrder(entities.OrderStatusCompleted), nil)
	d.products.EXPECT().MarkSold(mock.Anything, productID).
		Return(entities.Product{}, errors.New("db unavailable")).Times(3)
	d.events.EXPECT().EnqueueProductSold(mock.Anything, mock.MatchedBy(func(task entities.ProductSoldTask) bool {
		return task.ProductID == productID && task.OrderID == orderID
	})).Return(nil)
	d.events.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)

	order, err := d.newService().UpdateOrderStatus(context.Background(), orderID, buyerID, entities.OrderStatusCompleted, "")

	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusCompleted, order.Status)
}

func TestOrderService_CancelOrder(t *testing.T) {
	testCases := []struct {
		name        string
		current     entities.OrderStatus
		requesterID string
		wantErr     error
	}{
		{name: "buyer cancels pending", current: entities.OrderStatusPending, requesterID: buyerID},
		{name: "seller cancels confirmed", current: entities.OrderStatusConfirmed, requesterID: sellerID},
		{name: "delivered cannot be cancelled", current: entities.OrderStatusDelivered, requesterID: buyerID, wantErr: entities.ErrInvalidTransition},
		{name: "already cancelled", current: entities.OrderStatusCancelled, requesterID: sellerID, wantErr: entities.ErrInvalidTransition},
		{name: "stranger", current: entities.OrderStatusPending, requesterID: strangerID, wantErr: entities.ErrNotOrderParty},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			d.orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(testOrder(tc.current), nil)
			if tc.wantErr == nil {
				cancelled := testOrder(entities.OrderStatusCancelled)
				cancelled.CancelledBy = tc.requesterID
				cancelled.CancellationReason = "out of stock"
				d.orders.EXPECT().CancelOrder(mock.Anything, orderID, tc.current, tc.requesterID, "out of stock", mock.Anything).
					Return(cancelled, nil)
				d.events.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)
			}

			order, err := d.newService().CancelOrder(context.Background(), orderID, tc.requesterID, "out of stock")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.OrderStatusCancelled, order.Status)
			assert.Equal(t, tc.requesterID, order.CancelledBy)
		})
	}
}

func TestOrderService_UpdatePaymentStatus(t *testing.T) {
	t.Run("party updates payment without touching status", func(t *testing.T) {
		d := newOrderDeps(t)
		paid := testOrder(entities.OrderStatusShipped)
		paid.PaymentStatus = entities.PaymentStatusPaid
		paid.PaymentReference = "ref-1"

		d.orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(testOrder(entities.OrderStatusShipped), nil)
		d.orders.EXPECT().UpdatePaymentStatus(mock.Anything, orderID, entities.PaymentStatusPaid, "ref-1", mock.Anything).
			Return(paid, nil)
		d.events.EXPECT().PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
			return e.Type == entities.OrderEventPaymentUpdate
		})).Return(nil)

		order, err := d.newService().UpdatePaymentStatus(context.Background(), orderID, sellerID, entities.PaymentStatusPaid, "ref-1")

		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusShipped, order.Status)
		assert.Equal(t, entities.PaymentStatusPaid, order.PaymentStatus)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		d := newOrderDeps(t)
		d.orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(testOrder(entities.OrderStatusPending), nil)

		_, err := d.newService().UpdatePaymentStatus(context.Background(), orderID, strangerID, entities.PaymentStatusPaid, "")

		assert.ErrorIs(t, err, entities.ErrForbidden)
	})
}

func TestOrderService_ApplyPaymentConfirmation(t *testing.T) {
	type MockBehavior func(d orderDeps)

	confirmation := entities.PaymentConfirmation{OrderID: orderID, Status: entities.PaymentStatusPaid, Reference: "ref-1"}
	key := "payment:order-1:paid:ref-1"
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(d orderDeps) {
				d.idempotency.EXPECT().AcquireIdempotencyKey(mock.Anything, key, mock.Anything).Return(true, nil)
				d.orders.EXPECT().UpdatePaymentStatus(mock.Anything, orderID, entities.PaymentStatusPaid, "ref-1", mock.Anything).
					Return(testOrder(entities.OrderStatusPending), nil)
				d.events.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name: "duplicate is skipped",
			mockBehavior: func(d orderDeps) {
				d.idempotency.EXPECT().AcquireIdempotencyKey(mock.Anything, key, mock.Anything).Return(false, nil)
			},
		},
		{
			name: "update failure releases key",
			mockBehavior: func(d orderDeps) {
				d.idempotency.EXPECT().AcquireIdempotencyKey(mock.Anything, key, mock.Anything).Return(true, nil)
				d.orders.EXPECT().UpdatePaymentStatus(mock.Anything, orderID, entities.PaymentStatusPaid, "ref-1", mock.Anything).
					Return(entities.Order{}, dbError)
				d.idempotency.EXPECT().ReleaseIdempotencyKey(mock.Anything, key).Return(nil)
			},
			wantErr: dbError,
		},
		{
			name: "unknown order",
			mockBehavior: func(d orderDeps) {
				d.idempotency.EXPECT().AcquireIdempotencyKey(mock.Anything, key, mock.Anything).Return(true, nil)
				d.orders.EXPECT().UpdatePaymentStatus(mock.Anything, orderID, entities.PaymentStatusPaid, "ref-1", mock.Anything).
					Return(entities.Order{}, entities.ErrOrderNotFound)
				d.idempotency.EXPECT().ReleaseIdempotencyKey(mock.Anything, key).Return(nil)
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			tc.mockBehavior(d)

			err := d.newService().ApplyPaymentConfirmation(context.Background(), confirmation)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	testCases := []struct {
		name        string
		requesterID string
		wantErr     error
	}{
		{name: "buyer", requesterID: buyerID},
		{name: "seller", requesterID: sellerID},
		{name: "stranger", requesterID: strangerID, wantErr: entities.ErrNotOrderParty},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			d.orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(testOrder(entities.OrderStatusPending), nil)
			d.orders.EXPECT().GetOrderByNumber(mock.Anything, "ORD-1700000000000-042").Return(testOrder(entities.OrderStatusPending), nil)
			svc := d.newService()

			byID, err := svc.GetOrder(context.Background(), orderID, tc.requesterID)
			byNumber, numberErr := svc.GetOrderByNumber(context.Background(), "ORD-1700000000000-042", tc.requesterID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, numberErr, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, numberErr)
			assert.Equal(t, orderID, byID.ID)
			assert.Equal(t, orderID, byNumber.ID)
		})
	}

	t.Run("not found", func(t *testing.T) {
		d := newOrderDeps(t)
		d.orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(entities.Order{}, entities.ErrOrderNotFound)

		_, err := d.newService().GetOrder(context.Background(), orderID, buyerID)

		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_ListBuyerOrders(t *testing.T) {
	d := newOrderDeps(t)
	filter := entities.OrderFilter{BuyerID: buyerID, Status: entities.OrderStatusPending}
	page := entities.PageRequest{Page: 2, Limit: 2}

	d.orders.EXPECT().ListOrders(mock.Anything, filter, page).
		Return([]entities.Order{testOrder(entities.OrderStatusPending)}, nil)
	d.orders.EXPECT().CountOrders(mock.Anything, filter).Return(3, nil)

	result, err := d.newService().ListBuyerOrders(context.Background(), buyerID, entities.OrderStatusPending, page)

	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Pages)
	assert.Equal(t, 2, result.Page)
}

func TestOrderService_ListSellerOrders_CountFails(t *testing.T) {
	d := newOrderDeps(t)
	dbError := errors.New("db error")
	filter := entities.OrderFilter{SellerID: sellerID}

	d.orders.EXPECT().ListOrders(mock.Anything, filter, mock.Anything).Return(nil, nil).Maybe()
	d.orders.EXPECT().CountOrders(mock.Anything, filter).Return(0, dbError)

	_, err := d.newService().ListSellerOrders(context.Background(), sellerID, "", entities.PageRequest{})

	assert.ErrorIs(t, err, dbError)
}

func TestOrderService_OrderStats(t *testing.T) {
	d := newOrderDeps(t)
	stats := entities.OrderStats{
		entities.OrderStatusCompleted: {Count: 2, TotalAmount: 3000},
	}
	d.orders.EXPECT().OrderStats(mock.Anything, sellerID).Return(stats, nil)

	got, err := d.newService().OrderStats(context.Background(), sellerID)

	require.NoError(t, err)
	assert.Equal(t, stats, got)
}
