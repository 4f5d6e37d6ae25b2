package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/marketplace-service/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	const pickupBody = `{"product_id":"` + productID + `","quantity":2,"delivery_method":"pickup","payment_method":"cod"}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: pickupBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, buyerID, entities.CreateOrderInput{
						ProductID:      productID,
						Quantity:       2,
						DeliveryMethod: entities.DeliveryMethodPickup,
						PaymentMethod:  entities.PaymentMethodCOD,
					}).
					Return(entities.Order{ID: orderID, OrderNumber: "ORD-1-001", Status: entities.OrderStatusPending}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_number":"ORD-1-001"`,
		},
		{
			name:         "delivery without address",
			body:         `{"product_id":"` + productID + `","delivery_method":"delivery","payment_method":"cod"}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"DeliveryAddress":"required_if"`,
		},
		{
			name:         "unknown payment method",
			body:         `{"product_id":"` + productID + `","delivery_method":"pickup","payment_method":"card"}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"PaymentMethod":"oneof"`,
		},
		{
			name:         "malformed json",
			body:         `{"product_id":`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "phone not verified",
			body: pickupBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, buyerID, mock.Anything).
					Return(entities.Order{}, entities.ErrPhoneNotVerified).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `phone number must be verified`,
		},
		{
			name: "product not found",
			body: pickupBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, buyerID, mock.Anything).
					Return(entities.Order{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
		{
			name: "internal error",
			body: pickupBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, buyerID, mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			h := handler.NewOrderHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

			status, body := serve(t, h, http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "not allowed", err: &entities.TransitionError{From: entities.OrderStatusPending, To: entities.OrderStatusShipped}, wantStatus: http.StatusConflict},
		{name: "changed concurrently", err: entities.ErrStatusConflict, wantStatus: http.StatusConflict},
		{name: "stranger", err: entities.ErrNotOrderParty, wantStatus: http.StatusForbidden},
		{name: "missing order", err: entities.ErrOrderNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			svc.EXPECT().
				UpdateOrderStatus(mock.Anything, orderID, sellerID, entities.OrderStatusConfirmed, "packed").
				Return(entities.Order{ID: orderID, Status: entities.OrderStatusConfirmed}, tc.err).Once()
			h := handler.NewOrderHandler(discardLogger(), asUser(sellerID, "seller"), svc)

			status, _ := serve(t, h, http.MethodPatch, "/orders/"+orderID+"/status", `{"status":"confirmed","notes":"packed"}`)

			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestOrderHandler_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	h := handler.NewOrderHandler(discardLogger(), asUser(sellerID, "seller"), svc)

	status, body := serve(t, h, http.MethodPatch, "/orders/"+orderID+"/status", `{"status":"refunded"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, `"Status":"oneof"`)
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().CancelOrder(mock.Anything, orderID, buyerID, "changed my mind").
			Return(entities.Order{ID: orderID, Status: entities.OrderStatusCancelled, CancelledBy: buyerID}, nil).Once()
		h := handler.NewOrderHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

		status, body := serve(t, h, http.MethodPost, "/orders/"+orderID+"/cancel", `{"reason":"changed my mind"}`)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"cancelled_by":"`+buyerID+`"`)
	})

	t.Run("without body", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().CancelOrder(mock.Anything, orderID, buyerID, "").
			Return(entities.Order{}, entities.ErrInvalidTransition).Once()
		h := handler.NewOrderHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

		status, _ := serve(t, h, http.MethodPost, "/orders/"+orderID+"/cancel", "")

		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("chunked empty body", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().CancelOrder(mock.Anything, orderID, buyerID, "").
			Return(entities.Order{ID: orderID, Status: entities.OrderStatusCancelled}, nil).Once()
		h := handler.NewOrderHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

		req := httptest.NewRequest(http.MethodPost, "/orders/"+orderID+"/cancel", strings.NewReader(""))
		req.ContentLength = -1
		req.TransferEncoding = []string{"chunked"}

		status, _ := serveRequest(t, h, req)

		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		h := handler.NewOrderHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

		status, _ := serve(t, h, http.MethodPost, "/orders/"+orderID+"/cancel", `{"reason":`)

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestOrderHandler_MalformedID(t *testing.T) {
	testCases := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "get", method: http.MethodGet, target: "/orders/nope"},
		{name: "update status", method: http.MethodPatch, target: "/orders/nope/status", body: `{"status":"confirmed"}`},
		{name: "cancel", method: http.MethodPost, target: "/orders/nope/cancel"},
		{name: "payment", method: http.MethodPatch, target: "/orders/42/payment", body: `{"payment_status":"paid"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			h := handler.NewOrderHandler(discardLogger(), asUser(sellerID, "seller"), svc)

			status, body := serve(t, h, tc.method, tc.target, tc.body)

			assert.Equal(t, http.StatusBadRequest, status)
			assert.Contains(t, body, `"id":"uuid"`)
		})
	}
}

func TestOrderHandler_ListBuyerOrders_HugePage(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().
		ListBuyerOrders(mock.Anything, buyerID, entities.OrderStatus(""), entities.PageRequest{Page: entities.MaxPage, Limit: entities.DefaultPageLimit}).
		Return(entities.Page[entities.Order]{}, nil).Once()
	h := handler.NewOrderHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

	status, _ := serve(t, h, http.MethodGet, "/orders/buyer?page=9223372036854775807", "")

	assert.Equal(t, http.StatusOK, status)
}

func TestOrderHandler_ListBuyerOrders(t *testing.T) {
	t.Run("passes filter and page", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().
			ListBuyerOrders(mock.Anything, buyerID, entities.OrderStatusShipped, entities.PageRequest{Page: 2, Limit: 5}).
			Return(entities.NewPage([]entities.Order{{ID: orderID}}, 6, entities.PageRequest{Page: 2, Limit: 5}), nil).Once()
		h := handler.NewOrderHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

		status, body := serve(t, h, http.MethodGet, "/orders/buyer?status=shipped&page=2&limit=5", "")
		require.Equal(t, http.StatusOK, status)

		var page handler.Page[handler.Order]
		require.NoError(t, json.Unmarshal([]byte(body), &page))
		assert.Equal(t, 6, page.Total)
		assert.Equal(t, 2, page.Pages)
		assert.Len(t, page.Items, 1)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		h := handler.NewOrderHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

		status, _ := serve(t, h, http.MethodGet, "/orders/buyer?status=lost", "")

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestOrderHandler_OrderStats(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().OrderStats(mock.Anything, sellerID).Return(entities.OrderStats{
		entities.OrderStatusCompleted: {Count: 2, TotalAmount: 3000},
	}, nil).Once()
	h := handler.NewOrderHandler(discardLogger(), asUser(sellerID, "seller"), svc)

	status, body := serve(t, h, http.MethodGet, "/orders/stats", "")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"completed":{"count":2,"total_amount":3000}}`, body)
}

func TestOrderHandler_RequiresAuth(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
	h := handler.NewOrderHandler(discardLogger(), deny, svc)

	status, _ := serve(t, h, http.MethodGet, "/orders/"+orderID, "")

	assert.Equal(t, http.StatusUnauthorized, status)
}
