package handler_test

import (
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/marketplace-service/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewHandler_CreateReview(t *testing.T) {
	const body = `{"order_id":"` + orderID + `","rating":5,"comment":"Great seller, fast delivery"}`

	testCases := []struct {
		name       string
		body       string
		err        error
		callsSvc   bool
		wantStatus int
	}{
		{name: "success", body: body, callsSvc: true, wantStatus: http.StatusCreated},
		{name: "order not completed", body: body, err: entities.ErrOrderNotCompleted, callsSvc: true, wantStatus: http.StatusUnprocessableEntity},
		{name: "not the buyer", body: body, err: entities.ErrNotOrderBuyer, callsSvc: true, wantStatus: http.StatusForbidden},
		{name: "rating out of range", body: `{"order_id":"` + orderID + `","rating":6,"comment":"Great seller, fast delivery"}`, wantStatus: http.StatusBadRequest},
		{name: "comment too short", body: `{"order_id":"` + orderID + `","rating":4,"comment":"ok"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockReviewService(t)
			if tc.callsSvc {
				svc.EXPECT().CreateReview(mock.Anything, buyerID, entities.CreateReviewInput{
					OrderID: orderID,
					Rating:  5,
					Comment: "Great seller, fast delivery",
				}).Return(entities.Review{ID: reviewID, Rating: 5}, tc.err).Once()
			}
			h := handler.NewReviewHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

			status, _ := serve(t, h, http.MethodPost, "/reviews", tc.body)

			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestReviewHandler_DeleteReview(t *testing.T) {
	svc := mocks.NewMockReviewService(t)
	svc.EXPECT().DeleteReview(mock.Anything, reviewID, buyerID).Return(nil).Once()
	h := handler.NewReviewHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

	status, _ := serve(t, h, http.MethodDelete, "/reviews/"+reviewID, "")

	assert.Equal(t, http.StatusNoContent, status)
}

func TestReviewHandler_SellerReviews(t *testing.T) {
	svc := mocks.NewMockReviewService(t)
	svc.EXPECT().ListSellerReviews(mock.Anything, sellerID, entities.PageRequest{Page: 1, Limit: entities.DefaultPageLimit}).
		Return(entities.NewPage([]entities.Review{{ID: reviewID, Rating: 4}}, 1, entities.PageRequest{Page: 1, Limit: 10}), nil).Once()
	svc.EXPECT().SellerRating(mock.Anything, sellerID).Return(entities.Rating{Average: 4, Count: 1}, nil).Once()
	h := handler.NewReviewHandler(discardLogger(), asUser("", ""), svc)

	status, body := serve(t, h, http.MethodGet, "/sellers/"+sellerID+"/reviews", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"id":"`+reviewID+`"`)

	status, body = serve(t, h, http.MethodGet, "/sellers/"+sellerID+"/rating", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"average":4,"count":1}`, body)
}

func TestReviewHandler_MalformedID(t *testing.T) {
	testCases := []struct {
		name   string
		method string
		target string
	}{
		{name: "delete", method: http.MethodDelete, target: "/reviews/nope"},
		{name: "seller reviews", method: http.MethodGet, target: "/sellers/nope/reviews"},
		{name: "seller rating", method: http.MethodGet, target: "/sellers/42/rating"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockReviewService(t)
			h := handler.NewReviewHandler(discardLogger(), asUser(adminID, "admin"), svc)

			status, body := serve(t, h, tc.method, tc.target, "")

			assert.Equal(t, http.StatusBadRequest, status)
			assert.Contains(t, body, `"id":"uuid"`)
		})
	}
}

func TestReviewHandler_UserReviews(t *testing.T) {
	svc := mocks.NewMockReviewService(t)
	svc.EXPECT().ListUserReviews(mock.Anything, buyerID, entities.PageRequest{Page: 1, Limit: entities.DefaultPageLimit}).
		Return(entities.NewPage([]entities.Review{{ID: reviewID, ReviewerID: buyerID}}, 1, entities.PageRequest{Page: 1, Limit: entities.DefaultPageLimit}), nil).Once()
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
	h := handler.NewReviewHandler(discardLogger(), deny, svc)

	status, body := serve(t, h, http.MethodGet, "/reviews/reviewer/"+buyerID, "")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"reviewer_id":"`+buyerID+`"`)
}

func TestReviewHandler_OrderReview(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := mocks.NewMockReviewService(t)
		svc.EXPECT().GetOrderReview(mock.Anything, orderID).
			Return(entities.Review{ID: reviewID, OrderID: orderID, Rating: 5}, nil).Once()
		h := handler.NewReviewHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

		status, body := serve(t, h, http.MethodGet, "/reviews/order/"+orderID, "")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"rating":5`)
	})

	t.Run("not reviewed yet", func(t *testing.T) {
		svc := mocks.NewMockReviewService(t)
		svc.EXPECT().GetOrderReview(mock.Anything, orderID).
			Return(entities.Review{}, entities.ErrReviewNotFound).Once()
		h := handler.NewReviewHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

		status, _ := serve(t, h, http.MethodGet, "/reviews/order/"+orderID, "")

		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("malformed order id", func(t *testing.T) {
		svc := mocks.NewMockReviewService(t)
		h := handler.NewReviewHandler(discardLogger(), asUser(buyerID, "buyer"), svc)

		status, body := serve(t, h, http.MethodGet, "/reviews/order/nope", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"id":"uuid"`)
	})
}
