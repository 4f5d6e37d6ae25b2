package repo

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderToEntity(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("courier delivery", func(t *testing.T) {
		order := OrderToEntity(Order{
			ID:               "o-1",
			OrderNumber:      "ORD-20250301-000001",
			Status:           "delivered",
			PaymentStatus:    "paid",
			DeliveryMethod:   "delivery",
			DeliveryStreet:   sql.NullString{String: "12 Main St", Valid: true},
			DeliveryCity:     sql.NullString{String: "Harare", Valid: true},
			DeliveryPhone:    sql.NullString{String: "0771234567", Valid: true},
			PaymentReference: sql.NullString{String: "ECO-1", Valid: true},
			DeliveredAt:      sql.NullTime{Time: now, Valid: true},
			CreatedAt:        now,
		})

		require.NotNil(t, order.DeliveryAddress)
		assert.Equal(t, "12 Main St", order.DeliveryAddress.Street)
		assert.Equal(t, "Harare", order.DeliveryAddress.City)
		assert.Empty(t, order.DeliveryAddress.Province)
		assert.Equal(t, entities.OrderStatusDelivered, order.Status)
		assert.Equal(t, "ECO-1", order.PaymentReference)
		require.NotNil(t, order.DeliveredAt)
		assert.Equal(t, now, *order.DeliveredAt)
		assert.Nil(t, order.CompletedAt)
	})

	t.Run("pickup has no address", func(t *testing.T) {
		order := OrderToEntity(Order{ID: "o-2", DeliveryMethod: "pickup", Status: "pending"})

		assert.Nil(t, order.DeliveryAddress)
		assert.Empty(t, order.CancelledBy)
		assert.Empty(t, order.Message)
	})
}

func TestProductToEntity(t *testing.T) {
	product := ProductToEntity(Product{
		ID:              "p-1",
		Images:          pq.StringArray{"a.jpg", "b.jpg"},
		DeliveryOptions: pq.StringArray{"pickup"},
		City:            "Bulawayo",
		Province:        "Bulawayo",
		Status:          "rejected",
		RejectionReason: sql.NullString{String: "blurry photos", Valid: true},
	})

	assert.Equal(t, []string{"a.jpg", "b.jpg"}, product.Images)
	assert.Equal(t, entities.Location{City: "Bulawayo", Province: "Bulawayo"}, product.Location)
	assert.Equal(t, entities.ProductStatusRejected, product.Status)
	assert.Equal(t, "blurry photos", product.RejectionReason)
	assert.Nil(t, product.SoldAt)
	assert.Nil(t, product.ApprovedAt)
}

func TestUserToEntity(t *testing.T) {
	user := UserToEntity(User{
		ID:            "u-1",
		UserType:      "seller",
		RatingAverage: 4.5,
		RatingCount:   2,
		EcocashNumber: sql.NullString{},
	})

	assert.Equal(t, entities.UserTypeSeller, user.UserType)
	assert.Equal(t, entities.Rating{Average: 4.5, Count: 2}, user.Rating)
	assert.Empty(t, user.EcocashNumber)
	assert.Nil(t, user.LastLogin)
}

func TestNullString(t *testing.T) {
	assert.False(t, nullString("").Valid)
	assert.Equal(t, sql.NullString{String: "x", Valid: true}, nullString("x"))
}

func TestProductConditions(t *testing.T) {
	testCases := []struct {
		name     string
		query    entities.ProductQuery
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "no filters",
			query:   entities.ProductQuery{},
			wantSQL: "(1=1)",
		},
		{
			name: "seller listing",
			query: entities.ProductQuery{
				SellerID: "s-1",
			},
			wantSQL:  "(seller_id = ?)",
			wantArgs: []any{"s-1"},
		},
		{
			name: "public catalog",
			query: entities.ProductQuery{
				ActiveOnly: true,
				Filter: entities.ProductFilter{
					MinPrice: 100,
					MaxPrice: 5000,
					Search:   "bike",
				},
			},
			wantSQL: "(is_active = ? AND price >= ? AND price <= ? AND " +
				"to_tsvector('simple', name || ' ' || description) @@ plainto_tsquery('simple', ?))",
			wantArgs: []any{true, int64(100), int64(5000), "bike"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := productConditions(tc.query).ToSql()

			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, query)
			if tc.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tc.wantArgs, args)
			}
		})
	}
}

func TestReturning(t *testing.T) {
	assert.Equal(t, "RETURNING id, order_id, reviewer_id, reviewed_id, rating, comment, is_active, created_at", returning(reviewColumns))
}

func TestStatusUpdateQuery(t *testing.T) {
	qb := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	const id = "3b2f6d0e-7c41-4f0a-9d8e-5a6b7c8d9e10"

	testCases := []struct {
		name         string
		change       entities.StatusChange
		wantSet      string
		wantWhere    string
		wantArgs     []any
		wantCoalesce bool
	}{
		{
			name:      "confirm with notes",
			change:    entities.StatusChange{From: entities.OrderStatusPending, To: entities.OrderStatusConfirmed, Notes: "packed", At: at},
			wantSet:   "SET status = $1, updated_at = $2, notes = $3 WHERE",
			wantWhere: "WHERE id = $4 AND status = $5 RETURNING",
			wantArgs:  []any{entities.OrderStatusConfirmed, at, "packed", id, entities.OrderStatusPending},
		},
		{
			name:      "ship without notes",
			change:    entities.StatusChange{From: entities.OrderStatusConfirmed, To: entities.OrderStatusShipped, At: at},
			wantSet:   "SET status = $1, updated_at = $2 WHERE",
			wantWhere: "WHERE id = $3 AND status = $4 RETURNING",
			wantArgs:  []any{entities.OrderStatusShipped, at, id, entities.OrderStatusConfirmed},
		},
		{
			name:         "deliver keeps first timestamp",
			change:       entities.StatusChange{From: entities.OrderStatusShipped, To: entities.OrderStatusDelivered, Notes: "left at door", At: at},
			wantSet:      "notes = $3, delivered_at = COALESCE(delivered_at, $4) WHERE",
			wantWhere:    "WHERE id = $5 AND status = $6 RETURNING",
			wantArgs:     []any{entities.OrderStatusDelivered, at, "left at door", at, id, entities.OrderStatusShipped},
			wantCoalesce: true,
		},
		{
			name:         "complete keeps first timestamp",
			change:       entities.StatusChange{From: entities.OrderStatusDelivered, To: entities.OrderStatusCompleted, At: at},
			wantSet:      "updated_at = $2, completed_at = COALESCE(completed_at, $3) WHERE",
			wantWhere:    "WHERE id = $4 AND status = $5 RETURNING",
			wantArgs:     []any{entities.OrderStatusCompleted, at, at, id, entities.OrderStatusDelivered},
			wantCoalesce: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := statusUpdateQuery(qb, id, tc.change).ToSql()

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(query, "UPDATE orders SET status = $1"), query)
			assert.Contains(t, query, tc.wantSet)
			assert.Contains(t, query, tc.wantWhere)
			assert.True(t, strings.HasSuffix(query, returning(orderColumns)), query)
			assert.Equal(t, tc.wantArgs, args)
			if tc.wantCoalesce {
				assert.Contains(t, query, "COALESCE")
			} else {
				assert.NotContains(t, query, "COALESCE")
			}
		})
	}
}

func TestCancelQuery(t *testing.T) {
	qb := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	const id, buyer = "3b2f6d0e-7c41-4f0a-9d8e-5a6b7c8d9e10", "6f1d2c3a-0b7e-4c51-9a2d-1e5f3b7c9d01"

	t.Run("with reason", func(t *testing.T) {
		query, args, err := cancelQuery(qb, id, entities.OrderStatusConfirmed, buyer, "changed my mind", at).ToSql()

		require.NoError(t, err)
		assert.Contains(t, query, "SET status = $1, cancelled_by = $2, cancellation_reason = $3, updated_at = $4 WHERE id = $5 AND status = $6")
		assert.Equal(t, []any{
			entities.OrderStatusCancelled, buyer, sql.NullString{String: "changed my mind", Valid: true},
			at, id, entities.OrderStatusConfirmed,
		}, args)
	})

	t.Run("without reason stores null", func(t *testing.T) {
		_, args, err := cancelQuery(qb, id, entities.OrderStatusPending, buyer, "", at).ToSql()

		require.NoError(t, err)
		require.Len(t, args, 6)
		assert.Equal(t, sql.NullString{}, args[2])
		assert.Equal(t, entities.OrderStatusPending, args[5])
	})
}

func TestUserConditions(t *testing.T) {
	suspended := false

	testCases := []struct {
		name     string
		filter   entities.UserFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "all users",
			wantSQL: "(1=1)",
		},
		{
			name:     "active sellers",
			filter:   entities.UserFilter{UserType: entities.UserTypeSeller, Suspended: &suspended},
			wantSQL:  "(user_type = ? AND is_suspended = ?)",
			wantArgs: []any{entities.UserTypeSeller, false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := userConditions(tc.filter).ToSql()

			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, query)
			if tc.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tc.wantArgs, args)
			}
		})
	}
}

func TestUserToEntity_Suspension(t *testing.T) {
	user := UserToEntity(User{
		ID:               "u-2",
		IsSuspended:      true,
		SuspensionReason: sql.NullString{String: "fraudulent listings", Valid: true},
	})

	assert.True(t, user.IsSuspended)
	assert.Equal(t, "fraudulent listings", user.SuspensionReason)
}
