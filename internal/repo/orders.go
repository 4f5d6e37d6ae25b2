package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	var street, city, province, phone string
	if a := o.DeliveryAddress; a != nil {
		street, city, province, phone = a.Street, a.City, a.Province, a.PhoneNumber
	}

	query, args := r.qb.Insert("orders").
		Columns(
			"id", "order_number", "product_id", "buyer_id", "seller_id", "quantity", "total_amount",
			"delivery_method", "payment_method", "delivery_street", "delivery_city",
			"delivery_province", "delivery_phone", "message", "status", "payment_status",
			"created_at", "updated_at",
		).
		Values(
			o.ID, o.OrderNumber, o.ProductID, o.BuyerID, o.SellerID, o.Quantity, o.TotalAmount,
			o.DeliveryMethod, o.PaymentMethod, nullString(street), nullString(city),
			nullString(province), nullString(phone), nullString(o.Message), o.Status, o.PaymentStatus,
			o.CreatedAt, o.UpdatedAt,
		).
		Suffix(returning(orderColumns)).
		MustSql()

	var order Order
	if err := r.getContext(ctx, &order, query, args...); err != nil {
		if isUniqueViolation(err) {
			return entities.Order{}, entities.ErrDuplicateOrderNumber
		}
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, number string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"order_number": number})
}

func (r *postgresRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order), nil
}

func orderFilter(f entities.OrderFilter) sq.Eq {
	where := sq.Eq{}
	if f.BuyerID != "" {
		where["buyer_id"] = f.BuyerID
	}
	if f.SellerID != "" {
		where["seller_id"] = f.SellerID
	}
	if f.Status != "" {
		where["status"] = f.Status
	}
	return where
}

func (r *postgresRepo) ListOrders(ctx context.Context, f entities.OrderFilter, page entities.PageRequest) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(orderFilter(f)).
		OrderBy("created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o))
	}
	return result, nil
}

func (r *postgresRepo) CountOrders(ctx context.Context, f entities.OrderFilter) (int, error) {
	total, err := r.count(ctx, r.qb.Select("COUNT(*)").From("orders").Where(orderFilter(f)))
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

type statusStatsRow struct {
	Status      string `db:"status"`
	Count       int    `db:"count"`
	TotalAmount int64  `db:"total_amount"`
}

func (r *postgresRepo) OrderStats(ctx context.Context, sellerID string) (entities.OrderStats, error) {
	query, args := r.qb.Select("status", "COUNT(*) AS count", "COALESCE(SUM(total_amount), 0) AS total_amount").
		From("orders").
		Where(sq.Eq{"seller_id": sellerID}).
		GroupBy("status").
		MustSql()

	var rows []statusStatsRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order stats: %w", err)
	}

	stats := make(entities.OrderStats, len(rows))
	for _, row := range rows {
		stats[entities.OrderStatus(row.Status)] = entities.StatusStats{
			Count:       row.Count,
			TotalAmount: row.TotalAmount,
		}
	}
	return stats, nil
}

// UpdateOrderStatus меняет статус, только если заказ все еще в change.From.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, id string, change entities.StatusChange) (entities.Order, error) {
	query, args := statusUpdateQuery(r.qb, id, change).MustSql()
	return r.updateOrderConditionally(ctx, query, args...)
}

func (r *postgresRepo) CancelOrder(ctx context.Context, id string, from entities.OrderStatus, cancelledBy, reason string, at time.Time) (entities.Order, error) {
	query, args := cancelQuery(r.qb, id, from, cancelledBy, reason, at).MustSql()
	return r.updateOrderConditionally(ctx, query, args...)
}

// statusUpdateQuery отметки delivered_at и completed_at ставятся один раз.
func statusUpdateQuery(qb sq.StatementBuilderType, id string, change entities.StatusChange) sq.UpdateBuilder {
	q := qb.Update("orders").
		Set("status", change.To).
		Set("updated_at", change.At)

	if change.Notes != "" {
		q = q.Set("notes", change.Notes)
	}

	switch change.To {
	case entities.OrderStatusDelivered:
		q = q.Set("delivered_at", sq.Expr("COALESCE(delivered_at, ?)", change.At))
	case entities.OrderStatusCompleted:
		q = q.Set("completed_at", sq.Expr("COALESCE(completed_at, ?)", change.At))
	}

	return q.
		Where(sq.Eq{"id": id, "status": change.From}).
		Suffix(returning(orderColumns))
}

func cancelQuery(qb sq.StatementBuilderType, id string, from entities.OrderStatus, cancelledBy, reason string, at time.Time) sq.UpdateBuilder {
	return qb.Update("orders").
		Set("status", entities.OrderStatusCancelled).
		Set("cancelled_by", cancelledBy).
		Set("cancellation_reason", nullString(reason)).
		Set("updated_at", at).
		Where(sq.Eq{"id": id, "status": from}).
		Suffix(returning(orderColumns))
}

func (r *postgresRepo) updateOrderConditionally(ctx context.Context, query string, args ...any) (entities.Order, error) {
	var order Order
	err := r.getContext(ctx, &order, query, args...)
	// заказы не удаляются, поэтому отсутствие строки означает, что статус уже сменился
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrStatusConflict
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus, reference string, at time.Time) (entities.Order, error) {
	q := r.qb.Update("orders").
		Set("payment_status", status).
		Set("updated_at", at)

	if reference != "" {
		q = q.Set("payment_reference", reference)
	}

	query, args := q.
		Where(sq.Eq{"id": id}).
		Suffix(returning(orderColumns)).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update payment status: %w", err)
	}
	return OrderToEntity(order), nil
}
