package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

func (r *postgresRepo) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	query, args := r.qb.Insert("products").
		Columns(
			"id", "name", "description", "category", "price", "condition", "images", "seller_id",
			"city", "province", "address", "delivery_options", "negotiable", "status", "is_active",
			"created_at", "updated_at",
		).
		Values(
			p.ID, p.Name, p.Description, p.Category, p.Price, p.Condition, pq.Array(p.Images), p.SellerID,
			p.Location.City, p.Location.Province, nullString(p.Location.Address), pq.Array(p.DeliveryOptions),
			p.Negotiable, p.Status, p.IsActive, p.CreatedAt, p.UpdatedAt,
		).
		Suffix(returning(productColumns)).
		MustSql()

	var product Product
	if err := r.getContext(ctx, &product, query, args...); err != nil {
		return entities.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) GetProductByID(ctx context.Context, id string) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func productConditions(q entities.ProductQuery) sq.And {
	where := sq.And{}
	if q.SellerID != "" {
		where = append(where, sq.Eq{"seller_id": q.SellerID})
	}
	if q.Status != "" {
		where = append(where, sq.Eq{"status": q.Status})
	}
	if q.ActiveOnly {
		where = append(where, sq.Eq{"is_active": true})
	}
	if q.Filter.Category != "" {
		where = append(where, sq.Eq{"category": q.Filter.Category})
	}
	if q.Filter.MinPrice > 0 {
		where = append(where, sq.GtOrEq{"price": q.Filter.MinPrice})
	}
	if q.Filter.MaxPrice > 0 {
		where = append(where, sq.LtOrEq{"price": q.Filter.MaxPrice})
	}
	if q.Filter.Search != "" {
		where = append(where, sq.Expr(
			"to_tsvector('simple', name || ' ' || description) @@ plainto_tsquery('simple', ?)",
			q.Filter.Search,
		))
	}
	return where
}

func (r *postgresRepo) ListProducts(ctx context.Context, q entities.ProductQuery, page entities.PageRequest) ([]entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(productConditions(q)).
		OrderBy("created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

func (r *postgresRepo) CountProducts(ctx context.Context, q entities.ProductQuery) (int, error) {
	total, err := r.count(ctx, r.qb.Select("COUNT(*)").From("products").Where(productConditions(q)))
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

// UpdateProduct перезаписывает поля продавца вместе со статусом и причиной отклонения.
func (r *postgresRepo) UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	query, args := r.qb.Update("products").
		SetMap(map[string]any{
			"name":             p.Name,
			"description":      p.Description,
			"category":         p.Category,
			"price":            p.Price,
			"condition":        p.Condition,
			"images":           pq.Array(p.Images),
			"city":             p.Location.City,
			"province":         p.Location.Province,
			"address":          nullString(p.Location.Address),
			"delivery_options": pq.Array(p.DeliveryOptions),
			"negotiable":       p.Negotiable,
			"status":           p.Status,
			"rejection_reason": nullString(p.RejectionReason),
			"updated_at":       p.UpdatedAt,
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix(returning(productColumns)).
		MustSql()

	return r.updateProduct(ctx, query, args...)
}

func (r *postgresRepo) DeactivateProduct(ctx context.Context, id string, at time.Time) (entities.Product, error) {
	query, args := r.qb.Update("products").
		Set("is_active", false).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		Suffix(returning(productColumns)).
		MustSql()

	return r.updateProduct(ctx, query, args...)
}

func (r *postgresRepo) ApproveProduct(ctx context.Context, id, adminID string, at time.Time) (entities.Product, error) {
	query, args := r.qb.Update("products").
		Set("status", entities.ProductStatusApproved).
		Set("approved_at", at).
		Set("approved_by", adminID).
		Set("updated_at", at).
		Where(sq.Eq{"id": id, "status": entities.ProductStatusPending}).
		Suffix(returning(productColumns)).
		MustSql()

	return r.moderateProduct(ctx, query, args...)
}

func (r *postgresRepo) RejectProduct(ctx context.Context, id, reason string, at time.Time) (entities.Product, error) {
	query, args := r.qb.Update("products").
		Set("status", entities.ProductStatusRejected).
		Set("rejection_reason", reason).
		Set("updated_at", at).
		Where(sq.Eq{"id": id, "status": entities.ProductStatusPending}).
		Suffix(returning(productColumns)).
		MustSql()

	return r.moderateProduct(ctx, query, args...)
}

func (r *postgresRepo) MarkProductSold(ctx context.Context, id string, at time.Time) (entities.Product, error) {
	query, args := r.qb.Update("products").
		Set("status", entities.ProductStatusSold).
		Set("sold_at", sq.Expr("COALESCE(sold_at, ?)", at)).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		Suffix(returning(productColumns)).
		MustSql()

	return r.updateProduct(ctx, query, args...)
}

type productStatsRow struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

func (r *postgresRepo) ProductStats(ctx context.Context, sellerID string) (entities.ProductStats, error) {
	query, args := r.qb.Select("status", "COUNT(*) AS count").
		From("products").
		Where(sq.Eq{"seller_id": sellerID}).
		GroupBy("status").
		MustSql()

	var rows []productStatsRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select product stats: %w", err)
	}

	stats := make(entities.ProductStats, len(rows))
	for _, row := range rows {
		stats[entities.ProductStatus(row.Status)] = row.Count
	}
	return stats, nil
}

func (r *postgresRepo) IncrementProductViews(ctx context.Context, id string) error {
	query, args := r.qb.Update("products").
		Set("views", sq.Expr("views + 1")).
		Where(sq.Eq{"id": id}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

func (r *postgresRepo) updateProduct(ctx context.Context, query string, args ...any) (entities.Product, error) {
	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return ProductToEntity(product), nil
}

// moderateProduct отличает отсутствующий товар от товара, который уже прошел модерацию
func (r *postgresRepo) moderateProduct(ctx context.Context, query string, args ...any) (entities.Product, error) {
	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotPending
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to moderate product: %w", err)
	}
	return ProductToEntity(product), nil
}
