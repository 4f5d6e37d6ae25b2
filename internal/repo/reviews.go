package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateReview(ctx context.Context, rv entities.Review) (entities.Review, error) {
	query, args := r.qb.Insert("reviews").
		Columns("id", "order_id", "reviewer_id", "reviewed_id", "rating", "comment", "is_active", "created_at").
		Values(rv.ID, rv.OrderID, rv.ReviewerID, rv.ReviewedID, rv.Rating, rv.Comment, rv.IsActive, rv.CreatedAt).
		Suffix(returning(reviewColumns)).
		MustSql()

	var review Review
	err := r.getContext(ctx, &review, query, args...)
	if isUniqueViolation(err) {
		return entities.Review{}, entities.ErrAlreadyReviewed
	}
	if err != nil {
		return entities.Review{}, fmt.Errorf("failed to insert review: %w", err)
	}
	return ReviewToEntity(review), nil
}

func (r *postgresRepo) GetReviewByID(ctx context.Context, id string) (entities.Review, error) {
	return r.getReview(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) GetReviewByOrder(ctx context.Context, orderID string) (entities.Review, error) {
	return r.getReview(ctx, sq.Eq{"order_id": orderID})
}

func (r *postgresRepo) getReview(ctx context.Context, where sq.Eq) (entities.Review, error) {
	query, args := r.qb.Select(reviewColumns...).
		From("reviews").
		Where(where).
		MustSql()

	var review Review
	err := r.getContext(ctx, &review, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Review{}, entities.ErrReviewNotFound
	}
	if err != nil {
		return entities.Review{}, fmt.Errorf("failed to get review: %w", err)
	}
	return ReviewToEntity(review), nil
}

func (r *postgresRepo) ListReviewsByReviewed(ctx context.Context, userID string, page entities.PageRequest) ([]entities.Review, error) {
	return r.listReviews(ctx, sq.Eq{"reviewed_id": userID, "is_active": true}, page)
}

func (r *postgresRepo) CountReviewsByReviewed(ctx context.Context, userID string) (int, error) {
	return r.countReviews(ctx, sq.Eq{"reviewed_id": userID, "is_active": true})
}

func (r *postgresRepo) ListReviewsByReviewer(ctx context.Context, userID string, page entities.PageRequest) ([]entities.Review, error) {
	return r.listReviews(ctx, sq.Eq{"reviewer_id": userID, "is_active": true}, page)
}

func (r *postgresRepo) CountReviewsByReviewer(ctx context.Context, userID string) (int, error) {
	return r.countReviews(ctx, sq.Eq{"reviewer_id": userID, "is_active": true})
}

func (r *postgresRepo) listReviews(ctx context.Context, where sq.Eq, page entities.PageRequest) ([]entities.Review, error) {
	query, args := r.qb.Select(reviewColumns...).
		From("reviews").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		MustSql()

	var reviews []Review
	if err := r.selectContext(ctx, &reviews, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select reviews: %w", err)
	}

	result := make([]entities.Review, 0, len(reviews))
	for _, rv := range reviews {
		result = append(result, ReviewToEntity(rv))
	}
	return result, nil
}

func (r *postgresRepo) countReviews(ctx context.Context, where sq.Eq) (int, error) {
	total, err := r.count(ctx, r.qb.Select("COUNT(*)").From("reviews").Where(where))
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return total, nil
}

func (r *postgresRepo) DeactivateReview(ctx context.Context, id string) error {
	query, args := r.qb.Update("reviews").
		Set("is_active", false).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to deactivate review: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrReviewNotFound
	}
	return nil
}

type ratingRow struct {
	Average float64 `db:"average"`
	Count   int     `db:"count"`
}

func (r *postgresRepo) AverageRating(ctx context.Context, userID string) (entities.Rating, error) {
	query, args := r.qb.Select("COALESCE(AVG(rating), 0) AS average", "COUNT(*) AS count").
		From("reviews").
		Where(sq.Eq{"reviewed_id": userID, "is_active": true}).
		MustSql()

	var row ratingRow
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.Rating{}, fmt.Errorf("failed to get average rating: %w", err)
	}
	return entities.Rating{Average: row.Average, Count: row.Count}, nil
}
