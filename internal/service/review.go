package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-service/pkg/trm"

	"github.com/google/uuid"
)

type ReviewRepo interface {
	CreateReview(ctx context.Context, review entities.Review) (entities.Review, error)
	GetReviewByID(ctx context.Context, id string) (entities.Review, error)
	GetReviewByOrder(ctx context.Context, orderID string) (entities.Review, error)
	ListReviewsByReviewed(ctx context.Context, userID string, page entities.PageRequest) ([]entities.Review, error)
	CountReviewsByReviewed(ctx context.Context, userID string) (int, error)
	ListReviewsByReviewer(ctx context.Context, userID string, page entities.PageRequest) ([]entities.Review, error)
	CountReviewsByReviewer(ctx context.Context, userID string) (int, error)
	DeactivateReview(ctx context.Context, id string) error
	AverageRating(ctx context.Context, userID string) (entities.Rating, error)
}

type RatingUpdater interface {
	UpdateRating(ctx context.Context, userID string, rating entities.Rating) error
}

type OrderGetter interface {
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
}

type ReviewService struct {
	logger    *slog.Logger
	txManager trm.Manager
	reviews   ReviewRepo
	orders    OrderGetter
	ratings   RatingUpdater
	now       func() time.Time
}

func NewReviewService(logger *slog.Logger, txManager trm.Manager, reviews ReviewRepo, orders OrderGetter, ratings RatingUpdater) *ReviewService {
	return &ReviewService{
		logger:    logger.With(slog.String("service", "review")),
		txManager: txManager,
		reviews:   reviews,
		orders:    orders,
		ratings:   ratings,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *ReviewService) CreateReview(ctx context.Context, reviewerID string, in entities.CreateReviewInput) (entities.Review, error) {
	order, err := s.orders.GetOrderByID(ctx, in.OrderID)
	if err != nil {
		return entities.Review{}, err
	}
	if order.Status != entities.OrderStatusCompleted {
		return entities.Review{}, entities.ErrOrderNotCompleted
	}
	if order.BuyerID != reviewerID {
		return entities.Review{}, entities.ErrNotOrderBuyer
	}

	_, err = s.reviews.GetReviewByOrder(ctx, order.ID)
	if err == nil {
		return entities.Review{}, entities.ErrAlreadyReviewed
	}
	if !errors.Is(err, entities.ErrReviewNotFound) {
		return entities.Review{}, err
	}

	var created entities.Review
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = s.reviews.CreateReview(ctx, entities.Review{
			ID:         uuid.NewString(),
			OrderID:    order.ID,
			ReviewerID: reviewerID,
			ReviewedID: order.SellerID,
			Rating:     in.Rating,
			Comment:    in.Comment,
			IsActive:   true,
			CreatedAt:  s.now(),
		})
		if err != nil {
			return err
		}
		return s.refreshRating(ctx, order.SellerID)
	})
	if err != nil {
		return entities.Review{}, err
	}

	s.logger.InfoContext(ctx, "review created",
		slog.String("review_id", created.ID),
		slog.String("seller_id", created.ReviewedID),
	)
	return created, nil
}

func (s *ReviewService) ListSellerReviews(ctx context.Context, sellerID string, page entities.PageRequest) (entities.Page[entities.Review], error) {
	return paginate(ctx, page,
		func(ctx context.Context, page entities.PageRequest) ([]entities.Review, error) {
			return s.reviews.ListReviewsByReviewed(ctx, sellerID, page)
		},
		func(ctx context.Context) (int, error) {
			return s.reviews.CountReviewsByReviewed(ctx, sellerID)
		},
	)
}

// ListUserReviews отзывы, которые оставил пользователь.
func (s *ReviewService) ListUserReviews(ctx context.Context, reviewerID string, page entities.PageRequest) (entities.Page[entities.Review], error) {
	return paginate(ctx, page,
		func(ctx context.Context, page entities.PageRequest) ([]entities.Review, error) {
			return s.reviews.ListReviewsByReviewer(ctx, reviewerID, page)
		},
		func(ctx context.Context) (int, error) {
			return s.reviews.CountReviewsByReviewer(ctx, reviewerID)
		},
	)
}

func (s *ReviewService) GetOrderReview(ctx context.Context, orderID string) (entities.Review, error) {
	review, err := s.reviews.GetReviewByOrder(ctx, orderID)
	if err != nil {
		return entities.Review{}, err
	}
	// удаленный отзыв остается в таблице, но наружу не отдается
	if !review.IsActive {
		return entities.Review{}, entities.ErrReviewNotFound
	}
	return review, nil
}

func (s *ReviewService) SellerRating(ctx context.Context, sellerID string) (entities.Rating, error) {
	rating, err := s.reviews.AverageRating(ctx, sellerID)
	if err != nil {
		return entities.Rating{}, err
	}
	rating.Average = roundRating(rating.Average)
	return rating, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, reviewID, userID string) error {
	review, err := s.reviews.GetReviewByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if !review.IsActive {
		return entities.ErrReviewNotFound
	}
	if review.ReviewerID != userID {
		return entities.ErrNotReviewer
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.reviews.DeactivateReview(ctx, reviewID); err != nil {
			return err
		}
		return s.refreshRating(ctx, review.ReviewedID)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "review deleted", slog.String("review_id", reviewID))
	return nil
}

// refreshRating пересчитывает рейтинг продавца по активным отзывам.
func (s *ReviewService) refreshRating(ctx context.Context, sellerID string) error {
	rating, err := s.reviews.AverageRating(ctx, sellerID)
	if err != nil {
		return err
	}
	rating.Average = roundRating(rating.Average)
	if err := s.ratings.UpdateRating(ctx, sellerID, rating); err != nil {
		return fmt.Errorf("failed to update seller rating: %w", err)
	}
	return nil
}

func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
