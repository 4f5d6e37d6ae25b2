package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"

	"github.com/google/uuid"
)

type ProductRepo interface {
	CreateProduct(ctx context.Context, product entities.Product) (entities.Product, error)
	GetProductByID(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context, query entities.ProductQuery, page entities.PageRequest) ([]entities.Product, error)
	CountProducts(ctx context.Context, query entities.ProductQuery) (int, error)
	UpdateProduct(ctx context.Context, product entities.Product) (entities.Product, error)
	DeactivateProduct(ctx context.Context, id string, at time.Time) (entities.Product, error)
	ApproveProduct(ctx context.Context, id, adminID string, at time.Time) (entities.Product, error)
	RejectProduct(ctx context.Context, id, reason string, at time.Time) (entities.Product, error)
	MarkProductSold(ctx context.Context, id string, at time.Time) (entities.Product, error)
	IncrementProductViews(ctx context.Context, id string) error
	ProductStats(ctx context.Context, sellerID string) (entities.ProductStats, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type ProductService struct {
	logger   *slog.Logger
	products ProductRepo
	users    UserLookup
	cache    Cache
	now      func() time.Time
}

func NewProductService(logger *slog.Logger, products ProductRepo, users UserLookup, cache Cache) *ProductService {
	return &ProductService{
		logger:   logger.With(slog.String("service", "product")),
		products: products,
		users:    users,
		cache:    cache,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, sellerID string, product entities.Product) (entities.Product, error) {
	seller, err := s.users.GetUserByID(ctx, sellerID)
	if err != nil {
		return entities.Product{}, err
	}
	if seller.UserType != entities.UserTypeSeller {
		return entities.Product{}, entities.ErrNotSeller
	}
	if !seller.PhoneVerified {
		return entities.Product{}, entities.ErrPhoneNotVerified
	}

	now := s.now()
	product.ID = uuid.NewString()
	product.SellerID = sellerID
	product.Status = entities.ProductStatusPending
	product.RejectionReason = ""
	product.Views = 0
	product.IsActive = true
	product.SoldAt = nil
	product.ApprovedAt = nil
	product.ApprovedBy = ""
	product.CreatedAt = now
	product.UpdatedAt = now

	created, err := s.products.CreateProduct(ctx, product)
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.InfoContext(ctx, "product created, pending review",
		slog.String("product_id", created.ID),
		slog.String("seller_id", sellerID),
	)
	return created, nil
}

// ProductByID читает товар через кеш, не трогая счетчик просмотров.
func (s *ProductService) ProductByID(ctx context.Context, id string) (entities.Product, error) {
	if data, ok := s.cache.Get(id); ok {
		var product entities.Product
		if err := product.Unmarshal(data); err == nil {
			return product, nil
		}
		s.logger.WarnContext(ctx, "failed to decode cached product", slog.String("product_id", id))
		s.cache.Delete(id)
	}

	product, err := s.products.GetProductByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}

	s.store(ctx, product)
	return product, nil
}

// GetProduct отдает карточку товара и засчитывает просмотр.
func (s *ProductService) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	product, err := s.ProductByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}

	if err := s.products.IncrementProductViews(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "failed to increment product views",
			slog.String("product_id", id),
			slog.String("error", err.Error()),
		)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, filter entities.ProductFilter, page entities.PageRequest) (entities.Page[entities.Product], error) {
	return s.list(ctx, entities.ProductQuery{
		Status:     entities.ProductStatusApproved,
		ActiveOnly: true,
		Filter:     filter,
	}, page)
}

func (s *ProductService) ListSellerProducts(ctx context.Context, sellerID string, page entities.PageRequest) (entities.Page[entities.Product], error) {
	return s.list(ctx, entities.ProductQuery{SellerID: sellerID, ActiveOnly: true}, page)
}

func (s *ProductService) ListPendingProducts(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Product], error) {
	return s.list(ctx, entities.ProductQuery{Status: entities.ProductStatusPending, ActiveOnly: true}, page)
}

func (s *ProductService) list(ctx context.Context, query entities.ProductQuery, page entities.PageRequest) (entities.Page[entities.Product], error) {
	return paginate(ctx, page,
		func(ctx context.Context, page entities.PageRequest) ([]entities.Product, error) {
			return s.products.ListProducts(ctx, query, page)
		},
		func(ctx context.Context) (int, error) {
			return s.products.CountProducts(ctx, query)
		},
	)
}

// UpdateProduct применяет правки продавца. Отклоненный товар снова уходит на модерацию.
func (s *ProductService) UpdateProduct(ctx context.Context, id, sellerID string, upd entities.ProductUpdate) (entities.Product, error) {
	product, err := s.ownProduct(ctx, id, sellerID)
	if err != nil {
		return entities.Product{}, err
	}

	applyProductUpdate(&product, upd)
	if product.Status == entities.ProductStatusRejected {
		product.Status = entities.ProductStatusPending
		product.RejectionReason = ""
	}
	product.UpdatedAt = s.now()

	updated, err := s.products.UpdateProduct(ctx, product)
	if err != nil {
		return entities.Product{}, err
	}

	s.cache.Delete(id)
	return updated, nil
}

func applyProductUpdate(p *entities.Product, upd entities.ProductUpdate) {
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Condition != nil {
		p.Condition = *upd.Condition
	}
	if upd.Images != nil {
		p.Images = upd.Images
	}
	if upd.Location != nil {
		p.Location = *upd.Location
	}
	if upd.DeliveryOptions != nil {
		p.DeliveryOptions = upd.DeliveryOptions
	}
	if upd.Negotiable != nil {
		p.Negotiable = *upd.Negotiable
	}
}

func (s *ProductService) DeleteProduct(ctx context.Context, id, sellerID string) error {
	if _, err := s.ownProduct(ctx, id, sellerID); err != nil {
		return err
	}
	if _, err := s.products.DeactivateProduct(ctx, id, s.now()); err != nil {
		return err
	}

	s.cache.Delete(id)
	s.logger.InfoContext(ctx, "product deleted", slog.String("product_id", id))
	return nil
}

func (s *ProductService) ApproveProduct(ctx context.Context, id, adminID string) (entities.Product, error) {
	product, err := s.products.ApproveProduct(ctx, id, adminID, s.now())
	if err != nil {
		return entities.Product{}, err
	}

	s.cache.Delete(id)
	s.logger.InfoContext(ctx, "product approved",
		slog.String("product_id", id),
		slog.String("admin_id", adminID),
	)
	return product, nil
}

func (s *ProductService) RejectProduct(ctx context.Context, id, adminID, reason string) (entities.Product, error) {
	product, err := s.products.RejectProduct(ctx, id, reason, s.now())
	if err != nil {
		return entities.Product{}, err
	}

	s.cache.Delete(id)
	s.logger.InfoContext(ctx, "product rejected",
		slog.String("product_id", id),
		slog.String("admin_id", adminID),
	)
	return product, nil
}

func (s *ProductService) MarkSold(ctx context.Context, id string) (entities.Product, error) {
	product, err := s.products.MarkProductSold(ctx, id, s.now())
	if err != nil {
		return entities.Product{}, err
	}

	s.cache.Delete(id)
	return product, nil
}

// WarmUpCache загружает в кэш первые count одобренных объявлений.
func (s *ProductService) WarmUpCache(ctx context.Context, count int) error {
	products, err := s.products.ListProducts(ctx, entities.ProductQuery{
		Status:     entities.ProductStatusApproved,
		ActiveOnly: true,
	}, entities.PageRequest{Page: 1, Limit: count})
	if err != nil {
		return fmt.Errorf("failed to list products for cache: %w", err)
	}

	for _, product := range products {
		s.store(ctx, product)
	}
	s.logger.InfoContext(ctx, "product cache warmed up", slog.Int("count", len(products)))
	return nil
}

func (s *ProductService) ownProduct(ctx context.Context, id, sellerID string) (entities.Product, error) {
	product, err := s.products.GetProductByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if product.SellerID != sellerID {
		return entities.Product{}, entities.ErrNotProductOwner
	}
	return product, nil
}

func (s *ProductService) store(ctx context.Context, product entities.Product) {
	data, err := product.Marshal()
	if err != nil {
		s.logger.WarnContext(ctx, "failed to encode product for cache", slog.String("error", err.Error()))
		return
	}
	s.cache.Set(product.ID, data)
}

func (s *ProductService) ProductStats(ctx context.Context, sellerID string) (entities.ProductStats, error) {
	return s.products.ProductStats(ctx, sellerID)
}
