package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-service/internal/service"
	mocks "github.com/SergeyBogomolovv/marketplace-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductService(t *testing.T) (*service.ProductService, *mocks.MockProductRepo, *mocks.MockUserLookup, *mocks.MockCache) {
	products := mocks.NewMockProductRepo(t)
	users := mocks.NewMockUserLookup(t)
	cache := mocks.NewMockCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewProductService(logger, products, users, cache), products, users, cache
}

func TestProductService_CreateProduct(t *testing.T) {
	type MockBehavior func(products *mocks.MockProductRepo, users *mocks.MockUserLookup)

	seller := entities.User{ID: sellerID, UserType: entities.UserTypeSeller, PhoneVerified: true}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(products *mocks.MockProductRepo, users *mocks.MockUserLookup) {
				users.EXPECT().GetUserByID(mock.Anything, sellerID).Return(seller, nil)
				products.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
					return p.Status == entities.ProductStatusPending && p.SellerID == sellerID && p.IsActive && p.ID != ""
				})).RunAndReturn(func(_ context.Context, p entities.Product) (entities.Product, error) {
					return p, nil
				})
			},
		},
		{
			name: "buyer cannot sell",
			mockBehavior: func(_ *mocks.MockProductRepo, users *mocks.MockUserLookup) {
				users.EXPECT().GetUserByID(mock.Anything, sellerID).
					Return(entities.User{ID: sellerID, UserType: entities.UserTypeBuyer, PhoneVerified: true}, nil)
			},
			wantErr: entities.ErrNotSeller,
		},
		{
			name: "phone not verified",
			mockBehavior: func(_ *mocks.MockProductRepo, users *mocks.MockUserLookup) {
				users.EXPECT().GetUserByID(mock.Anything, sellerID).
					Return(entities.User{ID: sellerID, UserType: entities.UserTypeSeller}, nil)
			},
			wantErr: entities.ErrPhoneNotVerified,
		},
		{
			name: "seller not found",
			mockBehavior: func(_ *mocks.MockProductRepo, users *mocks.MockUserLookup) {
				users.EXPECT().GetUserByID(mock.Anything, sellerID).Return(entities.User{}, entities.ErrUserNotFound)
			},
			wantErr: entities.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, products, users, _ := newProductService(t)
			tc.mockBehavior(products, users)

			// статус из запроса игнорируется
			product, err := svc.CreateProduct(context.Background(), sellerID, entities.Product{
				Name:   "Phone",
				Price:  1000,
				Status: entities.ProductStatusApproved,
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.ProductStatusPending, product.Status)
		})
	}
}

func TestProductService_GetProduct(t *testing.T) {
	type MockBehavior func(products *mocks.MockProductRepo, cache *mocks.MockCache)

	product := approvedProduct()
	data, err := product.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "from cache",
			mockBehavior: func(products *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(productID).Return(data, true)
				products.EXPECT().IncrementProductViews(mock.Anything, productID).Return(nil)
			},
		},
		{
			name: "cache miss",
			mockBehavior: func(products *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(productID).Return(nil, false)
				products.EXPECT().GetProductByID(mock.Anything, productID).Return(product, nil)
				cache.EXPECT().Set(productID, mock.Anything).Return()
				products.EXPECT().IncrementProductViews(mock.Anything, productID).Return(nil)
			},
		},
		{
			name: "corrupted cache entry",
			mockBehavior: func(products *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(productID).Return([]byte("garbage"), true)
				cache.EXPECT().Delete(productID).Return()
				products.EXPECT().GetProductByID(mock.Anything, productID).Return(product, nil)
				cache.EXPECT().Set(productID, mock.Anything).Return()
				products.EXPECT().IncrementProductViews(mock.Anything, productID).Return(nil)
			},
		},
		{
			name: "views failure is ignored",
			mockBehavior: func(products *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(productID).Return(data, true)
				products.EXPECT().IncrementProductViews(mock.Anything, productID).Return(errors.New("db error"))
			},
		},
		{
			name: "not found",
			mockBehavior: func(products *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(productID).Return(nil, false)
				products.EXPECT().GetProductByID(mock.Anything, productID).Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, products, _, cache := newProductService(t)
			tc.mockBehavior(products, cache)

			got, err := svc.GetProduct(context.Background(), productID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, product.ID, got.ID)
			assert.Equal(t, product.SellerID, got.SellerID)
		})
	}
}

func TestProductService_ListProducts(t *testing.T) {
	svc, products, _, _ := newProductService(t)
	filter := entities.ProductFilter{Category: "electronics", MinPrice: 100}
	query := entities.ProductQuery{Status: entities.ProductStatusApproved, ActiveOnly: true, Filter: filter}

	products.EXPECT().ListProducts(mock.Anything, query, entities.PageRequest{Page: 1, Limit: entities.DefaultPageLimit}).
		Return([]entities.Product{approvedProduct()}, nil)
	products.EXPECT().CountProducts(mock.Anything, query).Return(1, nil)

	page, err := svc.ListProducts(context.Background(), filter, entities.PageRequest{})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Pages)
}

func TestProductService_UpdateProduct(t *testing.T) {
	name := "New name"

	t.Run("rejected product goes back to review", func(t *testing.T) {
		svc, products, _, cache := newProductService(t)
		rejected := approvedProduct()
		rejected.Status = entities.ProductStatusRejected
		rejected.RejectionReason = "blurry photos"

		products.EXPECT().GetProductByID(mock.Anything, productID).Return(rejected, nil)
		products.EXPECT().UpdateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
			return p.Name == name && p.Status == entities.ProductStatusPending && p.RejectionReason == ""
		})).RunAndReturn(func(_ context.Context, p entities.Product) (entities.Product, error) {
			return p, nil
		})
		cache.EXPECT().Delete(productID).Return()

		got, err := svc.UpdateProduct(context.Background(), productID, sellerID, entities.ProductUpdate{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, entities.ProductStatusPending, got.Status)
	})

	t.Run("not the owner", func(t *testing.T) {
		svc, products, _, _ := newProductService(t)
		products.EXPECT().GetProductByID(mock.Anything, productID).Return(approvedProduct(), nil)

		_, err := svc.UpdateProduct(context.Background(), productID, strangerID, entities.ProductUpdate{Name: &name})

		assert.ErrorIs(t, err, entities.ErrForbidden)
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	svc, products, _, cache := newProductService(t)
	products.EXPECT().GetProductByID(mock.Anything, productID).Return(approvedProduct(), nil)
	products.EXPECT().DeactivateProduct(mock.Anything, productID, mock.Anything).Return(entities.Product{}, nil)
	cache.EXPECT().Delete(productID).Return()

	err := svc.DeleteProduct(context.Background(), productID, sellerID)

	assert.NoError(t, err)
}

func TestProductService_Moderation(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		svc, products, _, cache := newProductService(t)
		products.EXPECT().ApproveProduct(mock.Anything, productID, "admin-1", mock.Anything).Return(approvedProduct(), nil)
		cache.EXPECT().Delete(productID).Return()

		got, err := svc.ApproveProduct(context.Background(), productID, "admin-1")

		require.NoError(t, err)
		assert.Equal(t, entities.ProductStatusApproved, got.Status)
	})

	t.Run("reject requires pending", func(t *testing.T) {
		svc, products, _, _ := newProductService(t)
		products.EXPECT().RejectProduct(mock.Anything, productID, "spam", mock.Anything).
			Return(entities.Product{}, entities.ErrProductNotPending)

		_, err := svc.RejectProduct(context.Background(), productID, "admin-1", "spam")

		assert.ErrorIs(t, err, entities.ErrPreconditionFailed)
	})
}

func TestProductService_MarkSold(t *testing.T) {
	svc, products, _, cache := newProductService(t)
	products.EXPECT().MarkProductSold(mock.Anything, productID, mock.Anything).
		Return(entities.Product{ID: productID, Status: entities.ProductStatusSold}, nil)
	cache.EXPECT().Delete(productID).Return()

	got, err := svc.MarkSold(context.Background(), productID)

	require.NoError(t, err)
	assert.Equal(t, entities.ProductStatusSold, got.Status)
}

func TestProductService_WarmUpCache(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		svc, products, _, cache := newProductService(t)
		products.EXPECT().ListProducts(mock.Anything, entities.ProductQuery{
			Status:     entities.ProductStatusApproved,
			ActiveOnly: true,
		}, entities.PageRequest{Page: 1, Limit: 2}).
			Return([]entities.Product{{ID: "p-1"}, {ID: "p-2"}}, nil)
		cache.EXPECT().Set("p-1", mock.Anything).Return()
		cache.EXPECT().Set("p-2", mock.Anything).Return()

		assert.NoError(t, svc.WarmUpCache(context.Background(), 2))
	})

	t.Run("db error", func(t *testing.T) {
		svc, products, _, _ := newProductService(t)
		dbError := errors.New("db error")
		products.EXPECT().ListProducts(mock.Anything, mock.Anything, mock.Anything).Return(nil, dbError)

		assert.ErrorIs(t, svc.WarmUpCache(context.Background(), 10), dbError)
	})
}

func TestProductService_ProductStats(t *testing.T) {
	svc, products, _, _ := newProductService(t)
	products.EXPECT().ProductStats(mock.Anything, sellerID).Return(entities.ProductStats{
		entities.ProductStatusApproved: 3,
		entities.ProductStatusPending:  1,
	}, nil)

	stats, err := svc.ProductStats(context.Background(), sellerID)

	require.NoError(t, err)
	assert.Equal(t, 3, stats[entities.ProductStatusApproved])
	assert.Equal(t, 1, stats[entities.ProductStatusPending])
	assert.Zero(t, stats[entities.ProductStatusSold])
}
