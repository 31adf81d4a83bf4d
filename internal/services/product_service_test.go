package services_test

import (
	"context"
	"fmt"
	"testing"

	"toko-api/internal/apperror"
	"toko-api/internal/models"
	"toko-api/internal/repositories"
	"toko-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productMocks struct {
	products   *MockProductRepository
	categories *MockCategoryRepository
	orders     *MockOrderRepository
}

func newProductService() (*services.ProductService, productMocks) {
	m := productMocks{
		products:   new(MockProductRepository),
		categories: new(MockCategoryRepository),
		orders:     new(MockOrderRepository),
	}
	return services.NewProductService(m.products, m.categories, m.orders), m
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	productService, m := newProductService()

	m.categories.On("GetByID", ctx, "cat-1").Return(&models.Category{ID: "cat-1"}, nil)
	m.categories.On("GetByID", ctx, "missing").Return(nil, repositories.ErrNotFound)
	m.products.On("Create", ctx, mock.AnythingOfType("*models.Product")).Return(nil).Once()

	req := services.CreateProductRequest{Code: "P1", Name: "Tea", CategoryID: "cat-1", Price: 500}
	_, err := productService.CreateProduct(ctx, req)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.EqualError(t, err, "product price is required, must be a number and at least 1000")

	req.Price = 1500
	product, err := productService.CreateProduct(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), product.Price)
	assert.Equal(t, "cat-1", product.CategoryID)

	req.CategoryID = "missing"
	_, err = productService.CreateProduct(ctx, req)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.EqualError(t, err, "category not found, make sure the category id is valid")

	m.products.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	productService, m := newProductService()

	m.products.On("GetByID", ctx, "prod-1").Return(&models.Product{ID: "prod-1", Code: "P1", Name: "Tea", CategoryID: "cat-1", Price: 2000}, nil)
	m.products.On("Update", ctx, mock.AnythingOfType("*models.Product")).Return(nil).Once()
	m.categories.On("GetByID", ctx, "missing").Return(nil, repositories.ErrNotFound).Once()

	price := int64(3000)
	product, err := productService.UpdateProduct(ctx, "prod-1", services.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, int64(3000), product.Price)
	assert.Equal(t, "Tea", product.Name)

	low := int64(999)
	_, err = productService.UpdateProduct(ctx, "prod-1", services.UpdateProductRequest{Price: &low})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = productService.UpdateProduct(ctx, "prod-1", services.UpdateProductRequest{CategoryID: strPtr("missing")})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	m.products.AssertExpectations(t)
	m.categories.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	productService, m := newProductService()

	m.orders.On("CountByProductIDs", ctx, []string{"sold"}).Return(int64(3), nil).Once()
	m.orders.On("CountByProductIDs", ctx, []string{"prod-1"}).Return(int64(0), nil).Once()
	m.products.On("Delete", ctx, "prod-1").Return(nil).Once()

	err := productService.DeleteProduct(ctx, "sold")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.EqualError(t, err, "product has transaction history and cannot be deleted")

	assert.NoError(t, productService.DeleteProduct(ctx, "prod-1"))

	m.products.AssertExpectations(t)
	m.orders.AssertExpectations(t)
}

func TestProductService_DeleteProducts(t *testing.T) {
	ctx := context.Background()
	productService, m := newProductService()

	m.orders.On("CountByProductIDs", ctx, []string{"a", "sold"}).Return(int64(1), nil).Once()
	err := productService.DeleteProducts(ctx, services.BulkDeleteRequest{IDs: []string{"a", "sold"}})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	m.products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	m.orders.On("CountByProductIDs", ctx, []string{"a", "x"}).Return(int64(0), nil).Once()
	m.products.On("Delete", mock.Anything, "a").Return(nil).Once()
	m.products.On("Delete", mock.Anything, "x").Return(repositories.ErrNotFound).Once()
	err = productService.DeleteProducts(ctx, services.BulkDeleteRequest{IDs: []string{"a", "x"}})
	assert.EqualError(t, err, "products with the following ids were not found: x")

	m.products.AssertExpectations(t)
}

func TestProductService_DeleteProductLosesRace(t *testing.T) {
	ctx := context.Background()
	productService, m := newProductService()

	// An order is placed between the count and the delete.
	m.orders.On("CountByProductIDs", mock.Anything, mock.Anything).Return(int64(0), nil)
	m.products.On("Delete", mock.Anything, "prod-1").Return(fmt.Errorf("product with ID prod-1: %w", repositories.ErrReferenced))

	err := productService.DeleteProduct(ctx, "prod-1")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.EqualError(t, err, "product has transaction history and cannot be deleted")

	err = productService.DeleteProducts(ctx, services.BulkDeleteRequest{IDs: []string{"prod-1"}})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.EqualError(t, err, "some products cannot be deleted because they are used in transactions")
}
