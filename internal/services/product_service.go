package services

import (
	"context"
	"errors"
	"strings"

	"toko-api/internal/apperror"
	"toko-api/internal/models"
	"toko-api/internal/repositories"
)

const (
	msgProductNotFound    = "product not found"
	msgInvalidCategory    = "category not found, make sure the category id is valid"
	msgProductHasOrders   = "product has transaction history and cannot be deleted"
	msgProductsHaveOrders = "some products cannot be deleted because they are used in transactions"
)

// CreateProductRequest is the body of product creation. Price is in minor currency units.
type CreateProductRequest struct {
	Code       string `json:"pd_code" validate:"required"`
	Name       string `json:"pd_name" validate:"required"`
	CategoryID string `json:"pd_ct_id" validate:"required"`
	Price      int64  `json:"pd_price" validate:"required,gte=1000"`
}

// UpdateProductRequest carries only the fields the caller wants to change.
// Present fields obey the same rules as on create.
type UpdateProductRequest struct {
	Code       *string `json:"pd_code" validate:"omitempty,min=1"`
	Name       *string `json:"pd_name" validate:"omitempty,min=1"`
	CategoryID *string `json:"pd_ct_id" validate:"omitempty,min=1"`
	Price      *int64  `json:"pd_price" validate:"omitempty,gte=1000"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo         repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	orderRepo    repositories.OrderRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, orderRepo repositories.OrderRepository) *ProductService {
	return &ProductService{
		repo:         repo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
	}
}

// CreateProduct validates req, resolves its category and stores the product.
func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, repoError(err, msgInvalidCategory)
	}

	product := &models.Product{
		Code:       req.Code,
		Name:       req.Name,
		CategoryID: category.ID,
		Price:      req.Price,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, repoError(err, msgInvalidCategory)
	}
	return product, nil
}

// GetAllProducts retrieves all products with their category.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return products, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, msgProductNotFound)
	}
	return product, nil
}

// UpdateProduct applies the fields present in req and leaves the rest untouched.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, msgProductNotFound)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, repoError(err, msgInvalidCategory)
		}
		product.CategoryID = category.ID
	}
	if req.Code != nil {
		product.Code = *req.Code
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, repoError(err, msgProductNotFound)
	}
	return product, nil
}

// DeleteProduct deletes a product unless orders reference it.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	count, err := s.orderRepo.CountByProductIDs(ctx, []string{id})
	if err != nil {
		return apperror.Internal(err)
	}
	if count > 0 {
		return apperror.Validation(msgProductHasOrders)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrReferenced) {
			return apperror.Validation(msgProductHasOrders)
		}
		return repoError(err, msgProductNotFound)
	}
	return nil
}

// DeleteProducts deletes every product in req.IDs unless any of them has orders.
func (s *ProductService) DeleteProducts(ctx context.Context, req BulkDeleteRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	count, err := s.orderRepo.CountByProductIDs(ctx, req.IDs)
	if err != nil {
		return apperror.Internal(err)
	}
	if count > 0 {
		return apperror.Validation(msgProductsHaveOrders)
	}

	notFound, err := deleteEach(ctx, req.IDs, s.repo.Delete)
	if err != nil {
		if errors.Is(err, repositories.ErrReferenced) {
			return apperror.Validation(msgProductsHaveOrders)
		}
		return apperror.Internal(err)
	}
	if len(notFound) > 0 {
		return apperror.NotFoundf("products with the following ids were not found: %s", strings.Join(notFound, ", "))
	}
	return nil
}
