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
	msgCategoryNotFound   = "category not found"
	msgCategoryHasProduct = "category has related products and cannot be deleted"
)

// CreateCategoryRequest is the body of category creation.
type CreateCategoryRequest struct {
	Code string `json:"ct_code" validate:"required"`
	Name string `json:"ct_name" validate:"required"`
}

// UpdateCategoryRequest carries only the fields the caller wants to change.
type UpdateCategoryRequest struct {
	Code *string `json:"ct_code" validate:"omitempty,min=1"`
	Name *string `json:"ct_name" validate:"omitempty,min=1"`
}

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo        repositories.CategoryRepository
	productRepo repositories.ProductRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository, productRepo repositories.ProductRepository) *CategoryService {
	return &CategoryService{
		repo:        repo,
		productRepo: productRepo,
	}
}

// CreateCategory creates a new category.
func (s *CategoryService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	category := &models.Category{Code: req.Code, Name: req.Name}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, apperror.Internal(err)
	}
	return category, nil
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, msgCategoryNotFound)
	}
	return category, nil
}

// UpdateCategory applies the fields present in req and leaves the rest untouched.
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, req UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, msgCategoryNotFound)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if req.Code != nil {
		category.Code = *req.Code
	}
	if req.Name != nil {
		category.Name = *req.Name
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, repoError(err, msgCategoryNotFound)
	}
	return category, nil
}

// DeleteCategory deletes a category unless products still reference it.
// The reference check and the delete are not atomic; on postgres the foreign
// key on products rejects a delete that loses the race.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	count, err := s.productRepo.CountByCategoryIDs(ctx, []string{id})
	if err != nil {
		return apperror.Internal(err)
	}
	if count > 0 {
		return apperror.Validation(msgCategoryHasProduct)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrReferenced) {
			return apperror.Validation(msgCategoryHasProduct)
		}
		return repoError(err, msgCategoryNotFound)
	}
	return nil
}

// DeleteCategories deletes every category in req.IDs. If any of them has
// products nothing is deleted; missing ids are reported together after the
// others were deleted.
func (s *CategoryService) DeleteCategories(ctx context.Context, req BulkDeleteRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	count, err := s.productRepo.CountByCategoryIDs(ctx, req.IDs)
	if err != nil {
		return apperror.Internal(err)
	}
	if count > 0 {
		return apperror.Validation("some categories cannot be deleted because they have related products")
	}

	notFound, err := deleteEach(ctx, req.IDs, s.repo.Delete)
	if err != nil {
		if errors.Is(err, repositories.ErrReferenced) {
			return apperror.Validation("some categories cannot be deleted because they have related products")
		}
		return apperror.Internal(err)
	}
	if len(notFound) > 0 {
		return apperror.NotFoundf("categories with the following ids were not found: %s", strings.Join(notFound, ", "))
	}
	return nil
}
