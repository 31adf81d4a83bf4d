package repositories

import (
	"context"

	"toko-api/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns every product with its category loaded.
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	// CountByCategoryIDs counts products that reference any of the given categories.
	CountByCategoryIDs(ctx context.Context, categoryIDs []string) (int64, error)
}
