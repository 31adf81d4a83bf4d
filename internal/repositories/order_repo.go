package repositories

import (
	"context"

	"toko-api/internal/models"
)

// OrderRepository defines the interface for order data access.
// Orders are immutable, so there is no update or delete.
type OrderRepository interface {
	// GetAll returns every order with its product loaded.
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	// CountByProductIDs counts orders that reference any of the given products.
	CountByProductIDs(ctx context.Context, productIDs []string) (int64, error)
}
