package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"toko-api/internal/apperror"
	"toko-api/internal/models"
	"toko-api/internal/repositories"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// EventOrderCreated is published once per created order.
const EventOrderCreated = "order.created"

// EventPublisher delivers domain events to a message broker.
type EventPublisher interface {
	Publish(event string, body []byte) error
}

// OrderItemRequest is one line of an order request.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Qty       int64  `json:"qty" validate:"required,gt=0"`
}

// CreateOrderRequest is the body of order creation. Each item becomes its own order.
type CreateOrderRequest struct {
	ProductItems []OrderItemRequest `json:"productItems" validate:"required,min=1"`
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher // optional
	log         logrus.FieldLogger
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher EventPublisher, log logrus.FieldLogger) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
		log:         log,
	}
}

// GetAllOrders retrieves all orders with their product.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return orders, nil
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "order not found")
	}
	return order, nil
}

// CreateOrders creates one order per item. Every item is validated, its
// product resolved and its amount checked before anything is stored. The inserts then run
// concurrently; if one fails the orders already stored by the others remain.
func (s *OrderService) CreateOrders(ctx context.Context, req CreateOrderRequest) ([]models.Order, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	for i, item := range req.ProductItems {
		if err := validateStruct(item); err != nil {
			appErr, _ := apperror.As(err)
			return nil, apperror.Validationf("%s for item %d", appErr.Message, i+1)
		}
	}

	products, err := s.resolveProducts(ctx, req.ProductItems)
	if err != nil {
		return nil, err
	}
	for i, item := range req.ProductItems {
		if products[i].Price > 0 && item.Qty > math.MaxInt64/products[i].Price {
			return nil, apperror.Validationf("order amount is too large for item %d", i+1)
		}
	}

	orders := make([]models.Order, len(req.ProductItems))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range req.ProductItems {
		g.Go(func() error {
			orders[i] = models.Order{
				ProductID: products[i].ID,
				Amount:    products[i].Price * item.Qty,
			}
			if err := s.orderRepo.Create(gctx, &orders[i]); err != nil {
				return repoError(err, productNotFound(item.ProductID))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperror.From(err)
	}

	for i := range orders {
		s.publishCreated(&orders[i])
	}
	return orders, nil
}

func (s *OrderService) resolveProducts(ctx context.Context, items []OrderItemRequest) ([]*models.Product, error) {
	products := make([]*models.Product, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			product, err := s.productRepo.GetByID(gctx, item.ProductID)
			if err != nil {
				return repoError(err, productNotFound(item.ProductID))
			}
			products[i] = product
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperror.From(err)
	}
	return products, nil
}

func productNotFound(id string) string {
	return fmt.Sprintf("product with id %s not found", id)
}

// publishCreated is best effort: a broker failure never fails the request.
func (s *OrderService) publishCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}
	entry := s.log.WithField("or_id", order.ID)

	body, err := json.Marshal(map[string]interface{}{
		"or_id":     order.ID,
		"or_pd_id":  order.ProductID,
		"or_amount": order.Amount,
	})
	if err != nil {
		entry.WithError(err).Warn("failed to marshal order event")
		return
	}
	if err := s.publisher.Publish(EventOrderCreated, body); err != nil {
		entry.WithError(err).Warn("failed to publish order created event")
		return
	}
	entry.Debug("published order created event")
}
