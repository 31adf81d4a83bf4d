package handlers

import (
	"toko-api/internal/response"
	"toko-api/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes behind mw. Orders cannot be changed once created.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, mw ...fiber.Handler) {
	orderRoutes := router.Group("/orders", mw...)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders(c.UserContext())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "orders retrieved successfully", orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "order retrieved successfully", order)
}

// HandleCreateOrder creates one order per item of the body.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req services.CreateOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	orders, err := h.service.CreateOrders(c.UserContext(), req)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "order created successfully", orders)
}
