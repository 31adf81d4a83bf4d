package handlers

import (
	"toko-api/internal/response"
	"toko-api/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes behind mw.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, mw ...fiber.Handler) {
	productRoutes := router.Group("/products", mw...)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Delete("/", h.HandleDeleteProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Patch("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req services.CreateProductRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	product, err := h.service.CreateProduct(c.UserContext(), req)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "product created successfully", product)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "products retrieved successfully", products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "product retrieved successfully", product)
}

// HandleUpdateProduct applies the fields present in the body.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req services.UpdateProductRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	product, err := h.service.UpdateProduct(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "product updated successfully", product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "product deleted successfully", nil)
}

// HandleDeleteProducts deletes the products listed in the body.
func (h *ProductHandler) HandleDeleteProducts(c *fiber.Ctx) error {
	var req services.BulkDeleteRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.service.DeleteProducts(c.UserContext(), req); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "products deleted successfully", nil)
}
