package handlers

import (
	"toko-api/internal/response"
	"toko-api/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the category routes behind mw.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, mw ...fiber.Handler) {
	categoryRoutes := router.Group("/categories", mw...)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Delete("/", h.HandleDeleteCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Patch("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req services.CreateCategoryRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	category, err := h.service.CreateCategory(c.UserContext(), req)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "category created successfully", category)
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories(c.UserContext())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "categories retrieved successfully", categories)
}

// HandleGetCategoryByID retrieves a single category by its ID.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	category, err := h.service.GetCategoryByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "category retrieved successfully", category)
}

// HandleUpdateCategory applies the fields present in the body.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	var req services.UpdateCategoryRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	category, err := h.service.UpdateCategory(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "category updated successfully", category)
}

// HandleDeleteCategory deletes a category by its ID.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "category deleted successfully", nil)
}

// HandleDeleteCategories deletes the categories listed in the body.
func (h *CategoryHandler) HandleDeleteCategories(c *fiber.Ctx) error {
	var req services.BulkDeleteRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.service.DeleteCategories(c.UserContext(), req); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "categories deleted successfully", nil)
}
