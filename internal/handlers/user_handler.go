package handlers

import (
	"toko-api/internal/response"
	"toko-api/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes behind mw.
func (h *UserHandler) RegisterRoutes(router fiber.Router, mw ...fiber.Handler) {
	userRoutes := router.Group("/users", mw...)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Delete("/", h.HandleDeleteUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Patch("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleCreateUser creates a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req services.UserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	user, err := h.service.CreateUser(c.UserContext(), req)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "user created successfully", user)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers(c.UserContext())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "users retrieved successfully", users)
}

// HandleGetUserByID retrieves a single user by its ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.service.GetUserByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "user retrieved successfully", user)
}

// HandleUpdateUser replaces a user's fields.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var req services.UserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	user, err := h.service.UpdateUser(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "user updated successfully", user)
}

// HandleDeleteUser deletes a user by its ID.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.service.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "user deleted successfully", nil)
}

// HandleDeleteUsers deletes the users listed in the body.
func (h *UserHandler) HandleDeleteUsers(c *fiber.Ctx) error {
	var req services.BulkDeleteRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.service.DeleteUsers(c.UserContext(), req); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "users deleted successfully", nil)
}
