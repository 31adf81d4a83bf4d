package handlers

import (
	"toko-api/internal/middleware"
	"toko-api/internal/response"
	"toko-api/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the authentication routes. Extra handlers, such as
// a rate limiter, run in front of login only.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, loginMiddleware ...fiber.Handler) {
	router.Post("/login", append(loginMiddleware, h.HandleLogin)...)
	router.Get("/validate-token", h.HandleValidateToken)
}

// HandleLogin handles user login and issues a bearer token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req services.LoginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "login successful", result)
}

// HandleValidateToken decodes the bearer token of the request and returns its claims.
func (h *AuthHandler) HandleValidateToken(c *fiber.Ctx) error {
	claims, err := h.authService.Verify(middleware.BearerToken(c))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "token is valid", claims)
}
