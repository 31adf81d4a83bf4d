package middleware

import (
	"strings"

	"toko-api/internal/apperror"
	"toko-api/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthRequired.
const (
	LocalUserID = "us_id"
	LocalClaims = "claims"
)

// AuthRequired is a Fiber middleware to check for a valid bearer token.
func AuthRequired(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := BearerToken(c)
		if tokenString == "" {
			return apperror.Unauthorized("token not found")
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return services.TokenError(err)
		}

		// Store claims in Fiber context for subsequent handlers
		c.Locals(LocalUserID, claims[services.ClaimUserID])
		c.Locals(LocalClaims, claims)

		return c.Next()
	}
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header,
// or an empty string when there is none.
func BearerToken(c *fiber.Ctx) string {
	parts := strings.SplitN(strings.TrimSpace(c.Get(fiber.HeaderAuthorization)), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
