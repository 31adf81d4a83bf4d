package response

import (
	"errors"
	"fmt"

	"toko-api/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Envelope is the body of every response the API writes.
type Envelope struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// Success writes a successful envelope with the given status.
func Success(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Envelope{
		Status:  status,
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorHandler is the single place where failures become responses.
// Stack traces of internal errors are only exposed outside production.
func ErrorHandler(production bool, log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(Envelope{
				Status:  fiberErr.Code,
				Success: false,
				Message: fiberErr.Message,
			})
		}

		appErr := apperror.From(err)
		env := Envelope{
			Status:  appErr.StatusCode,
			Success: false,
			Message: appErr.Message,
		}

		if appErr.Kind == apperror.KindInternal {
			log.WithFields(logrus.Fields{
				"method": c.Method(),
				"path":   c.Path(),
			}).WithError(appErr.Err).Error("request failed")
			if !production {
				env.Stack = fmt.Sprintf("%v\n%s", appErr.Err, appErr.Stack)
			}
		}

		return c.Status(env.Status).JSON(env)
	}
}
