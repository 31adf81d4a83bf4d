package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"toko-api/internal/apperror"
	"toko-api/internal/services"

	"github.com/gofiber/fiber/v2"
)

const msgInvalidBody = "request body must be a valid JSON object"

// bindBody parses the JSON body into out. A value of the wrong type is
// reported with the message of the field it was meant for.
func bindBody(c *fiber.Ctx, out interface{}) error {
	err := c.BodyParser(out)
	if err == nil {
		return rejectNulls(c.Body())
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}
		return apperror.Validation(services.FieldMessage(field))
	}

	// Missing content type, empty or broken JSON.
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code != fiber.StatusUnprocessableEntity {
		return fiberErr
	}
	return apperror.Validation(msgInvalidBody)
}

// rejectNulls fails on a top-level field sent as null. Optional fields are
// either omitted or carry a value.
func rejectNulls(body []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil
	}

	var nulls []string
	for name, raw := range fields {
		if string(bytes.TrimSpace(raw)) == "null" {
			nulls = append(nulls, name)
		}
	}
	if len(nulls) == 0 {
		return nil
	}
	sort.Strings(nulls)
	return apperror.Validation(services.FieldMessage(nulls[0]))
}
