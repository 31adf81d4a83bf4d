package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"toko-api/internal/apperror"
	"toko-api/internal/repositories"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON name so messages match the payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var fieldMessages = map[string]string{
	"email":           "email and password are required",
	"password":        "email and password are required",
	"us_name":         "name is required, must be text and at most 50 characters",
	"us_email":        "email is required and must be a valid email",
	"us_password":     "password is required, must be text and at most 72 characters",
	"us_phone_number": "phone number is required and must be 10 to 13 characters",
	"us_address":      "address is required and must be text",
	"ct_code":         "category code is required and must be text",
	"ct_name":         "category name is required and must be text",
	"pd_code":         "product code is required and must be text",
	"pd_name":         "product name is required and must be text",
	"pd_ct_id":        "product category is required and must be a category id",
	"pd_price":        "product price is required, must be a number and at least 1000",
	"ids":             "ids are required and must be a non-empty array",
	"productItems":    "productItems must be a non-empty array",
	"product_id":      "product id is required and must be text",
	"qty":             "order quantity is required and must be a positive number",
}

// FieldMessage returns the validation message for a JSON field.
func FieldMessage(field string) string {
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", field)
}

// validateStruct reports the first violated rule only.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return apperror.Validation(FieldMessage(validationErrors[0].Field()))
	}
	return apperror.Internal(err)
}

// BulkDeleteRequest is the body of every bulk delete endpoint.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// deleteEach deletes every id concurrently and returns the ids that did not
// resolve. Deletes that succeeded stay committed whatever happens to the others.
func deleteEach(ctx context.Context, ids []string, del func(context.Context, string) error) ([]string, error) {
	missing := make([]bool, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			err := del(gctx, id)
			if errors.Is(err, repositories.ErrNotFound) {
				missing[i] = true
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var notFound []string
	for i, m := range missing {
		if m {
			notFound = append(notFound, ids[i])
		}
	}
	return notFound, nil
}

// repoError maps a repository failure onto the taxonomy.
func repoError(err error, notFoundMessage string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperror.NotFound(notFoundMessage)
	}
	return apperror.From(err)
}
