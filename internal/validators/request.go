package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requestValidator is the concrete implementation of RequestValidator.
// A single validator.Validate instance caches struct metadata and is safe
// for concurrent use.
type requestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator using the JSON field
// names of the payload structs in error messages.
func NewRequestValidator() RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &requestValidator{validate: v}
}

// Validate implements RequestValidator.
func (r *requestValidator) Validate(payload any) error {
	err := r.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return fmt.Errorf("%w: field %q fails %q constraint", ErrValidationFailed, first.Field(), first.Tag())
	}

	return fmt.Errorf("%w: %w", ErrValidationFailed, err)
}
