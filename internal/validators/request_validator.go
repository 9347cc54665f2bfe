package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// notBlankTag rejects strings that are empty after trimming whitespace.
const notBlankTag = "notblank"

// RequestValidator validates decoded request bodies with
// go-playground/validator struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a Validator that understands the standard
// validator tags plus "notblank".
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &RequestValidator{validate: v}
}

// Validate returns ErrEmptyBody for nil payloads, ErrUnsupportedType for
// non-struct payloads and a wrapped ErrInvalidField listing the failing
// fields otherwise. When fields are given only those struct fields are
// checked.
func (r *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if obj == nil {
		return ErrEmptyBody
	}

	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrEmptyBody
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = r.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = r.validate.StructCtx(ctx, obj)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		failed := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			failed = append(failed, fe.Field()+":"+fe.Tag())
		}
		return fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(failed, ", "))
	}

	return err
}
