package validator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

var global = New()

const (
	ErrFieldRequired      = "field is required"
	ErrInvalidFormat      = "invalid format"
	ErrInvalidEmail       = "must be a valid email address"
	ErrFieldExceedsMaxLen = "field exceeds maximum length"
	ErrFieldBelowMinLen   = "field is below minimum length"
	ErrFieldExceedsMaxVal = "field exceeds maximum value"
	ErrFieldBelowMinVal   = "field is below minimum value"
	ErrNotAllowed         = "value is not allowed"
	ErrInvalidMoney       = "must be a non-negative amount with at most two decimals"
	ErrUnknownValidation  = "invalid value"
)

func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so messages match the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	_ = v.RegisterValidation("money", validateMoney)

	return v
}

func validateMoney(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}

	return !d.IsNegative() && d.Equal(d.Round(2))
}

// Validate checks s and reports the first failing field as a validation
// error with a stable message.
func Validate(ctx context.Context, s any) error {
	return parseValidationErrors(global.StructCtx(ctx, s))
}

func parseValidationErrors(err error) error {
	if err == nil {
		return nil
	}

	var vErrors validator.ValidationErrors
	if !errors.As(err, &vErrors) || len(vErrors) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	ve := vErrors[0]

	var msg string
	switch ve.Tag() {
	case "required", "required_without", "required_with":
		msg = ErrFieldRequired
	case "email":
		msg = ErrInvalidEmail
	case "max":
		msg = ErrFieldExceedsMaxLen
	case "min":
		msg = ErrFieldBelowMinLen
	case "lt", "lte":
		msg = ErrFieldExceedsMaxVal
	case "gt", "gte":
		msg = ErrFieldBelowMinVal
	case "oneof":
		msg = ErrNotAllowed
	case "money":
		msg = ErrInvalidMoney
	case "uuid", "uuid4", "url", "datetime":
		msg = ErrInvalidFormat
	default:
		msg = ErrUnknownValidation
	}

	return fmt.Errorf("%w: %s: %s", domain.ErrValidation, fieldPath(ve.Namespace()), msg)
}

// fieldPath drops the struct name from a namespace like "createEventRequest.title".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
