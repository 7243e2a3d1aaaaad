package http

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strings"

	"lodge-portal/internal/domain/voucher"
	"lodge-portal/pkg/id"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var reVoucherCode = regexp.MustCompile(`^[A-Za-z0-9]+$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their wire names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})

	// public ids = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return id.Valid(fl.Field().String())
	})
	// voucher codes are compared case-insensitively after trimming
	_ = v.RegisterValidation("vouchercode", func(fl validator.FieldLevel) bool {
		code := strings.TrimSpace(fl.Field().String())
		return len(code) == voucher.CodeLength && reVoucherCode.MatchString(code)
	})
	// money: max 2 decimal places
	_ = v.RegisterValidation("money2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		out = append(out, FieldError{Field: fieldPath(e), Message: message(e)})
	}
	return out
}

// fieldPath drops the root struct name: "references[1].email".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return e.Field()
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return "is required when " + strings.Replace(e.Param(), " ", " is ", 1)
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "hex32":
		return "must be 32-char lowercase hex"
	case "vouchercode":
		return "must be a 10 character voucher code"
	case "money2":
		return "must have at most 2 decimal places"
	case "iso4217":
		return "must be an ISO 4217 currency code"
	case "datetime":
		return "must be a date in " + e.Param() + " format"
	case "oneof":
		return "must be one of: " + e.Param()
	case "eq":
		if e.Param() == "true" {
			return "must be accepted"
		}
		return "must equal " + e.Param()
	case "len":
		if e.Kind() == reflect.Slice {
			return "must contain exactly " + e.Param() + " items"
		}
		return "must be exactly " + e.Param() + " characters"
	case "min":
		if e.Kind() == reflect.Slice {
			return "must contain at least " + e.Param() + " items"
		}
		return "must be at least " + e.Param() + " characters"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	default:
		return e.Tag() + " validation failed"
	}
}
