package http

import (
	"math"
	"reflect"
	"strings"

	"covenant-command-center/internal/domain/covenant"
	"covenant-command-center/internal/domain/financial"
	"covenant-command-center/internal/domain/loan"

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

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report json names, not Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// reporting period = "2026-Q1"
	_ = v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
		return financial.ValidPeriod(fl.Field().String())
	})
	// max 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-6
	})
	_ = v.RegisterValidation("loanstatus", func(fl validator.FieldLevel) bool {
		return loan.Status(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("covtype", func(fl validator.FieldLevel) bool {
		return covenant.Type(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("covstatus", func(fl validator.FieldLevel) bool {
		return covenant.Status(fl.Field().String()).Valid()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "period":
			out = append(out, FieldError{Field: field, Message: "must look like 2026-Q1"})
		case "dec2":
			out = append(out, FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "loanstatus":
			out = append(out, FieldError{Field: field, Message: "must be one of Active, Closed, Defaulted, Paid Off"})
		case "covtype":
			out = append(out, FieldError{Field: field, Message: "must be one of Financial, Reporting, Negative, Affirmative"})
		case "covstatus":
			out = append(out, FieldError{Field: field, Message: "must be one of BREACH, AT_RISK, COMPLIANT, NOT_TESTED"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
