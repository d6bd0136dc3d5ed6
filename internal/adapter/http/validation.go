package http

import (
	"math"
	"regexp"
	"strings"

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

var (
	reDigits13 = regexp.MustCompile(`^[0-9]{13}$`)
	rePhoneTH  = regexp.MustCompile(`^[0-9]{9,10}$`)
	sepCleaner = strings.NewReplacer("-", "", " ", "")
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// Thai national ID: 13 digits once hyphens/spaces are stripped
	_ = v.RegisterValidation("thaiid", func(fl validator.FieldLevel) bool {
		return reDigits13.MatchString(sepCleaner.Replace(fl.Field().String()))
	})
	// local mobile/landline: 9-10 digits after stripping separators
	_ = v.RegisterValidation("phoneth", func(fl validator.FieldLevel) bool {
		return rePhoneTH.MatchString(sepCleaner.Replace(fl.Field().String()))
	})
	// money fields arrive as float64 but must be whole currency units
	_ = v.RegisterValidation("intlike", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-math.Round(f)) < 1e-9
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
		case "thaiid":
			out = append(out, FieldError{Field: field, Message: "must be a 13-digit ID card number"})
		case "phoneth":
			out = append(out, FieldError{Field: field, Message: "must be 9-10 digits"})
		case "intlike":
			out = append(out, FieldError{Field: field, Message: "must be a whole currency amount"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
