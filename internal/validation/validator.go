// Package validation provides the pure field validators for user-entered
// directory data plus an HTTP request validator built on the validator/v10
// library. The request validator registers the field rules as custom tags so
// API DTOs and the standalone functions share one rule source.
package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	domainerrors "github.com/brightsideapp/brightside-server/internal/errors"
)

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for our domain.
func New() *Validator {
	v := validator.New()

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		// Remove options like omitempty, -
		for i := range len(name) {
			if name[i] == ',' {
				return name[:i]
			}
		}
		return name
	})

	// Custom tags backed by the pure field validators.
	mustRegister(v, "us_phone", func(fl validator.FieldLevel) bool {
		return Phone(fl.Field().String()).Valid
	})
	mustRegister(v, "us_zip", func(fl validator.FieldLevel) bool {
		return ZIP(fl.Field().String()).Valid
	})
	mustRegister(v, "half_star", func(fl validator.FieldLevel) bool {
		return Rating(fl.Field().Float()).Valid
	})
	mustRegister(v, "review_text", func(fl validator.FieldLevel) bool {
		return ReviewText(fl.Field().String()).Valid
	})
	mustRegister(v, "display_name", func(fl validator.FieldLevel) bool {
		return DisplayName(fl.Field().String()).Valid
	})
	mustRegister(v, "folder_name", func(fl validator.FieldLevel) bool {
		return FolderName(fl.Field().String()).Valid
	})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Validate validates a struct and returns a domain error.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

// formatError converts validator errors to domain errors.
func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrors := make(map[string]string)
	for _, e := range validationErrs {
		fieldErrors[e.Field()] = friendlyMessage(e)
	}

	return domainerrors.ValidationWithDetails("validation failed", fieldErrors)
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "us_phone":
		return "must be a valid US phone number"
	case "us_zip":
		return "must be a valid ZIP code"
	case "half_star":
		return "must be a rating between 0.5 and 5 in half-star steps"
	case "review_text":
		return "must be 10-500 characters without links, HTML, or spam"
	case "display_name":
		return "must be 2-50 characters of letters, digits, spaces, periods, or hyphens"
	case "folder_name":
		return "must be 1-30 characters"
	default:
		return "is invalid"
	}
}
