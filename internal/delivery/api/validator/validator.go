// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json name.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate checks the struct tags of i.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return errors.New(describe(validationErrs))
		}

		return errors.WithStack(err)
	}

	return nil
}

// describe renders "field: rule" pairs, e.g. "date: datetime=2006-01-02".
func describe(validationErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		parts = append(parts, fieldErr.Field()+": "+rule)
	}

	return strings.Join(parts, "; ")
}
