// Package validation provides custom validators for the application
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"console", "json"}
)

// New returns a validator with all custom validations registered
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}

// Register registers the custom validations on v
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("loglevel", validateOneOf(logLevels)); err != nil {
		return err
	}
	return v.RegisterValidation("logformat", validateOneOf(logFormats))
}

// validateOneOf matches the field case-insensitively against allowed
func validateOneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := strings.ToLower(strings.TrimSpace(fl.Field().String()))
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}
