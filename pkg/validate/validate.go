package validate

import (
	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator over go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a request payload validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate validates the bound request struct against its `validate` tags.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// IsValidationErrors reports whether err came from schema validation,
// as opposed to malformed request data.
func IsValidationErrors(err error) bool {
	_, ok := err.(validator.ValidationErrors)
	return ok
}
