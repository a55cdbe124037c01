package validator

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator for struct validation of
// roster entries and configuration.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator instance
func New() *Validator {
	return &Validator{v: validator.New()}
}

// Struct performs struct validation
func (v *Validator) Struct(i interface{}) error {
	return v.v.Struct(i)
}
