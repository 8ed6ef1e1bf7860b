// Package validation adapts go-playground/validator to Echo for the API's
// request DTOs.
package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct{ v *validator.Validate }

func (r *requestValidator) Validate(i interface{}) error {
	return r.v.Struct(i)
}

// New returns the echo.Validator installed on the Courtside server.
func New() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	return &requestValidator{v: v}
}
