package handler

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator подключает go-playground/validator к echo.
type RequestValidator struct {
	validator *validator.Validate
}

// NewRequestValidator создает новый экземпляр RequestValidator.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate проверяет структуру по тегам validate.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
