package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorBody is the 400 payload returned when a request DTO fails validation.
type ErrorBody struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields"`
}

// ErrorResponse flattens validator errors into a per-field list of failed
// tags (e.g. {"to": ["email"]}). Non-validator errors keep their message.
func ErrorResponse(err error) ErrorBody {
	fields := map[string][]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			fields[field] = append(fields[field], fe.Tag())
		}
	}
	if len(fields) == 0 {
		return ErrorBody{Error: err.Error(), Fields: fields}
	}
	return ErrorBody{Error: "validation_failed", Fields: fields}
}
