package utils

import (
	"availability-service/internal/pkg/exceptions"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate = validator.New()

// DecodeAndValidate decodes the JSON request body into dst and runs the
// struct-tag validation, wrapping both failure modes as client errors.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := validate.Struct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
