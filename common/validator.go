package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const malformedBody = "The browser (or proxy) sent a request that this server could not understand."

// ValidateAndDecode decodes the JSON body of r into payload and validates its
// struct tags. Any failure is reported as a 400.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	if r.Body == nil {
		return BadRequest(malformedBody, nil)
	}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return BadRequest(malformedBody, nil)
	}

	if err := validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return BadRequest(validationErrors.Error(), nil)
		}
		return BadRequest(err.Error(), nil)
	}

	return nil
}
