package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":  "{field} is required",
	"gte":       "{field} must be greater than or equal to {param}",
	"lte":       "{field} must be less than or equal to {param}",
	"oneof":     "{field} must be one of {param}",
	"max":       "{field} must be less than or equal to {param}",
	"min":       "{field} must be greater than or equal to {param}",
	"email":     "{field} must be a valid email address",
	"uuid":      "{field} must be a valid UUID",
	"civildate": "{field} must be a date in YYYY-MM-DD format",
	"alphanum":  "{field} must contain only letters and digits",
}

// min and max on text count characters, not magnitude.
var lengthMessages = map[string]string{
	"max": "{field} must be at most {param} characters",
	"min": "{field} must be at least {param} characters",
}

// message renders the first validation failure that has a template, and
// falls back to the validator's own text otherwise.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		template, ok := lengthMessages[fieldErr.Tag()]
		if !ok || fieldErr.Kind() != reflect.String {
			template, ok = messages[fieldErr.Tag()]
		}

		if ok {
			return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(template)
		}
	}

	return fieldErrors.Error()
}
