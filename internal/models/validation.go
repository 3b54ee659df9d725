package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so messages match what clients send.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError represents a failed structural check of a request body
type ValidationError struct {
	Fields  []string `json:"fields,omitempty"`
	Message string   `json:"message"`
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	return ve.Message
}

// ValidateStruct runs the struct tag validation on s and converts failures
// into a ValidationError listing the offending fields in declaration order.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &ValidationError{Message: err.Error()}
	}

	var missing, invalid []string
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			missing = append(missing, fieldErr.Field())
		} else {
			invalid = append(invalid, fieldErr.Field())
		}
	}

	switch {
	case len(missing) > 0:
		return &ValidationError{
			Fields:  append(missing, invalid...),
			Message: "Missing required fields: " + strings.Join(missing, ", "),
		}
	default:
		return &ValidationError{
			Fields:  invalid,
			Message: "Invalid fields: " + strings.Join(invalid, ", "),
		}
	}
}
