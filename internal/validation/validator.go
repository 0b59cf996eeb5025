package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON name so messages match the request body.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("notblank", validateNotBlank)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

// FieldError describes one failed rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"-"`
	Message string `json:"message"`
}

// Struct validates s against its `validate` tags.
func Struct(s interface{}) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Tag: "invalid", Message: err.Error()}}
	}

	var errors []FieldError
	for _, err := range validationErrors {
		errors = append(errors, toFieldError(err.Field(), err.Tag(), err.Param()))
	}
	return errors
}

// Var validates a single value against tag and reports failures under field.
func Var(field string, value interface{}, tag string) []FieldError {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: field, Tag: "invalid", Message: err.Error()}}
	}

	var errors []FieldError
	for _, err := range validationErrors {
		name := field
		// dive errors carry the element index, e.g. "[1]"
		if err.Field() != "" {
			name = field + err.Field()
		}
		errors = append(errors, toFieldError(name, err.Tag(), err.Param()))
	}
	return errors
}

func toFieldError(field, tag, param string) FieldError {
	var message string
	switch tag {
	case "required", "notblank":
		message = fmt.Sprintf("%s is required", field)
	case "email":
		message = fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		message = fmt.Sprintf("%s must be a valid URL", field)
	case "oneof":
		message = fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	case "min":
		message = fmt.Sprintf("%s must be at least %s characters", field, param)
	case "max":
		message = fmt.Sprintf("%s must be at most %s characters", field, param)
	case "gte":
		message = fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		message = fmt.Sprintf("%s must be less than or equal to %s", field, param)
	default:
		message = fmt.Sprintf("%s is invalid", field)
	}

	if field != "" {
		field = strings.ToLower(field[:1]) + field[1:]
	}
	return FieldError{
		Field:   field,
		Tag:     tag,
		Message: message,
	}
}

// IsMissing reports whether the failure is a required-field failure.
func (e FieldError) IsMissing() bool {
	return e.Tag == "required" || e.Tag == "notblank"
}
