package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports field errors under their json names so they can be
// returned to clients unchanged.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError names the first field that failed validation.
// Field is empty when the payload as a whole is unusable.
type ValidationError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateMessageInput checks an untyped message payload.
// Fields are checked in the order name, email, message and only the first
// violation is reported.
func ValidateMessageInput(payload map[string]any) (CreateMessageRequest, *ValidationError) {
	if payload == nil {
		return CreateMessageRequest{}, &ValidationError{Message: "Expected object"}
	}

	typeErrors := map[string]string{}
	text := func(field string) string {
		raw, ok := payload[field]
		if !ok || raw == nil {
			typeErrors[field] = "Required"
			return ""
		}
		s, ok := raw.(string)
		if !ok {
			typeErrors[field] = fmt.Sprintf("Expected string, received %s", jsonKind(raw))
			return ""
		}
		return s
	}

	req := CreateMessageRequest{
		Name:    text("name"),
		Email:   text("email"),
		Message: text("message"),
	}

	// A field with a type error is left empty, so it fails "required" at its
	// own position in the struct and the field order is preserved.
	if verr := firstViolation(validate.Struct(req)); verr != nil {
		if reason, ok := typeErrors[verr.Field]; ok {
			verr.Message = reason
		}
		return CreateMessageRequest{}, verr
	}

	return req, nil
}

// ValidateProjectInput requires title, description and imageUrl, in that order.
func ValidateProjectInput(req CreateProjectRequest) *ValidationError {
	return firstViolation(validate.Struct(req))
}

func firstViolation(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := fieldErrs[0]
	return &ValidationError{
		Field:   fe.Field(),
		Message: reasonFor(fe.Tag()),
	}
}

func reasonFor(tag string) string {
	switch tag {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	default:
		return fmt.Sprintf("Failed %s validation", tag)
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case bool:
		return "boolean"
	case float64, int, int64, float32:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
