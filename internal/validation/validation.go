// Package validation turns binding failures into field-level details and
// coerces loosely typed query values.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError describes why one input field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

var setupOnce sync.Once

// Setup makes gin's validator report fields by their json, form or uri name
// instead of the Go field name. It is safe to call more than once.
func Setup() {
	setupOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(fieldName)
		}
	})
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// Details lists the field problems carried by a binding error. Errors that
// do not name a field become a single entry with an empty field.
func Details(err error) []FieldError {
	var fe FieldError
	if errors.As(err, &fe) {
		return []FieldError{fe}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, v := range verrs {
			out = append(out, FieldError{Field: v.Field(), Message: message(v)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []FieldError{{Field: typeErr.Field, Message: "must be of type " + typeErr.Type.String()}}
	}

	return []FieldError{{Message: err.Error()}}
}

// IsMalformedJSON reports whether err comes from a body that is not valid
// JSON at all, as opposed to valid JSON with wrong or missing fields.
func IsMalformedJSON(err error) bool {
	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	return !errors.As(err, &verrs) && !errors.As(err, &typeErr)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "numeric":
		return "must be numeric"
	default:
		return fmt.Sprintf("failed the %q check", fe.Tag())
	}
}
