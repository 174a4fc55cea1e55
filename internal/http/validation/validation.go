package validation

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldErrors map[string]string

// Missing lists the field names carrying a "required" error, sorted, for
// messages of the form "missing required fields: a, b".
func (fe FieldErrors) Missing() []string {
	out := make([]string, 0, len(fe))
	for k, v := range fe {
		if v == requiredMessage {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// MissingFieldsMessage names the absent required fields when there are any,
// and falls back to a generic message otherwise.
func MissingFieldsMessage(fe FieldErrors) string {
	missing := fe.Missing()
	if len(missing) == 0 {
		return "Invalid request."
	}
	return "missing required fields: " + strings.Join(missing, ", ")
}

const requiredMessage = "This field is required."

// FromBindError converts a bind/validation error into a field->message map.
// dst: pointer to the struct that was bound (for tag lookup)
func FromBindError(err error, dst any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fieldKey(dst, fe.StructField())
			out[key] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}

	// other bind errors (type mismatch, malformed JSON, ...)
	out["_"] = "Request body is invalid."
	return out
}

func fieldKey(dst any, structField string) string {
	t := reflect.TypeOf(dst)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return strings.ToLower(structField)
	}

	f, ok := t.FieldByName(structField)
	if !ok {
		return strings.ToLower(structField)
	}
	tag := f.Tag.Get("json")
	if tag == "" {
		tag = f.Tag.Get("form")
	}
	if tag == "" {
		return strings.ToLower(structField)
	}
	// strip options like json:"email,omitempty"
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "-" {
		return strings.ToLower(structField)
	}
	return tag
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return requiredMessage
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Must be at least " + param + "."
	case "max":
		return "Must be at most " + param + "."
	case "gt":
		return "Must be greater than " + param + "."
	default:
		return "Invalid value."
	}
}
