package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MessageTag is the struct tag holding the client-facing message of a field
const MessageTag = "msg"

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// Register installs the custom rules and reports field names by their json tag
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(JSONFieldName)
	return v.RegisterValidation("notblank", notBlank)
}

// JSONFieldName returns the json name of a struct field, or "" when it is skipped
func JSONFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// notBlank rejects strings made only of whitespace
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// Param converts a validator namespace such as "BulkEnrollRequest.enrolls[0].courseId"
// into the client-facing parameter path "enrolls[0].courseId".
func Param(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// Message returns the msg tag of the field addressed by structNamespace
// (e.g. "BulkEnrollRequest.Enrolls[0].CourseID") inside typ.
func Message(typ reflect.Type, structNamespace string) (string, bool) {
	parts := strings.Split(indexPattern.ReplaceAllString(structNamespace, ""), ".")
	if len(parts) < 2 {
		return "", false
	}

	var field reflect.StructField
	for _, name := range parts[1:] {
		for typ.Kind() == reflect.Ptr || typ.Kind() == reflect.Slice || typ.Kind() == reflect.Array {
			typ = typ.Elem()
		}
		if typ.Kind() != reflect.Struct {
			return "", false
		}
		f, ok := typ.FieldByName(name)
		if !ok {
			return "", false
		}
		field = f
		typ = f.Type
	}

	msg := field.Tag.Get(MessageTag)
	return msg, msg != ""
}

// DefaultMessage builds a message for a field without a msg tag
func DefaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "email":
		return fe.Field() + " must be a valid email address"
	case "uuid":
		return fe.Field() + " must be a valid id"
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	default:
		return fe.Field() + " validation failed: " + fe.Tag()
	}
}
