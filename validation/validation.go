// Package validation schema-checks request bodies before they reach the
// repositories. Validation is first-error-wins: the first violated rule is
// returned as a structured Error whose message matches the templates the
// existing clients already parse.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error describes the first violated rule of a request body.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

func (e *Error) Error() string { return e.Message }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json name so messages match the wire shape.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("password", passwordComplexity); err != nil {
		panic(fmt.Sprintf("register password validation: %v", err))
	}
	if err := v.RegisterValidation("objectid", objectID); err != nil {
		panic(fmt.Sprintf("register objectid validation: %v", err))
	}
	return v
}

// passwordComplexity enforces 8-255 chars containing a lowercase letter, an
// uppercase letter, a digit and a symbol.
func passwordComplexity(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 8 || len(s) > 255 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

func objectID(fl validator.FieldLevel) bool {
	_, err := primitive.ObjectIDFromHex(fl.Field().String())
	return err == nil
}

// oneofChoices renders a oneof tag parameter as a comma-separated list.
// Choices containing spaces are single-quoted in the tag.
func oneofChoices(param string) string {
	if !strings.Contains(param, "'") {
		return strings.Join(strings.Fields(param), ", ")
	}
	parts := strings.Split(param, "'")
	choices := []string{}
	for i, part := range parts {
		if i%2 == 1 {
			choices = append(choices, part)
		}
	}
	return strings.Join(choices, ", ")
}

// Struct validates a request body and returns the first violation, or nil.
func Struct(s interface{}) *Error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &Error{Message: err.Error()}
	}
	fe := errs[0]
	return &Error{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	// The password rule keeps the message templates of the original schema.
	if field == "password" {
		switch fe.Tag() {
		case "required":
			return "Password is a required field"
		case "password":
			if s, ok := fe.Value().(string); ok && len(s) < 8 {
				return "Password should be at least 8 characters long"
			}
			return "Password must meet complexity requirements"
		}
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, oneofChoices(fe.Param()))
	case "objectid":
		return fmt.Sprintf("%q must be a valid id", field)
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}
