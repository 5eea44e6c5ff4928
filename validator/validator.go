package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var v *validator.Validate

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic("validator: register notblank: " + err.Error())
	}
}

func Instance() *validator.Validate {
	return v
}

// Struct validates i against its tags. Failures are validator.ValidationErrors
// whose namespaces use json field names.
func Struct(i any) error {
	return v.Struct(i)
}

// Var validates a single value against tag, e.g. "max=255" or "e164".
func Var(value any, tag string) error {
	return v.Var(value, tag)
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
