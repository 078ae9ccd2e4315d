package req

import (
	"errors"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
)

type validator struct {
	valid *v10.Validate
}

// newValidator constructs a validator reporting fields by their query param name.
func newValidator() validator {
	v := v10.New()
	v.RegisterTagNameFunc(paramName)

	return validator{v}
}

// paramName names a field by its schema tag, the query param it decodes from.
func paramName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("schema"), ",")
	if name == "-" {
		return ""
	}

	return name
}

// validate checks structPtr against its "validate" struct tags,
// returning every failure as one ValidationErrors.
func (v validator) validate(structPtr any) error {
	err := v.valid.Struct(structPtr)

	var fieldErrs v10.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, fromFieldError(fe))
	}

	return out
}

func fromFieldError(fe v10.FieldError) ValidationError {
	// Drop the struct name leading the namespace.
	_, field, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		field = fe.Namespace()
	}

	rule := fe.Tag()
	if p := fe.Param(); p != "" {
		rule += "=" + p
	}

	return ValidationError{Field: field, Got: fe.Value(), Rule: rule + "; " + fe.Type().String()}
}
