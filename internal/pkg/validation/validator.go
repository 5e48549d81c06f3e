package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

// Validator validates request structs using `binding` tags and reports
// failures as apperrors validation errors keyed by JSON field name.
// It satisfies gin's binding.StructValidator so bound requests and
// service-level checks share one rule set.
type Validator struct {
	validate *validator.Validate
}

// Default is the shared validator instance.
var Default = New()

// New creates a Validator.
func New() *Validator {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateStruct validates obj if it is a struct or pointer to struct.
func (v *Validator) ValidateStruct(obj interface{}) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}

	err := v.validate.Struct(value.Interface())
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError(err.Error())
	}

	fields := make([]apperrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, apperrors.FieldError{Field: fe.Field(), Error: formatFieldError(fe)})
	}
	return apperrors.NewValidationError("Validation failed", fields...)
}

// Engine returns the underlying validator.
func (v *Validator) Engine() interface{} {
	return v.validate
}

// Struct validates obj with the default validator.
func Struct(obj interface{}) error {
	return Default.ValidateStruct(obj)
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "numeric":
		return e.Field() + " must be numeric"
	case "alphanum":
		return e.Field() + " must contain only letters and digits"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
