package validation

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	fixtureerrors "txn-fixture-generator/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("csv_path", validateCSVPath)
	_ = v.RegisterValidation("row_count", validateRowCount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("arg"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and converts any failures into a validation FixtureError
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fixtureerrors.Wrap(fixtureerrors.ValidationGeneral, err)
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrors[fe.Field()] = messageFor(fe)
	}

	verr := fixtureerrors.NewValidationError(fieldErrors)
	if len(validationErrs) == 1 {
		verr.Code = codeFor(validationErrs[0])
	}
	return verr
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "csv_path":
		return fmt.Sprintf("%q is not a file path", fe.Value())
	case "row_count":
		return fmt.Sprintf("must be zero or greater, got %v", fe.Value())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func codeFor(fe validator.FieldError) fixtureerrors.ErrorCode {
	switch fe.Tag() {
	case "required":
		return fixtureerrors.ValidationRequiredField
	case "csv_path":
		return fixtureerrors.ValidationInvalidFormat
	case "row_count":
		return fixtureerrors.ValidationOutOfRange
	default:
		return fixtureerrors.ValidationGeneral
	}
}

// Custom validation functions

// validateCSVPath validates that the value names a file rather than a directory
func validateCSVPath(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if strings.TrimSpace(path) == "" {
		return false
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return false
	}

	base := filepath.Base(path)
	return base != "." && base != ".."
}

// validateRowCount validates that a row count is not negative
func validateRowCount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() >= 0
	default:
		return false
	}
}
