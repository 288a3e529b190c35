// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "guardian/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports field names by their json tag.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// FieldError is ErrValidationFailed carrying the rejected fields in declaration order.
type FieldError struct {
	*domainerrors.BaseError

	Fields []string
}

// Validate checks i and returns a *FieldError listing every failed field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make([]string, 0, len(fieldErrs))
	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
		details = append(details, fe.Field()+" failed on "+fe.Tag())
	}

	return &FieldError{
		BaseError: domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; ")),
		Fields:    fields,
	}
}

// Reject maps the first rejected field of a *FieldError to its domain error, keeping the details.
// Other errors, and fields missing from byField, are returned unchanged.
func Reject(err error, byField map[string]*domainerrors.BaseError) error {
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || len(fieldErr.Fields) == 0 {
		return err
	}

	domainErr, ok := byField[fieldErr.Fields[0]]
	if !ok {
		return err
	}

	return domainErr.WithDetails(fieldErr.Details())
}
