// Package validator wraps go-playground/validator and turns its errors into the
// {field, message} list used by validation error responses.
package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/charcoles/charcole/ecode"
	"github.com/charcoles/charcole/utils"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is a list of field errors. It implements error.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Validator validates structs by their `validate` tags.
type Validator struct {
	v *validator.Validate
}

var (
	std  *Validator
	once sync.Once
)

// Default returns the shared validator instance.
func Default() *Validator {
	once.Do(func() {
		std = New()
	})
	return std
}

// New creates a validator with the project specific rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
		return utils.ValidateName(fl.Field().String())
	})

	return &Validator{v: v}
}

// Struct validates s. It returns nil or an Errors value.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

// Var validates a single value against tag.
func (v *Validator) Var(field string, value any, tag string) error {
	err := v.v.Var(value, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: field, Message: messageFor(field, fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	return messageFor(fe.Field(), fe)
}

func messageFor(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return ecode.FieldIsRequired(field)
	case "min":
		return ecode.FieldTooShort(field, fe.Param())
	case "max":
		return ecode.FieldTooLong(field, fe.Param())
	case "oneof":
		return ecode.FieldNotOneOf(field, fe.Param())
	case "email", "url", "projectname":
		return ecode.FieldBadFormat(field)
	default:
		return ecode.FieldIsInvalid(field)
	}
}
