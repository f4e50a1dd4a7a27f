// Package validation checks request inputs against declarative struct tags
// and reports every failure as a structured Violation.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Violation is one failed constraint on one field.
type Violation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

// Errors is returned by Validate when at least one constraint fails.
type Errors struct {
	Violations []Violation
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s %s", v.Field, v.Message))
	}
	return strings.Join(parts, "; ")
}

// Validator wraps go-playground/validator with the notes API rules.
type Validator struct {
	v *validator.Validate
}

// New creates a validator with the notblank and nullornotblank rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names in violations.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	must(v.RegisterValidation("notblank", validators.NotBlank))
	// nullornotblank must see nil pointers, otherwise validator reports them
	// as failures before the rule runs.
	must(v.RegisterValidation("nullornotblank", NullOrNotBlank, true))

	return &Validator{v: v}
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("validation: register rule: %v", err))
	}
}

// Validate validates a struct and returns *Errors listing every violation.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &Errors{Violations: make([]Violation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, Violation{
			Field:      fe.Field(),
			Constraint: fe.Tag(),
			Message:    message(fe),
		})
	}
	return out
}

// NullOrNotBlank passes for nil pointers and for strings with at least one
// non-whitespace character.
func NullOrNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Ptr, reflect.Interface:
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	case reflect.Invalid:
		return true
	}
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return "must not be blank"
	case "nullornotblank":
		return "must be null or not blank"
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	default:
		return "is invalid"
	}
}
