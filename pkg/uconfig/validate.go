package uconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ReservedPrefix marks internal names that may not be used as config fields.
const ReservedPrefix = "_"

// Package-level validator for field names and save options.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("config_field", validateFieldName); err != nil {
		panic(fmt.Errorf("register validator config_field: %w", err))
	}
}

// validateFieldName implements the "config_field" tag: names starting with
// ReservedPrefix belong to the implementation.
func validateFieldName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return !strings.HasPrefix(name, ReservedPrefix)
}

// checkFieldName validates a field name before it enters a config.
func checkFieldName(name string) error {
	if err := validate.Var(name, "required,config_field"); err != nil {
		return formatValidationError(name, err)
	}
	return nil
}

// formatValidationError renders go-playground/validator errors as concise text.
func formatValidationError(subject string, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var messages []string
	for _, fieldError := range validationErrors {
		switch fieldError.Tag() {
		case "required":
			messages = append(messages, "field name is required")
		case "config_field":
			messages = append(messages, fmt.Sprintf("field name %q uses the reserved prefix %q", subject, ReservedPrefix))
		case "gte":
			messages = append(messages, fmt.Sprintf("'%s' must be at least %s, got '%v'", fieldError.Field(), fieldError.Param(), fieldError.Value()))
		default:
			messages = append(messages, fmt.Sprintf("'%s' failed validation '%s', got '%v'", fieldError.Field(), fieldError.Tag(), fieldError.Value()))
		}
	}
	return fmt.Errorf("invalid %s:\n  - %s", subject, strings.Join(messages, "\n  - "))
}

// IsValid reports whether every value, at any nesting depth, belongs to the
// allowed type set. Maps are checked through their values only, lists and
// tuples through their elements. An empty input is valid.
func IsValid(values []Value) bool {
	return Validate(values) == nil
}

// Validate is IsValid with a reason: it returns a *ValidationError locating
// the first offending value, or nil.
func Validate(values []Value) error {
	for i, v := range values {
		if err := validateValue(v, "["+strconv.Itoa(i)+"]"); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMap validates every value of m, reporting paths by key.
func ValidateMap(m *Map) error {
	var err error
	m.Range(func(k string, v Value) bool {
		err = validateValue(v, k)
		return err == nil
	})
	return err
}

func validateValue(v Value, path string) error {
	switch v.kind {
	case KindMap:
		var err error
		v.fields.Range(func(k string, item Value) bool {
			err = validateValue(item, path+"."+k)
			return err == nil
		})
		return err
	case KindList, KindTuple:
		for i, item := range v.items {
			if err := validateValue(item, path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
		return nil
	case KindEnum:
		return validateEnum(*v.enum, path)
	default:
		if v.kind.IsBase() {
			return nil
		}
		return &ValidationError{Path: path, Kind: v.kind}
	}
}

// validateEnum checks the enum's declared primitive kind against the
// allow-list and the member's primitive against the declared kind.
func validateEnum(e Enum, path string) error {
	if e.typ == nil {
		return &ValidationError{Path: path, Kind: KindEnum, Reason: "enum member has no type"}
	}
	if !e.typ.kind.IsBase() {
		return &ValidationError{
			Path:   path,
			Kind:   KindEnum,
			Reason: fmt.Sprintf("%s is backed by %s", e.typ.name, e.typ.kind),
		}
	}
	if e.primitive.kind != e.typ.kind {
		return &ValidationError{
			Path:   path,
			Kind:   KindEnum,
			Reason: fmt.Sprintf("%s holds a %s, declared %s", e, e.primitive.kind, e.typ.kind),
		}
	}
	return nil
}
