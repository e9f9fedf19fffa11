package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError represents a validation error with multiple fields.
// It collects validation errors for multiple fields and can convert
// itself to a standard Error. Rule-engine validation passes run over a
// whole candidate state and must report every violated invariant, so a
// single ValidationError may carry violations with different codes.
type ValidationError struct {
	// Fields maps field names to their validation error messages
	Fields map[string][]string `json:"fields"`

	// codes tracks the distinct rule-engine codes of collected violations.
	codes map[Code]struct{}
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// NewValidationError creates a new validation error
func NewValidationError() *ValidationError {
	return &ValidationError{
		Fields: make(map[string][]string),
		codes:  make(map[Code]struct{}),
	}
}

// AddFieldError adds an error for a specific field
func (v *ValidationError) AddFieldError(field, message string) {
	v.AddCodedFieldError(CodeInvalidArgument, field, message)
}

// AddCodedFieldError adds an error for a specific field under a rule-engine code
func (v *ValidationError) AddCodedFieldError(code Code, field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
	v.codes[code] = struct{}{}
}

// HasErrors returns true if there are any validation errors
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError converts the validation error to our standard error type. When
// every collected violation shares one code that code is surfaced; mixed
// violations surface as InvalidArgument. Either way the full field map is
// preserved in metadata.
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}

	code := CodeInvalidArgument
	if len(v.codes) == 1 {
		for c := range v.codes {
			code = c
		}
	}

	err := New(code, v.Error())
	return err.WithMeta("validation_errors", v.Fields)
}

// ValidationBuilder provides a fluent interface for building validation errors.
// It accumulates field-level validation errors and returns nil if no errors
// are present.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		err: NewValidationError(),
	}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.AddFieldError(field, message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// CodedField adds a validation error for a field under a rule-engine code
func (vb *ValidationBuilder) CodedField(code Code, field, message string) *ValidationBuilder {
	vb.err.AddCodedFieldError(code, field, message)
	return vb
}

// CodedFieldf adds a formatted validation error for a field under a rule-engine code
func (vb *ValidationBuilder) CodedFieldf(code Code, field, format string, args ...interface{}) *ValidationBuilder {
	return vb.CodedField(code, field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// HasErrors returns true if any validation errors were collected
func (vb *ValidationBuilder) HasErrors() bool {
	return vb.err.HasErrors()
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if vb.err.HasErrors() {
		return vb.err.ToError()
	}
	return nil
}

// Validation helper functions

// ValidateRequired checks if a string field is required
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange checks if a value is within a range
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateMin checks if a value meets a minimum
func ValidateMin(field string, value, minValue int, vb *ValidationBuilder) {
	if value < minValue {
		vb.Fieldf(field, "must be at least %d", minValue)
	}
}

// ValidateMultipleOf checks if a value is a multiple of a step
func ValidateMultipleOf(field string, value, step int, vb *ValidationBuilder) {
	if step > 0 && value%step != 0 {
		vb.Fieldf(field, "must be a multiple of %d", step)
	}
}

// ValidateEnum checks if a value is in a list of allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
