package errors

import (
	"fmt"
	"sort"
	"strings"
)

// MetaValidationErrors is the metadata key holding the per-field messages of
// an InvalidArgument error built by ValidationBuilder
const MetaValidationErrors = "validation_errors"

// ValidationError collects messages per field
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// NewValidationError creates an empty validation error
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Error lists the fields in name order so the message is stable between runs
func (v *ValidationError) Error() string {
	if !v.HasErrors() {
		return "validation failed"
	}

	var sb strings.Builder
	sb.WriteString("validation failed: ")
	for i, field := range v.Names() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(field)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(v.Fields[field], ", "))
	}
	return sb.String()
}

// Names returns the failing field names, sorted
func (v *ValidationError) Names() []string {
	names := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return names
}

func (v *ValidationError) AddFieldError(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

func (v *ValidationError) AddFieldErrorf(field, format string, args ...interface{}) {
	v.AddFieldError(field, fmt.Sprintf(format, args...))
}

func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError converts v to an InvalidArgument error carrying the fields under
// MetaValidationErrors. It returns nil when v is empty.
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}
	return InvalidArgument(v.Error()).WithMeta(MetaValidationErrors, v.Fields)
}

// FieldErrors returns the per-field messages of a validation failure, or nil
// when err did not come from a ValidationBuilder
func FieldErrors(err error) map[string][]string {
	fields, _ := GetMeta(err)[MetaValidationErrors].(map[string][]string)
	return fields
}

// ValidationBuilder accumulates field errors. Build returns nil when nothing
// was added.
type ValidationBuilder struct {
	err *ValidationError
}

func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{err: NewValidationError()}
}

func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.AddFieldError(field, message)
	return vb
}

func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	vb.err.AddFieldErrorf(field, format, args...)
	return vb
}

// RequiredField records "is required" for field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

func (vb *ValidationBuilder) Build() error {
	if err := vb.err.ToError(); err != nil {
		return err
	}
	return nil
}

// ValidateRequired records field as missing when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange records field when value falls outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}
