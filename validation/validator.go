package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/skillsenselab/grantkit/errors"
	"github.com/skillsenselab/grantkit/privilege"
)

// Validator collects validation errors.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Validate returns an AppError if there are validation errors, nil otherwise.
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}

	messages := make([]string, len(v.errors))
	for i, e := range v.errors {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}

	appErr := errors.Validation(strings.Join(messages, "; "))
	appErr.Details = map[string]any{
		"fields": v.errors,
	}

	return appErr
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// NoDelimiter checks that a value doesn't contain the token delimiter.
// A delimiter inside an area or context value would make its token
// ambiguous to decode.
func (v *Validator) NoDelimiter(field, value string) *Validator {
	if strings.Contains(value, privilege.Delimiter) {
		v.AddError(field, fmt.Sprintf("must not contain %q", privilege.Delimiter))
	}
	return v
}

// Area checks an area vocabulary entry: required and delimiter-free.
func (v *Validator) Area(field, value string) *Validator {
	return v.Required(field, value).NoDelimiter(field, value)
}

// AccessLevel checks that a value belongs to the level vocabulary.
func (v *Validator) AccessLevel(field, value string) *Validator {
	if !privilege.AccessLevel(value).Valid() {
		v.AddError(field, fmt.Sprintf("must be one of %v", privilege.Levels()))
	}
	return v
}

// Domain checks that a value is one of {account, project}.
func (v *Validator) Domain(field, value string) *Validator {
	if !privilege.Domain(value).Valid() {
		v.AddError(field, "must be account or project")
	}
	return v
}

// RequiredUUID checks if a string is a valid non-nil UUID.
func (v *Validator) RequiredUUID(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
		return v
	}

	parsed, err := uuid.Parse(value)
	if err != nil {
		v.AddError(field, "must be a valid UUID")
		return v
	}

	if parsed == uuid.Nil {
		v.AddError(field, "must not be empty")
	}

	return v
}

// Record validates a privilege record field by field, including the
// context-iff-project rule.
func (v *Validator) Record(r privilege.Record) *Validator {
	v.Domain("domain", string(r.Domain))
	v.AccessLevel("level", string(r.Level))
	v.Area("area", r.Area)
	v.NoDelimiter("context", r.Context)
	if r.Domain == privilege.DomainProject && r.Context == "" {
		v.AddError("context", "is required for project privileges")
	}
	return v
}
