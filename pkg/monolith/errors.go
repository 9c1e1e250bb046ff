package monolith

import (
	"errors"
	"fmt"
)

// TemplateError reports a template source that could not be read. It is the
// only fatal error class: everything else in a render degrades to empty
// values or literal unexpanded markup.
type TemplateError struct {
	Template string
	Cause    error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template error: reading %q: %v", e.Template, e.Cause)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// NewTemplateError creates a new template error for the named template.
func NewTemplateError(template string, cause error) error {
	return &TemplateError{
		Template: template,
		Cause:    cause,
	}
}

// IsTemplateError checks if an error is a template error.
func IsTemplateError(err error) bool {
	var te *TemplateError
	return errors.As(err, &te)
}
