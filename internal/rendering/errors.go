// Package rendering assembles bound resume data and template styling into an
// HTML document.
package rendering

import (
	"fmt"
	"strings"
)

// ValidationFailedError indicates the resume does not satisfy the template's
// structural requirements. Warnings never produce this error; only errors do.
type ValidationFailedError struct {
	TemplateID string
	Messages   []string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("resume failed validation against template %s: %s", e.TemplateID, strings.Join(e.Messages, "; "))
}

// RenderError wraps an unexpected failure during rendering with the template
// id it occurred for. Structured failures (not-found, validation) are never
// wrapped into this.
type RenderError struct {
	TemplateID string
	Message    string
	Cause      error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render failed for template %s: %s: %v", e.TemplateID, e.Message, e.Cause)
	}
	return fmt.Sprintf("render failed for template %s: %s", e.TemplateID, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
