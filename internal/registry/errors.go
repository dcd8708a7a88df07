// Package registry provides the template catalog the engine resolves
// templates from: a directory of schema-validated JSON definitions fronted by
// the template cache.
package registry

import (
	"fmt"
	"strings"
)

// TemplateNotFoundError indicates no definition exists for the requested id
type TemplateNotFoundError struct {
	ID string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s", e.ID)
}

// SchemaError indicates a template definition failed shape validation
type SchemaError struct {
	ID     string
	Fields []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("template %s failed schema validation: %s", e.ID, strings.Join(e.Fields, "; "))
}

// LoadError indicates a definition file could not be read or parsed
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load template %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load template %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
