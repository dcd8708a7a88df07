// Package server provides the HTTP API for the rendering and optimization
// engine.
package server

import (
	"net/http"

	"github.com/jonathan/resume-engine/internal/ats"
	"github.com/jonathan/resume-engine/internal/registry"
	"github.com/jonathan/resume-engine/internal/rendering"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *registry.TemplateNotFoundError:
		return http.StatusNotFound
	case *rendering.ValidationFailedError:
		return http.StatusUnprocessableEntity
	case *registry.SchemaError:
		return http.StatusUnprocessableEntity
	case *ats.ServiceUnavailableError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
