package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/workspace"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates the addressed entry or skill does not exist
type ErrNotFound struct {
	What string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found", e.What)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		notFoundErr   *ErrNotFound
		sectionErr    *document.UnknownSectionError
		templateErr   *rendering.TemplateError
		formatErr     *export.UnsupportedFormatError
		schemaErr     *schemas.ValidationError
		schemaLoadErr *schemas.SchemaLoadError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &templateErr), errors.As(err, &formatErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.As(err, &sectionErr):
		return http.StatusNotFound
	case errors.Is(err, workspace.ErrClearNotConfirmed):
		return http.StatusPreconditionRequired
	case errors.As(err, &schemaErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &schemaLoadErr):
		return http.StatusInternalServerError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and writes it as JSON.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		s.jsonResponse(w, status, map[string]any{
			"error":  "document does not match schema",
			"fields": schemaErr.Errors,
		})
		return
	}
	s.errorResponse(w, status, err.Error())
}
