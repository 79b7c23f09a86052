// Package server provides the HTTP REST API for the resume grader.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-grader/internal/db"
)

// ErrInvalidRole indicates an unsupported target role
type ErrInvalidRole struct {
	Role string
}

func (e *ErrInvalidRole) Error() string {
	return fmt.Sprintf("unsupported role: %s", e.Role)
}

// ErrInvalidUpload indicates the uploaded file was rejected
type ErrInvalidUpload struct {
	Reason string
}

func (e *ErrInvalidUpload) Error() string {
	return fmt.Sprintf("invalid upload: %s", e.Reason)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if errors.Is(err, db.ErrLockHeld) {
		return http.StatusConflict
	}
	if errors.Is(err, db.ErrReportNotFound) {
		return http.StatusNotFound
	}
	switch err.(type) {
	case *ErrInvalidRole, *ErrInvalidUpload, *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
