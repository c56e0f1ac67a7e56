package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"pdf-backend-bench/internal/domain"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeCapability  ErrorType = "capability"
	ErrorTypeUnavailable ErrorType = "backend_unavailable"
	ErrorTypeTool        ErrorType = "external_tool"
	ErrorTypePipeline    ErrorType = "pipeline"
	ErrorTypeMalformed   ErrorType = "malformed_document"
	ErrorTypeInternal    ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Details:    detail,
		StatusCode: http.StatusBadRequest,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// FromDomain maps a domain-layer error onto the HTTP error taxonomy.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	if stderrors.Is(err, domain.ErrBackendNotFound) {
		return &AppError{
			Type:       ErrorTypeNotFound,
			Message:    err.Error(),
			StatusCode: http.StatusNotFound,
			Cause:      err,
		}
	}

	var capErr *domain.CapabilityError
	if stderrors.As(err, &capErr) {
		return &AppError{
			Type:       ErrorTypeCapability,
			Message:    capErr.Error(),
			StatusCode: http.StatusBadRequest,
			Cause:      err,
		}
	}

	var unavailableErr *domain.BackendUnavailableError
	if stderrors.As(err, &unavailableErr) {
		return &AppError{
			Type:       ErrorTypeUnavailable,
			Message:    unavailableErr.Error(),
			StatusCode: http.StatusServiceUnavailable,
			Cause:      err,
		}
	}

	var stageErr *domain.PipelineStageError
	if stderrors.As(err, &stageErr) {
		return &AppError{
			Type:       ErrorTypePipeline,
			Message:    stageErr.Error(),
			StatusCode: http.StatusBadGateway,
			Cause:      err,
		}
	}

	var toolErr *domain.ExternalToolError
	if stderrors.As(err, &toolErr) {
		return &AppError{
			Type:       ErrorTypeTool,
			Message:    toolErr.Error(),
			StatusCode: http.StatusBadGateway,
			Cause:      err,
		}
	}

	var malformedErr *domain.MalformedDocumentError
	if stderrors.As(err, &malformedErr) {
		return &AppError{
			Type:       ErrorTypeMalformed,
			Message:    malformedErr.Error(),
			StatusCode: http.StatusUnprocessableEntity,
			Cause:      err,
		}
	}

	return NewInternalError("unexpected error", err)
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
