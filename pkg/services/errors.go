// Package services provides the application services behind the HTTP API:
// workflow generation, conversation turns, and stored-workflow management.
package services

import (
	"errors"
	"fmt"

	"github.com/weftlabs/weft/pkg/extraction"
	"github.com/weftlabs/weft/pkg/providers"
	"github.com/weftlabs/weft/pkg/validation"
)

// Business logic errors. These indicate client errors (4xx responses).
var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrEmptyMessages    = errors.New("conversation must contain at least one message")
	ErrNoUserMessage    = errors.New("conversation must contain at least one user message")
	ErrUnknownProvider  = errors.New("unknown generation provider")
	ErrWorkflowRequired = errors.New("workflow cannot be nil")
)

// ServiceError wraps service-level errors with additional context.
type ServiceError struct {
	Op      string // Operation name
	Code    string // Error code for API responses
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// IsValidationError checks if an error is a request-shape error that should
// return HTTP 400.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrEmptyMessages) ||
		errors.Is(err, ErrNoUserMessage) ||
		errors.Is(err, ErrUnknownProvider) ||
		errors.Is(err, ErrWorkflowRequired)
}

// IsGraphValidationError checks if an error carries fatal graph issues, which
// should return HTTP 422 with the full issue list.
func IsGraphValidationError(err error) (*validation.Error, bool) {
	return validation.AsValidationError(err)
}

// IsExtractionError checks if an error means no workflow JSON could be pulled
// out of the model output.
func IsExtractionError(err error) bool {
	var extractionErr *extraction.Error

	return errors.As(err, &extractionErr)
}

// IsProviderError checks if an error originated in a generation backend.
func IsProviderError(err error) (*providers.Error, bool) {
	return providers.IsProviderError(err)
}

// NewValidationError creates a new validation error with context.
func NewValidationError(op, code, message string, err error) *ServiceError {
	return &ServiceError{
		Op:      op,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
