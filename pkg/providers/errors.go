package providers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorCategory classifies provider failures so callers can render a specific,
// non-leaking message and decide on fallback.
type ErrorCategory string

const (
	CategoryMissingCredential ErrorCategory = "missing-credential"
	CategoryInvalidCredential ErrorCategory = "invalid-credential"
	CategoryQuotaExceeded     ErrorCategory = "quota-exceeded"
	CategoryRateLimited       ErrorCategory = "rate-limited"
	CategoryMalformedResponse ErrorCategory = "malformed-response"
	CategoryUnknown           ErrorCategory = "unknown"
)

// ErrNoProviders is returned when no backend is configured at all.
var ErrNoProviders = errors.New("no generation providers configured")

// Error wraps a provider failure with its category and origin.
type Error struct {
	Category   ErrorCategory
	ProviderID string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("provider %s: %s: %s", e.ProviderID, e.Category, e.Message)
	}

	return fmt.Sprintf("provider %s: %s: %v", e.ProviderID, e.Category, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a categorized provider error.
func NewError(category ErrorCategory, providerID, message string, err error) *Error {
	return &Error{
		Category:   category,
		ProviderID: providerID,
		Message:    message,
		Err:        err,
	}
}

// IsProviderError extracts the typed provider error, if any.
func IsProviderError(err error) (*Error, bool) {
	var target *Error

	ok := errors.As(err, &target)

	return target, ok
}

// ClassifyStatus maps an HTTP status (plus body hints) to an error category.
func ClassifyStatus(providerID string, status int, body string) *Error {
	var category ErrorCategory

	switch {
	case status == http.StatusUnauthorized:
		category = CategoryInvalidCredential
	case status == http.StatusForbidden || status == http.StatusPaymentRequired:
		category = CategoryQuotaExceeded
	case status == http.StatusTooManyRequests:
		category = CategoryRateLimited
	case strings.Contains(strings.ToLower(body), "quota"):
		category = CategoryQuotaExceeded
	default:
		category = CategoryUnknown
	}

	return NewError(category, providerID,
		fmt.Sprintf("request failed with status %d", status), nil)
}
