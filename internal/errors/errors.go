// Package errors provides a lightweight structured error type (BlogKitError)
// for category-based classification of build and configuration failures.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a BlogKit error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryAuthors    ErrorCategory = "authors"

	// Content and rendering errors
	CategoryContent ErrorCategory = "content"
	CategoryRender  ErrorCategory = "render"

	// Runtime and infrastructure errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// BlogKitError is a structured error with category, severity, and context
type BlogKitError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for BlogKitError
type ContextFields map[string]any

// Error implements the error interface
func (e *BlogKitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *BlogKitError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *BlogKitError) WithContext(key string, value any) *BlogKitError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new BlogKitError
func New(category ErrorCategory, severity ErrorSeverity, message string) *BlogKitError {
	return &BlogKitError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Newf creates a new BlogKitError with a formatted message
func Newf(category ErrorCategory, severity ErrorSeverity, format string, args ...any) *BlogKitError {
	return New(category, severity, fmt.Sprintf(format, args...))
}

// Wrap creates a new BlogKitError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *BlogKitError {
	return &BlogKitError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if bke, ok := err.(*BlogKitError); ok {
		return bke.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a BlogKitError
func GetCategory(err error) ErrorCategory {
	if bke, ok := err.(*BlogKitError); ok {
		return bke.Category
	}
	return CategoryInternal
}

// ValidationError creates a new validation error
func ValidationError(message string) *BlogKitError {
	return &BlogKitError{
		Category: CategoryValidation,
		Severity: SeverityFatal,
		Message:  message,
	}
}

// ConfigError creates a new configuration error
func ConfigError(message string) *BlogKitError {
	return &BlogKitError{
		Category: CategoryConfig,
		Severity: SeverityFatal,
		Message:  message,
	}
}

// WrapError wraps an existing error with a new BlogKitError
func WrapError(err error, category ErrorCategory, message string) *BlogKitError {
	return &BlogKitError{
		Category: category,
		Severity: SeverityError,
		Message:  message,
		Cause:    err,
	}
}
