package errors

import (
	"fmt"
)

// ScanError is the structured error type for patscan.
// It provides context for error handling, logging, and user presentation.
//
// Every operation in the matching core is deterministic and
// side-effect-free, so no error here is ever worth retrying: a failure
// reproduces identically on every attempt. There is deliberately no
// retryable flag.
type ScanError struct {
	// Code is the unique error code (e.g. "ERR_401_INVALID_PATTERN").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Validation, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ScanError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with ScanError.
func (e *ScanError) Is(target error) bool {
	if t, ok := target.(*ScanError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *ScanError) WithDetail(key, value string) *ScanError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *ScanError) WithSuggestion(suggestion string) *ScanError {
	e.Suggestion = suggestion
	return e
}

// New creates a new ScanError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *ScanError {
	return &ScanError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a ScanError from an existing error.
// The error's message becomes the ScanError message.
func Wrap(code string, err error) *ScanError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *ScanError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// PatternError creates an invalid-pattern validation error.
func PatternError(message string, cause error) *ScanError {
	return New(ErrCodeInvalidPattern, message, cause)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *ScanError {
	return New(ErrCodeInvalidInput, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *ScanError {
	return New(ErrCodeInternal, message, cause)
}

// IsFatal checks if an error has fatal severity.
// Fatal errors should abort the current operation.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if se, ok := err.(*ScanError); ok {
		return se.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from a ScanError.
// Returns empty string if not a ScanError.
func GetCode(err error) string {
	if se, ok := err.(*ScanError); ok {
		return se.Code
	}
	return ""
}

// GetCategory extracts the category from a ScanError.
// Returns empty string if not a ScanError.
func GetCategory(err error) Category {
	if se, ok := err.(*ScanError); ok {
		return se.Category
	}
	return ""
}
