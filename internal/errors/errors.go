// Package errors defines stable error codes for codecloud failure modes.
package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ModeInvalid indicates an unrecognized scan mode was requested
	ModeInvalid ErrorCode = "MODE_INVALID"
	// AssetsMissing indicates the static assets directory does not exist
	AssetsMissing ErrorCode = "ASSETS_MISSING"
	// RootInvalid indicates the scan root is not a directory
	RootInvalid ErrorCode = "ROOT_INVALID"
	// ConfigInvalid indicates the configuration failed validation
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// MethodNotAllowed indicates an unsupported HTTP method
	MethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// CloudError represents a codecloud error with a stable code and message.
type CloudError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error       // Underlying error (not exported to JSON)
}

// New creates a new CloudError.
func New(code ErrorCode, message string, cause error) *CloudError {
	return &CloudError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *CloudError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *CloudError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *CloudError) WithDetails(details interface{}) *CloudError {
	e.Details = details
	return e
}
