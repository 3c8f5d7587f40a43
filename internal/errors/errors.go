package errors

import "fmt"

// ErrorCode represents a Folio error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// FolioError represents a structured error with code, status, and details.
type FolioError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *FolioError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *FolioError {
	return &FolioError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewUnknownListing creates a 400 error for a listing name that is not served.
func NewUnknownListing(name string, known []string) *FolioError {
	return &FolioError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: fmt.Sprintf("unknown listing %q", name),
		Details: map[string]any{"listing": name, "known": known},
	}
}

// NewNotFound creates a 404 error. kind names what was looked up ("post", "tool").
func NewNotFound(kind, identifier string) *FolioError {
	return &FolioError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("%s not found: %s", kind, identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *FolioError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &FolioError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a FolioError with the given code.
func Is(err error, code ErrorCode) bool {
	if fErr, ok := err.(*FolioError); ok {
		return fErr.Code == code
	}
	return false
}
