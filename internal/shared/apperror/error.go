package apperror

import "fmt"

type AppError struct {
	Code       string // Error code (e.g., NOT_FOUND)
	Message    string // User-facing message
	HTTPStatus int    // HTTP status code
	Details    any    // Optional structured details (e.g., failing fields)
	Err        error  // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Describe keeps code and status of a sentinel but replaces its message,
// so callers can name the offending value and still match with errors.Is.
func Describe(sentinel *AppError, format string, args ...any) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: sentinel.HTTPStatus,
		Err:        sentinel,
	}
}
