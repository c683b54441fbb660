// Package platform holds what every ad platform integration shares: the
// structured failure type, money conversion and creative limits.
package platform

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeValidation  Code = "VALIDATION_ERROR"
	CodeRateLimited Code = "RATE_LIMITED"
	CodeAuth        Code = "AUTH_ERROR"
	CodeBadRequest  Code = "INVALID_REQUEST"
	CodeNotFound    Code = "NOT_FOUND"
	CodeUnavailable Code = "PLATFORM_UNAVAILABLE"
	CodeNetwork     Code = "NETWORK_ERROR"
	CodeUnknown     Code = "UNKNOWN_ERROR"
)

// Error is a structured failure returned by an adapter call.
type Error struct {
	Code       Code
	Message    string
	Retryable  bool
	RetryAfter int // seconds; zero when the platform gave no hint
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports whether the call was rejected locally before any request was made.
func (e *Error) Validation() bool {
	return e.Code == CodeValidation
}

func NewValidationError(format string, args ...any) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsError extracts a structured failure from err.
func AsError(err error) (*Error, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}

// Classify turns any error into a structured failure. Errors that are
// already structured pass through; anything else is unknown and not retryable.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	if perr, ok := AsError(err); ok {
		return perr
	}
	return &Error{
		Code:    CodeUnknown,
		Message: err.Error(),
		Err:     err,
	}
}
