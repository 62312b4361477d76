package screen

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes driver-level failures.
type ErrorCode string

const (
	// CodeElementUnavailable indicates a referenced element could not be
	// located or was not actionable within the allotted wait.
	CodeElementUnavailable ErrorCode = "ELEMENT_UNAVAILABLE"

	// CodeNavigationTimeout indicates the screen location did not match a
	// guarded pattern within the allotted wait.
	CodeNavigationTimeout ErrorCode = "NAVIGATION_TIMEOUT"
)

// Error is a driver-level failure. Every Error is fatal to the run that
// observed it: the flow never retries a failed screen operation.
type Error struct {
	// Code identifies the failure category.
	Code ErrorCode

	// Target is the selector or location pattern that failed to resolve.
	Target string

	// Err is the underlying driver error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Target)
}

// Unwrap returns the underlying driver error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewElementUnavailable creates an Error for a missing or non-actionable element.
func NewElementUnavailable(selector string, err error) *Error {
	return &Error{Code: CodeElementUnavailable, Target: selector, Err: err}
}

// NewNavigationTimeout creates an Error for an unmatched location pattern.
func NewNavigationTimeout(pattern string, err error) *Error {
	return &Error{Code: CodeNavigationTimeout, Target: pattern, Err: err}
}

// IsElementUnavailable reports whether err is an element-unavailable failure.
// Uses errors.As to handle wrapped errors.
func IsElementUnavailable(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == CodeElementUnavailable
	}
	return false
}

// IsNavigationTimeout reports whether err is a navigation-timeout failure.
// Uses errors.As to handle wrapped errors.
func IsNavigationTimeout(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == CodeNavigationTimeout
	}
	return false
}
