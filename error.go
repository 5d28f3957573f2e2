package firefoxkb

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be translated into user-facing behavior at the flow
// boundary: ENOTFOUND becomes an empty result list, ENOTCONFIGURED and
// EUNAVAILABLE become actionable error results, everything else is
// reported as an internal error.
const (
	EINTERNAL      = "internal"
	EINVALID       = "invalid"
	ENOTCONFIGURED = "not_configured"
	ENOTFOUND      = "not_found"
	EUNAVAILABLE   = "unavailable"
)

// Error represents an application-specific error. Errors can be unwrapped
// by the caller to extract the code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("firefoxkb error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// LoadError reports a failed cache load attempt and names the profile that
// caused it, so callers can point the user at the misconfigured entry.
type LoadError struct {
	ProfilePath string
	Err         error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("loading bookmarks for profile %q: %v", e.ProfilePath, e.Err)
}

// Unwrap returns the underlying store error, so ErrorCode sees through a
// LoadError to the reader's code.
func (e *LoadError) Unwrap() error {
	return e.Err
}
