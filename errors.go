package cdpagent

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// The resolver codes (EHTTP, ECONNECTION, ETIMEOUT, ENOCONTENT and
// EUNAVAILABLE) enumerate the distinguishable documentation fetch failure
// kinds. Callers branch on ErrorCode, never on message text.
const (
	ECONNECTION  = "connection"
	EHTTP        = "http_status"
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOCONTENT   = "no_content"
	ENOTFOUND    = "not_found"
	ETIMEOUT     = "timeout"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the constants above.
	Code string

	// Message is safe to show to the end user.
	Message string
}

// Error implements the error interface. Not user friendly; use
// ErrorMessage for a user-facing message.
func (e *Error) Error() string {
	return fmt.Sprintf("cdpagent error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
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
// Non-application errors return a generic message; nil returns the empty
// string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
