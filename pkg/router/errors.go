package router

import "fmt"

// ErrorCode represents a specific router failure
type ErrorCode string

const (
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	CodeNoFlags         ErrorCode = "NO_FLAGS"
	CodeHandler         ErrorCode = "HANDLER"
	CodeFailure         ErrorCode = "FAILURE"
)

// Common router errors, for use with errors.Is
var (
	ErrInvalidArgument = &Error{Code: CodeInvalidArgument}
	ErrNoFlags         = &Error{Code: CodeNoFlags}
	ErrHandler         = &Error{Code: CodeHandler}
	ErrFailure         = &Error{Code: CodeFailure}
)

// Error wraps a router failure with a code and the offending detail
type Error struct {
	Code       ErrorCode
	Message    string
	Flag       string
	Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := string(e.Code)
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Underlying)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is matches errors by code
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}
