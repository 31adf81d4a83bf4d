package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

// Kind classifies a failure for the HTTP layer.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindUnauthorized
	KindTooManyRequests
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindTooManyRequests:
		return "too_many_requests"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the error type every service returns to the HTTP layer.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
	Stack      []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, StatusCode: status, Message: message}
}

func Validation(message string) *Error {
	return New(KindValidation, http.StatusBadRequest, message)
}

func Validationf(format string, args ...any) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

func NotFound(message string) *Error {
	return New(KindNotFound, http.StatusNotFound, message)
}

func NotFoundf(format string, args ...any) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, http.StatusUnauthorized, message)
}

func TooManyRequests(message string) *Error {
	return New(KindTooManyRequests, http.StatusTooManyRequests, message)
}

// Internal wraps an unexpected failure and records the stack at the wrap site.
func Internal(err error) *Error {
	return &Error{
		Kind:       KindInternal,
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal Server Error",
		Err:        err,
		Stack:      debug.Stack(),
	}
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// From returns err unchanged when it already is an *Error and wraps it as Internal otherwise.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if appErr, ok := As(err); ok {
		return appErr
	}
	return Internal(err)
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}
