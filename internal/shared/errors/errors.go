package errors

import (
	"errors"
	"fmt"
)

// ErrorType is the category an error reports to clients.
type ErrorType string

const (
	ErrorTypeNotFound         ErrorType = "not_found"
	ErrorTypeValidation       ErrorType = "validation"
	ErrorTypeConflict         ErrorType = "conflict"
	ErrorTypeUnauthorized     ErrorType = "unauthorized"
	ErrorTypeForbidden        ErrorType = "forbidden"
	ErrorTypeInternal         ErrorType = "internal"
	ErrorTypeMethodNotAllowed ErrorType = "method_not_allowed"
	ErrorTypeExternal         ErrorType = "external"
	ErrorTypeTooManyRequests  ErrorType = "too_many_requests"
)

// internalMessage replaces the text of errors that carry no AppError.
const internalMessage = "internal server error"

// AppError is a typed error. Message is safe to show to clients; Err is the
// underlying cause and is only logged.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newError(t ErrorType, message string, cause error) error {
	return &AppError{Type: t, Message: message, Err: cause}
}

func NotFound(message string) error {
	return newError(ErrorTypeNotFound, message, nil)
}

func NotFoundf(format string, args ...any) error {
	return newError(ErrorTypeNotFound, fmt.Sprintf(format, args...), nil)
}

func Validation(message string) error {
	return newError(ErrorTypeValidation, message, nil)
}

func Validationf(format string, args ...any) error {
	return newError(ErrorTypeValidation, fmt.Sprintf(format, args...), nil)
}

// WrapValidation keeps the parse failure behind a client-facing message.
func WrapValidation(message string, err error) error {
	return newError(ErrorTypeValidation, message, err)
}

func Conflictf(format string, args ...any) error {
	return newError(ErrorTypeConflict, fmt.Sprintf(format, args...), nil)
}

func Internal(message string) error {
	return newError(ErrorTypeInternal, message, nil)
}

func WrapInternal(message string, err error) error {
	return newError(ErrorTypeInternal, message, err)
}

func Unauthorized(message string) error {
	return newError(ErrorTypeUnauthorized, message, nil)
}

func Forbidden(message string) error {
	return newError(ErrorTypeForbidden, message, nil)
}

func MethodNotAllowed(method string) error {
	return newError(ErrorTypeMethodNotAllowed, fmt.Sprintf("method %s not allowed", method), nil)
}

func External(message string) error {
	return newError(ErrorTypeExternal, message, nil)
}

// WrapExternal marks a failure of a dependency such as Redis or an OAuth
// provider.
func WrapExternal(message string, err error) error {
	return newError(ErrorTypeExternal, message, err)
}

func TooManyRequests(message string) error {
	return newError(ErrorTypeTooManyRequests, message, nil)
}

// GetType returns the type of the outermost AppError in err's chain. Errors
// without one are internal.
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// Is reports whether err carries the given error type.
func Is(err error, errorType ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == errorType
}

// PublicMessage is the text a client may see for err. Internal and external
// failures expose their message but never their cause.
func PublicMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return internalMessage
	}
	switch appErr.Type {
	case ErrorTypeInternal, ErrorTypeExternal:
		return appErr.Message
	}
	return appErr.Error()
}
