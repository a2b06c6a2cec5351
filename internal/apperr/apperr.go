// Package apperr defines the domain errors the API maps onto HTTP statuses.
package apperr

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeValidation         Code = "VALIDATION"
	CodeConflict           Code = "CONFLICT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeTokenMissing       Code = "TOKEN_MISSING"
	CodeTokenInvalid       Code = "TOKEN_INVALID"
	CodeStore              Code = "STORE"
	CodeIngest             Code = "INGEST"
)

// HTTPStatus maps a code to the status the API contract promises. Note the
// split the clients depend on: a missing token is 401 while an invalid or
// expired one is 400.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation, CodeConflict, CodeInvalidCredentials, CodeTokenInvalid:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTokenMissing:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func Wrap(code Code, msg string, cause error) *Error {
	return &Error{Code: code, Message: msg, cause: cause}
}

func Validation(msg string) *Error { return New(CodeValidation, msg) }
func Conflict(msg string) *Error   { return New(CodeConflict, msg) }
func NotFound(msg string) *Error   { return New(CodeNotFound, msg) }

// CodeOf extracts the domain code, defaulting to CodeStore for anything the
// service layer did not classify (driver errors, context cancellation, ...).
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeStore
}

// PublicMessage is what goes into the response body. Unclassified errors get
// a generic message so internal detail never leaks to clients.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
