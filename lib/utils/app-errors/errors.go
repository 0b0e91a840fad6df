package apperrors

import (
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrWeakCredential    = errors.New("weak credential")
	ErrInvalidFormat     = errors.New("invalid format")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrConflict          = errors.New("conflict")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrDanglingReference = errors.New("dangling reference")
)

type kind struct {
	err    error
	status int
}

var kinds = []kind{
	{ErrValidation, http.StatusBadRequest},
	{ErrWeakCredential, http.StatusBadRequest},
	{ErrInvalidFormat, http.StatusBadRequest},
	{ErrInvalidStatus, http.StatusBadRequest},
	{ErrConflict, http.StatusBadRequest},
	{ErrInvalidCredential, http.StatusBadRequest},
	{ErrUnauthenticated, http.StatusUnauthorized},
	{ErrUnauthorized, http.StatusForbidden},
	{ErrForbidden, http.StatusForbidden},
	{ErrNotFound, http.StatusNotFound},
	{ErrDanglingReference, http.StatusNotFound},
}

// New returns err wrapped with a human readable message. The message is what
// the client sees, errors.Is(result, kind) keeps working.
func New(kind error, message string) error {
	return &appError{kind: kind, msg: message}
}

func Newf(kind error, format string, args ...interface{}) error {
	return New(kind, errors.Errorf(format, args...).Error())
}

type appError struct {
	kind error
	msg  string
}

func (e *appError) Error() string { return e.msg }

func (e *appError) Unwrap() error { return e.kind }

// HTTPStatus maps an error to a response code, unknown errors are 500.
func HTTPStatus(err error) int {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.status
		}
	}
	return http.StatusInternalServerError
}

// Message returns the text safe to show to the client, or "" for server errors.
func Message(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return ""
	}
	var ae *appError
	if errors.As(err, &ae) {
		return ae.msg
	}
	return err.Error()
}
