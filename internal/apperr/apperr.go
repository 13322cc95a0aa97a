// Package apperr classifies service errors so HTTP handlers can map them
// to status codes without inspecting error strings.
package apperr

import (
	"errors"
	"net/http"
)

// Kind identifies the class of failure.
type Kind int

const (
	// Validation is missing or malformed input.
	Validation Kind = iota
	// Auth is a failed credential check.
	Auth
	// Forbidden is a valid credential without the required standing.
	Forbidden
	// Conflict is a duplicate unique key.
	Conflict
	// NotFound is an unknown entity.
	NotFound
	// Store is an underlying persistence failure.
	Store
)

// Error carries a kind plus a client-safe message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap attaches a kind and client-safe message to an underlying error.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// HTTPStatus maps an error to a response code. Unclassified errors are 500.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case Validation, Conflict:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-safe message. Unclassified errors get a generic
// one so internals never leak to the client.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && HTTPStatus(err) != http.StatusInternalServerError {
		return e.Msg
	}
	return "internal server error"
}
