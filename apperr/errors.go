// Package apperr holds the error taxonomy shared by usecases and the HTTP/websocket edges.
package apperr

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")
	ErrConflict        = errors.New("conflict")
)

// Error carries a client-safe message and one of the sentinel kinds above.
type Error struct {
	Kind    error
	Message string
}

func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NotFound(message string) *Error        { return New(ErrNotFound, message) }
func Unauthorized(message string) *Error    { return New(ErrUnauthorized, message) }
func Unauthenticated(message string) *Error { return New(ErrUnauthenticated, message) }
func BadRequest(message string) *Error      { return New(ErrBadRequest, message) }

// Message returns the client-safe message of err, or "" when err is not part of the taxonomy.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}
