// Package api defines the JSON error envelope shared by every HTTP handler.
package api

import (
	"fmt"
	"net/http"
)

// Error is a typed failure carrying an HTTP status code. Repositories return
// it up the call chain instead of panicking; the router layer renders it as
// the standard {"status", "message"} envelope.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

// Generic failures reused across handlers.
var (
	ErrNotFound         = &Error{Status: http.StatusNotFound, Message: "Resource not found"}
	ErrMethodNotAllowed = &Error{Status: http.StatusMethodNotAllowed, Message: "Method not allowed"}
	ErrServer           = &Error{Status: http.StatusInternalServerError, Message: "Server error"}
)

// Errorf builds a typed failure with the given status code.
func Errorf(status int, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a 404 failure.
func NotFoundf(format string, args ...any) *Error {
	return Errorf(http.StatusNotFound, format, args...)
}

// BadRequestf builds a 400 failure.
func BadRequestf(format string, args ...any) *Error {
	return Errorf(http.StatusBadRequest, format, args...)
}
