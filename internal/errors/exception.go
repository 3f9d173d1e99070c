package errors

import (
	"errors"
	"net/http"
)

// Exception is an application error that knows its HTTP status and a
// stable machine-readable code.
type Exception struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// CodeOf returns the Exception code carried by err, or "internal".
func CodeOf(err error) string {
	var appErr *Exception
	if errors.As(err, &appErr) && appErr.Code != "" {
		return appErr.Code
	}
	return "internal"
}
