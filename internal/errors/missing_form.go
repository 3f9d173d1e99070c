package errors

import "net/http"

var ErrMissingForm = &Exception{
	Code:       "missing_form",
	Message:    "form data is missing",
	StatusCode: http.StatusUnprocessableEntity,
}
