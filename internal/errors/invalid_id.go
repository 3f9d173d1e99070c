package errors

import "net/http"

var ErrInvalidID = &Exception{
	Code:       "invalid_id",
	Message:    "id must be a positive integer",
	StatusCode: http.StatusBadRequest,
}
