package errors

import "net/http"

var ErrEntityNotFound = &Exception{
	Code:       "entity_not_found",
	Message:    "entity not found",
	StatusCode: http.StatusNotFound,
}
