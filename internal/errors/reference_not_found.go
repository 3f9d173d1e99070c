package errors

import "net/http"

// ErrReferenceNotFound means a required parent entity does not exist.
var ErrReferenceNotFound = &Exception{
	Code:       "reference_not_found",
	Message:    "referenced entity not found",
	StatusCode: http.StatusNotFound,
}
