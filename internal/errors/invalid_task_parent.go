package errors

import "net/http"

var ErrInvalidTaskParent = &Exception{
	Code:       "invalid_task_parent",
	Message:    "task must belong to exactly one of a story or an iteration",
	StatusCode: http.StatusUnprocessableEntity,
}
