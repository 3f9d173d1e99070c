package actions

import (
	"context"
	"errors"
	"log"

	"golang.org/x/text/message"

	"agilefant.com/agilefant/internal/i18n"
	repository "agilefant.com/agilefant/internal/repositories"
)

// Result is the outcome code of an action invocation.
type Result string

const (
	ResultSuccess Result = "success"
	ResultInput   Result = "input"
	ResultError   Result = "error"
)

type State string

const (
	StateNew     State = "new"
	StateEditing State = "editing"
	StateStored  State = "stored"
	StateDeleted State = "deleted"
)

type CRUDAction interface {
	Create(ctx context.Context) Result
	Edit(ctx context.Context) Result
	Store(ctx context.Context) Result
	Delete(ctx context.Context) Result
}

type entityStore[T any] interface {
	Get(ctx context.Context, id uint) (*T, error)
	Store(ctx context.Context, entity *T) error
	Remove(ctx context.Context, entity *T) error
}

// ActionSupport collects the localized, user-facing errors of one action
// invocation together with the error kind behind the last one.
type ActionSupport struct {
	printer *message.Printer
	errs    []string
	cause   error
}

func (a *ActionSupport) addActionError(key string, cause error) {
	a.errs = append(a.errs, i18n.Text(a.printer, key))
	a.cause = cause
}

// fail turns a lookup error into an action error. Missing rows become the
// given message and result; anything else is a storage failure.
func (a *ActionSupport) fail(err error, notFoundKey string, notFoundCause error, result Result) Result {
	if errors.Is(err, repository.ErrNotFound) {
		a.addActionError(notFoundKey, notFoundCause)
		return result
	}
	log.Printf("action storage failure: %v", err)
	a.addActionError("action.storageFailure", err)
	return ResultError
}

func (a *ActionSupport) ActionErrors() []string {
	return a.errs
}

func (a *ActionSupport) HasActionErrors() bool {
	return len(a.errs) > 0
}

// Cause returns the error kind of the last recorded action error.
func (a *ActionSupport) Cause() error {
	return a.cause
}
