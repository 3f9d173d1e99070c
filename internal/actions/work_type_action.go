package actions

import (
	"context"

	"golang.org/x/text/message"

	apperrors "agilefant.com/agilefant/internal/errors"
	model "agilefant.com/agilefant/internal/models"
)

// WorkTypeAction edits the work types of one activity type. The exported
// fields are the request parameters and the results of an invocation.
type WorkTypeAction struct {
	ActionSupport

	WorkTypeID     uint
	ActivityTypeID uint
	// WorkType is the submitted form.
	WorkType     *model.WorkType
	ActivityType *model.ActivityType

	StoredWorkTypeID uint
	State            State

	workTypes     entityStore[model.WorkType]
	activityTypes entityStore[model.ActivityType]
}

func NewWorkTypeAction(
	workTypes entityStore[model.WorkType],
	activityTypes entityStore[model.ActivityType],
	printer *message.Printer,
) *WorkTypeAction {
	return &WorkTypeAction{
		ActionSupport: ActionSupport{printer: printer},
		workTypes:     workTypes,
		activityTypes: activityTypes,
	}
}

func (a *WorkTypeAction) loadActivityType(ctx context.Context) error {
	activityType, err := a.activityTypes.Get(ctx, a.ActivityTypeID)
	if err != nil {
		return err
	}
	a.ActivityType = activityType
	return nil
}

func (a *WorkTypeAction) Create(ctx context.Context) Result {
	if err := a.loadActivityType(ctx); err != nil {
		return a.fail(err, "workType.activityTypeNotFound", apperrors.ErrReferenceNotFound, ResultError)
	}
	a.WorkTypeID = 0
	a.WorkType = &model.WorkType{ActivityTypeID: a.ActivityType.ID}
	a.State = StateNew
	return ResultSuccess
}

func (a *WorkTypeAction) Edit(ctx context.Context) Result {
	if err := a.loadActivityType(ctx); err != nil {
		return a.fail(err, "workType.activityTypeNotFound", apperrors.ErrReferenceNotFound, ResultError)
	}
	workType, err := a.workTypes.Get(ctx, a.WorkTypeID)
	if err != nil {
		return a.fail(err, "workType.notFound", apperrors.ErrEntityNotFound, ResultInput)
	}
	a.WorkType = workType
	a.State = StateEditing
	return ResultSuccess
}

func (a *WorkTypeAction) Delete(ctx context.Context) Result {
	workType, err := a.workTypes.Get(ctx, a.WorkTypeID)
	if err != nil {
		return a.fail(err, "workType.notFound", apperrors.ErrEntityNotFound, ResultInput)
	}
	if err := a.workTypes.Remove(ctx, workType); err != nil {
		return a.fail(err, "workType.notFound", apperrors.ErrEntityNotFound, ResultInput)
	}
	a.WorkType = workType
	a.State = StateDeleted
	return ResultSuccess
}

// Store creates a work type when WorkTypeID is zero and updates the
// existing one otherwise. StoredWorkTypeID holds the persisted id.
func (a *WorkTypeAction) Store(ctx context.Context) Result {
	if a.WorkType == nil {
		a.addActionError("workType.missingForm", apperrors.ErrMissingForm)
		return ResultInput
	}
	if err := a.loadActivityType(ctx); err != nil {
		return a.fail(err, "workType.activityTypeNotFound", apperrors.ErrReferenceNotFound, ResultInput)
	}

	fillable := &model.WorkType{}
	if a.WorkTypeID > 0 {
		existing, err := a.workTypes.Get(ctx, a.WorkTypeID)
		if err != nil {
			return a.fail(err, "workType.notFound", apperrors.ErrEntityNotFound, ResultInput)
		}
		fillable = existing
	}
	a.fillObject(fillable)

	if err := a.workTypes.Store(ctx, fillable); err != nil {
		return a.fail(err, "workType.notFound", apperrors.ErrEntityNotFound, ResultInput)
	}

	a.StoredWorkTypeID = fillable.ID
	a.WorkType = fillable
	a.State = StateStored
	return ResultSuccess
}

func (a *WorkTypeAction) fillObject(fillable *model.WorkType) {
	fillable.Name = a.WorkType.Name
	fillable.Description = a.WorkType.Description
	fillable.ActivityTypeID = a.ActivityType.ID
	fillable.ActivityType = a.ActivityType
}
