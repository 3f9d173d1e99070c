package actions

import (
	"context"

	"golang.org/x/text/message"

	apperrors "agilefant.com/agilefant/internal/errors"
	model "agilefant.com/agilefant/internal/models"
)

type ActivityTypeAction struct {
	ActionSupport

	ActivityTypeID uint
	ActivityType   *model.ActivityType

	StoredActivityTypeID uint
	State                State

	activityTypes entityStore[model.ActivityType]
}

func NewActivityTypeAction(activityTypes entityStore[model.ActivityType], printer *message.Printer) *ActivityTypeAction {
	return &ActivityTypeAction{
		ActionSupport: ActionSupport{printer: printer},
		activityTypes: activityTypes,
	}
}

func (a *ActivityTypeAction) Create(ctx context.Context) Result {
	a.ActivityTypeID = 0
	a.ActivityType = &model.ActivityType{}
	a.State = StateNew
	return ResultSuccess
}

func (a *ActivityTypeAction) Edit(ctx context.Context) Result {
	activityType, err := a.activityTypes.Get(ctx, a.ActivityTypeID)
	if err != nil {
		return a.fail(err, "activityType.notFound", apperrors.ErrEntityNotFound, ResultInput)
	}
	a.ActivityType = activityType
	a.State = StateEditing
	return ResultSuccess
}

func (a *ActivityTypeAction) Delete(ctx context.Context) Result {
	activityType, err := a.activityTypes.Get(ctx, a.ActivityTypeID)
	if err != nil {
		return a.fail(err, "activityType.notFound", apperrors.ErrEntityNotFound, ResultInput)
	}
	if err := a.activityTypes.Remove(ctx, activityType); err != nil {
		return a.fail(err, "activityType.notFound", apperrors.ErrEntityNotFound, ResultInput)
	}
	a.ActivityType = activityType
	a.State = StateDeleted
	return ResultSuccess
}

func (a *ActivityTypeAction) Store(ctx context.Context) Result {
	if a.ActivityType == nil {
		a.addActionError("activityType.missingForm", apperrors.ErrMissingForm)
		return ResultInput
	}

	fillable := &model.ActivityType{}
	if a.ActivityTypeID > 0 {
		existing, err := a.activityTypes.Get(ctx, a.ActivityTypeID)
		if err != nil {
			return a.fail(err, "activityType.notFound", apperrors.ErrEntityNotFound, ResultInput)
		}
		fillable = existing
	}
	fillable.Name = a.ActivityType.Name
	fillable.Description = a.ActivityType.Description

	if err := a.activityTypes.Store(ctx, fillable); err != nil {
		return a.fail(err, "activityType.notFound", apperrors.ErrEntityNotFound, ResultInput)
	}

	a.StoredActivityTypeID = fillable.ID
	a.ActivityType = fillable
	a.State = StateStored
	return ResultSuccess
}
