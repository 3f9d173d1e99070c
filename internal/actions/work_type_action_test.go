package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "agilefant.com/agilefant/internal/errors"
	model "agilefant.com/agilefant/internal/models"
)

func TestWorkTypeAction_StoreCreatesNewRow(t *testing.T) {
	f := setupFixtures(t)
	ctx := context.Background()

	action := NewWorkTypeAction(f.workTypes, f.activityTypes, testPrinter(t, "en-US"))
	action.ActivityTypeID = f.development.ID
	action.WorkType = &model.WorkType{Name: "Coding", Description: "Writing code"}

	result := action.Store(ctx)

	require.Equal(t, ResultSuccess, result)
	assert.False(t, action.HasActionErrors())
	assert.NotZero(t, action.StoredWorkTypeID)
	assert.Equal(t, StateStored, action.State)

	stored, err := f.workTypes.Get(ctx, action.StoredWorkTypeID)
	require.NoError(t, err)
	assert.Equal(t, "Coding", stored.Name)
	assert.Equal(t, "Writing code", stored.Description)
	assert.Equal(t, f.development.ID, stored.ActivityTypeID)
}

func TestWorkTypeAction_StoreKeepsNameAsGiven(t *testing.T) {
	f := setupFixtures(t)
	ctx := context.Background()

	for _, name := range []string{"", "  Pairing  "} {
		action := NewWorkTypeAction(f.workTypes, f.activityTypes, testPrinter(t, ""))
		action.ActivityTypeID = f.development.ID
		action.WorkType = &model.WorkType{Name: name}

		require.Equal(t, ResultSuccess, action.Store(ctx), "name %q", name)
		stored, err := f.workTypes.Get(ctx, action.StoredWorkTypeID)
		require.NoError(t, err)
		assert.Equal(t, name, stored.Name)
	}
}

func TestWorkTypeAction_StoreUpdatesExistingRow(t *testing.T) {
	f := setupFixtures(t)
	ctx := context.Background()

	existing := model.WorkType{Name: "Coding", ActivityTypeID: f.development.ID}
	require.NoError(t, f.db.Create(&existing).Error)

	action := NewWorkTypeAction(f.workTypes, f.activityTypes, testPrinter(t, ""))
	action.WorkTypeID = existing.ID
	action.ActivityTypeID = f.development.ID
	action.WorkType = &model.WorkType{Name: "Refactoring"}

	require.Equal(t, ResultSuccess, action.Store(ctx))
	assert.Equal(t, existing.ID, action.StoredWorkTypeID)

	var count int64
	require.NoError(t, f.db.Model(&model.WorkType{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := f.workTypes.Get(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Refactoring", stored.Name)
}

func TestWorkTypeAction_StoreUnknownWorkType(t *testing.T) {
	f := setupFixtures(t)
	ctx := context.Background()

	action := NewWorkTypeAction(f.workTypes, f.activityTypes, testPrinter(t, "en-US"))
	action.WorkTypeID = 9999
	action.ActivityTypeID = f.development.ID
	action.WorkType = &model.WorkType{Name: "Ghost"}

	result := action.Store(ctx)

	assert.Equal(t, ResultInput, result)
	assert.ErrorIs(t, action.Cause(), apperrors.ErrEntityNotFound)
	assert.Equal(t, []string{"Work type not found."}, action.ActionErrors())
	assert.Zero(t, action.StoredWorkTypeID)

	var count int64
	require.NoError(t, f.db.Model(&model.WorkType{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestWorkTypeAction_StoreRejectsBadInput(t *testing.T) {
	f := setupFixtures(t)
	ctx := context.Background()

	tests := []struct {
		name           string
		activityTypeID uint
		form           *model.WorkType
		cause          error
		message        string
	}{
		{
			name:           "missing form",
			activityTypeID: f.development.ID,
			cause:          apperrors.ErrMissingForm,
			message:        "Work type data is missing.",
		},
		{
			name:           "missing activity type",
			activityTypeID: 4242,
			form:           &model.WorkType{Name: "Coding"},
			cause:          apperrors.ErrReferenceNotFound,
			message:        "Activity type not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := NewWorkTypeAction(f.workTypes, f.activityTypes, testPrinter(t, "en"))
			action.ActivityTypeID = tt.activityTypeID
			action.WorkType = tt.form

			assert.Equal(t, ResultInput, action.Store(ctx))
			assert.ErrorIs(t, action.Cause(), tt.cause)
			assert.Equal(t, []string{tt.message}, action.ActionErrors())
		})
	}
}

func TestWorkTypeAction_CreateAndEdit(t *testing.T) {
	f := setupFixtures(t)
	ctx := context.Background()

	existing := model.WorkType{Name: "Coding", ActivityTypeID: f.development.ID}
	require.NoError(t, f.db.Create(&existing).Error)

	create := NewWorkTypeAction(f.workTypes, f.activityTypes, testPrinter(t, ""))
	create.ActivityTypeID = f.development.ID
	create.WorkTypeID = existing.ID
	require.Equal(t, ResultSuccess, create.Create(ctx))
	assert.Zero(t, create.WorkTypeID)
	assert.Equal(t, StateNew, create.State)
	require.NotNil(t, create.WorkType)
	assert.Zero(t, create.WorkType.ID)
	assert.Equal(t, f.development.ID, create.WorkType.ActivityTypeID)

	edit := NewWorkTypeAction(f.workTypes, f.activityTypes, testPrinter(t, ""))
	edit.ActivityTypeID = f.development.ID
	edit.WorkTypeID = existing.ID
	require.Equal(t, ResultSuccess, edit.Edit(ctx))
	assert.Equal(t, StateEditing, edit.State)
	assert.Equal(t, "Coding", edit.WorkType.Name)

	missing := NewWorkTypeAction(f.workTypes, f.activityTypes, testPrinter(t, ""))
	missing.ActivityTypeID = f.development.ID
	missing.WorkTypeID = 777
	assert.Equal(t, ResultInput, missing.Edit(ctx))
	assert.ErrorIs(t, missing.Cause(), apperrors.ErrEntityNotFound)
}

func TestWorkTypeAction_MissingActivityTypeIsAnError(t *testing.T) {
	f := setupFixtures(t)
	ctx := context.Background()

	create := NewWorkTypeAction(f.workTypes, f.activityTypes, testPrinter(t, ""))
	create.ActivityTypeID = 55
	assert.Equal(t, ResultError, create.Create(ctx))
	assert.ErrorIs(t, create.Cause(), apperrors.ErrReferenceNotFound)

	edit := NewWorkTypeAction(f.workTypes, f.activityTypes, testPrinter(t, ""))
	edit.ActivityTypeID = 55
	edit.WorkTypeID = 1
	assert.Equal(t, ResultError, edit.Edit(ctx))
	assert.Equal(t, []string{"Activity type not found."}, edit.ActionErrors())
}

func TestWorkTypeAction_Delete(t *testing.T) {
	f := setupFixtures(t)
	ctx := context.Background()

	existing := model.WorkType{Name: "Coding", ActivityTypeID: f.development.ID}
	require.NoError(t, f.db.Create(&existing).Error)

	action := NewWorkTypeAction(f.workTypes, f.activityTypes, testPrinter(t, ""))
	action.WorkTypeID = existing.ID
	require.Equal(t, ResultSuccess, action.Delete(ctx))
	assert.Equal(t, StateDeleted, action.State)

	_, err := f.workTypes.Get(ctx, existing.ID)
	assert.Error(t, err)

	again := NewWorkTypeAction(f.workTypes, f.activityTypes, testPrinter(t, ""))
	again.WorkTypeID = existing.ID
	assert.Equal(t, ResultInput, again.Delete(ctx))
	assert.ErrorIs(t, again.Cause(), apperrors.ErrEntityNotFound)
}

func TestWorkTypeAction_LocalizedMessages(t *testing.T) {
	f := setupFixtures(t)

	action := NewWorkTypeAction(f.workTypes, f.activityTypes, testPrinter(t, "fi-FI,fi;q=0.9,en;q=0.5"))
	action.ActivityTypeID = f.development.ID
	action.WorkTypeID = 31337
	action.WorkType = &model.WorkType{Name: "Coding"}

	assert.Equal(t, ResultInput, action.Store(context.Background()))
	assert.Equal(t, []string{"Työtyyppiä ei löytynyt."}, action.ActionErrors())
}

func TestWorkTypeAction_StorageFailure(t *testing.T) {
	f := setupFixtures(t)

	action := NewWorkTypeAction(brokenStore[model.WorkType]{}, f.activityTypes, testPrinter(t, ""))
	action.ActivityTypeID = f.development.ID
	action.WorkType = &model.WorkType{Name: "Coding"}

	assert.Equal(t, ResultError, action.Store(context.Background()))
	assert.ErrorIs(t, action.Cause(), errBroken)
	assert.Equal(t, []string{"The change could not be saved. Please try again."}, action.ActionErrors())
}
