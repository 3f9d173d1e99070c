package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"agilefant.com/agilefant/internal/constants"
	apperrors "agilefant.com/agilefant/internal/errors"
	model "agilefant.com/agilefant/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func TestRepository_GetNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkTypeRepository(db)

	_, err := repo.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_StoreInsertsThenUpdates(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	activityTypes := NewActivityTypeRepository(db)
	workTypes := NewWorkTypeRepository(db)

	activityType := &model.ActivityType{Name: "Development"}
	require.NoError(t, activityTypes.Store(ctx, activityType))
	require.NotZero(t, activityType.ID)

	workType := &model.WorkType{Name: "Coding", ActivityTypeID: activityType.ID}
	require.NoError(t, workTypes.Store(ctx, workType))
	id := workType.ID
	require.NotZero(t, id)

	workType.Description = "Writing code"
	require.NoError(t, workTypes.Store(ctx, workType))
	assert.Equal(t, id, workType.ID)

	loaded, err := workTypes.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Writing code", loaded.Description)
	require.NotNil(t, loaded.ActivityType)
	assert.Equal(t, "Development", loaded.ActivityType.Name)
}

func TestRepository_RemoveAndRetrieveAll(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewActivityTypeRepository(db)

	for _, name := range []string{"Testing", "Design", "Development"} {
		require.NoError(t, repo.Store(ctx, &model.ActivityType{Name: name}))
	}

	all, err := repo.RetrieveAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Design", all[0].Name)
	assert.Equal(t, "Testing", all[2].Name)

	require.NoError(t, repo.Remove(ctx, &all[0]))
	assert.ErrorIs(t, repo.Remove(ctx, &all[0]), ErrNotFound)

	all, err = repo.RetrieveAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTaskRepository_RejectsInvalidParent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewTaskRepository(db)

	err := repo.Store(ctx, &model.Task{Name: "orphan"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTaskParent)

	storyID, iterationID := uint(1), uint(2)
	err = repo.Store(ctx, &model.Task{Name: "twice", StoryID: &storyID, IterationID: &iterationID})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTaskParent)
}

func TestTaskRepository_EventsAndRemove(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	project := model.Project{Name: "P"}
	require.NoError(t, db.Create(&project).Error)
	iteration := model.Iteration{Name: "I", ParentID: project.ID}
	require.NoError(t, db.Create(&iteration).Error)

	repo := NewTaskRepository(db)
	task := &model.Task{Name: "T", IterationID: &iteration.ID}
	require.NoError(t, repo.Store(ctx, task))

	require.NoError(t, repo.AddEvent(ctx, task, &model.TaskEvent{EventType: constants.EventPerformedWork, Effort: 25}))
	require.NoError(t, repo.UpdateStatus(ctx, task, constants.StatusStarted, nil))

	loaded, err := repo.Get(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Events, 2)
	assert.Equal(t, int64(25), loaded.PerformedEffort())
	assert.Equal(t, constants.StatusStarted, loaded.Status)
	require.NotNil(t, loaded.Iteration)
	require.NotNil(t, loaded.Iteration.Parent)
	assert.Equal(t, project.ID, loaded.Iteration.Parent.ID)

	require.NoError(t, repo.Remove(ctx, loaded))

	_, err = repo.Get(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var events int64
	require.NoError(t, db.Model(&model.TaskEvent{}).Where("task_id = ?", task.ID).Count(&events).Error)
	assert.Zero(t, events)
}

func TestTaskRepository_RemoveDeletesHourEntries(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	project := model.Project{Name: "P"}
	require.NoError(t, db.Create(&project).Error)
	iteration := model.Iteration{Name: "I", ParentID: project.ID}
	require.NoError(t, db.Create(&iteration).Error)

	repo := NewTaskRepository(db)
	task := &model.Task{Name: "T", IterationID: &iteration.ID}
	require.NoError(t, repo.Store(ctx, task))
	require.NoError(t, NewHourEntryRepository(db).Store(ctx, &model.HourEntry{TaskID: &task.ID, MinutesSpent: 20}))

	require.NoError(t, repo.Remove(ctx, task))
	assert.ErrorIs(t, repo.Remove(ctx, task), ErrNotFound)
	assert.ErrorIs(t, repo.Remove(ctx, &model.Task{ID: 4242}), ErrNotFound)

	var entries int64
	require.NoError(t, db.Model(&model.HourEntry{}).Where("task_id = ?", task.ID).Count(&entries).Error)
	assert.Zero(t, entries)
}

func TestActivityTypeRepository_RemoveDeletesWorkTypes(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewActivityTypeRepository(db)

	development := &model.ActivityType{Name: "Development"}
	design := &model.ActivityType{Name: "Design"}
	require.NoError(t, repo.Store(ctx, development))
	require.NoError(t, repo.Store(ctx, design))
	for _, wt := range []model.WorkType{
		{Name: "Coding", ActivityTypeID: development.ID},
		{Name: "Review", ActivityTypeID: development.ID},
		{Name: "Sketching", ActivityTypeID: design.ID},
	} {
		require.NoError(t, db.Create(&wt).Error)
	}

	require.NoError(t, repo.Remove(ctx, development))
	assert.ErrorIs(t, repo.Remove(ctx, development), ErrNotFound)

	var left []model.WorkType
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "Sketching", left[0].Name)
}

func TestProjectRepository_ForIteration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	project := model.Project{Name: "P"}
	require.NoError(t, db.Create(&project).Error)
	iteration := model.Iteration{Name: "I", ParentID: project.ID}
	require.NoError(t, db.Create(&iteration).Error)

	repo := NewProjectRepository(db)
	owner, err := repo.ForIteration(ctx, iteration.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, owner.ID)

	_, err = repo.ForIteration(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIterationRepository_PreloadsBacklog(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user := model.User{FullName: "Responsible"}
	require.NoError(t, db.Create(&user).Error)
	project := model.Project{Name: "P", Assignees: []model.User{user}}
	require.NoError(t, db.Create(&project).Error)
	iteration := model.Iteration{Name: "I", ParentID: project.ID}
	require.NoError(t, db.Create(&iteration).Error)

	first := model.Story{Name: "first", IterationID: &iteration.ID, Responsibles: []model.User{user}}
	second := model.Story{Name: "second", IterationID: &iteration.ID}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Create(&model.Task{Name: "t1", StoryID: &first.ID, Responsibles: []model.User{user}}).Error)
	require.NoError(t, db.Create(&model.Task{Name: "loose", IterationID: &iteration.ID}).Error)

	loaded, err := NewIterationRepository(db).Get(ctx, iteration.ID)
	require.NoError(t, err)

	require.NotNil(t, loaded.Parent)
	require.Len(t, loaded.Stories, 2)
	assert.Equal(t, first.ID, loaded.Stories[0].ID)
	require.Len(t, loaded.Stories[0].Responsibles, 1)
	require.Len(t, loaded.Stories[0].Tasks, 1)
	require.Len(t, loaded.Stories[0].Tasks[0].Responsibles, 1)
	assert.Empty(t, loaded.Stories[1].Tasks)
	require.Len(t, loaded.Tasks, 1)
	assert.Equal(t, "loose", loaded.Tasks[0].Name)

	users, err := NewProjectRepository(db).AssignedUsers(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, user.ID, users[0].ID)
}

func TestTeamRepository_RetrieveAllLoadsMembers(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	u1 := model.User{FullName: "One"}
	u2 := model.User{FullName: "Two"}
	require.NoError(t, db.Create(&u1).Error)
	require.NoError(t, db.Create(&u2).Error)
	require.NoError(t, db.Create(&model.Team{Name: "daa", Users: []model.User{u1, u2}}).Error)

	teams, err := NewTeamRepository(db).RetrieveAll(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, []uint{u1.ID, u2.ID}, teams[0].MemberIDs())

	users, err := NewUserRepository(db).RetrieveAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
