package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"agilefant.com/agilefant/internal/constants"
	model "agilefant.com/agilefant/internal/models"
)

type TaskRepository struct {
	Repository[model.Task]
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{newRepository[model.Task](db, "id asc", preloadTask)}
}

func preloadTask(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Story.Iteration.Parent").
		Preload("Story.Project").
		Preload("Iteration.Parent").
		Preload("Responsibles").
		Preload("Watchers").
		Preload("Practices", func(q *gorm.DB) *gorm.DB { return q.Order("practice_allocations.id asc") }).
		Preload("Events", byCreated)
}

// AddEvent appends an event to the task's log. The event's creation time
// defaults to now.
func (r *TaskRepository) AddEvent(ctx context.Context, task *model.Task, event *model.TaskEvent) error {
	event.TaskID = task.ID
	if event.Created.IsZero() {
		event.Created = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return err
	}
	task.Events = append(task.Events, *event)
	return nil
}

// UpdateStatus changes the task status and records a StatusChanged event
// in one transaction.
func (r *TaskRepository) UpdateStatus(ctx context.Context, task *model.Task, status constants.TaskStatus, by *uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Task{}).Where("id = ?", task.ID).UpdateColumn("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		event := model.TaskEvent{
			TaskID:    task.ID,
			CreatorID: by,
			Created:   time.Now().UTC(),
			EventType: constants.EventStatusChanged,
			Comment:   string(status),
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		task.Status = status
		task.Events = append(task.Events, event)
		return nil
	})
}

// Remove deletes the task together with its events, practice allocations,
// hour entries and join rows.
func (r *TaskRepository) Remove(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []any{&model.TaskEvent{}, &model.PracticeAllocation{}, &model.HourEntry{}} {
			if err := tx.Where("task_id = ?", task.ID).Delete(dependent).Error; err != nil {
				return err
			}
		}
		res := tx.Select("Watchers", "Responsibles").Delete(&model.Task{ID: task.ID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// associationOwner is a bare copy of the task for association writes. It
// keeps the parent ids so the save hook passes, and leaves the caller's
// slices alone.
func associationOwner(task *model.Task) *model.Task {
	return &model.Task{ID: task.ID, StoryID: task.StoryID, IterationID: task.IterationID}
}

// AddWatcher persists u as a watcher unless the task already has a watcher
// with the same id. It reports whether the watcher was added.
func (r *TaskRepository) AddWatcher(ctx context.Context, task *model.Task, u model.User) (bool, error) {
	if !task.AddWatcher(u) {
		return false, nil
	}
	if err := r.db.WithContext(ctx).Model(associationOwner(task)).Association("Watchers").Append(&u); err != nil {
		task.RemoveWatcher(u.ID)
		return false, err
	}
	return true, nil
}

// RemoveWatcher drops the watcher with userID. It reports whether the task
// had such a watcher.
func (r *TaskRepository) RemoveWatcher(ctx context.Context, task *model.Task, userID uint) (bool, error) {
	if !task.RemoveWatcher(userID) {
		return false, nil
	}
	if err := r.db.WithContext(ctx).Model(associationOwner(task)).Association("Watchers").Delete(&model.User{ID: userID}); err != nil {
		return false, err
	}
	return true, nil
}

// ApplyTemplate replaces the task's practice allocations with one per
// practice of the template.
func (r *TaskRepository) ApplyTemplate(ctx context.Context, task *model.Task, template *model.PracticeTemplate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&model.PracticeAllocation{}).Error; err != nil {
			return err
		}
		task.UseTemplate(template)
		if len(task.Practices) == 0 {
			return nil
		}
		return tx.Create(&task.Practices).Error
	})
}
