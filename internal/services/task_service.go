package services

import (
	"context"
	"errors"
	"net/http"

	"agilefant.com/agilefant/internal/constants"
	apperrors "agilefant.com/agilefant/internal/errors"
	model "agilefant.com/agilefant/internal/models"
	repository "agilefant.com/agilefant/internal/repositories"
)

type TaskService struct {
	repo      *repository.TaskRepository
	users     *repository.UserRepository
	templates *repository.PracticeTemplateRepository
}

var ErrInvalidEffort = &apperrors.Exception{
	Code:       "invalid_effort",
	Message:    "effort must be positive",
	StatusCode: http.StatusBadRequest,
}

func NewTaskService(
	repo *repository.TaskRepository,
	users *repository.UserRepository,
	templates *repository.PracticeTemplateRepository,
) *TaskService {
	return &TaskService{repo: repo, users: users, templates: templates}
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrEntityNotFound
	}
	return task, err
}

// LogPerformedWork appends a PerformedWork event. The task's performed
// effort is derived from its events, so nothing else is updated.
func (s *TaskService) LogPerformedWork(ctx context.Context, task *model.Task, userID uint, minutes int64) error {
	if minutes <= 0 {
		return ErrInvalidEffort
	}
	return s.repo.AddEvent(ctx, task, &model.TaskEvent{
		CreatorID: &userID,
		EventType: constants.EventPerformedWork,
		Effort:    minutes,
	})
}

func (s *TaskService) ChangeStatus(ctx context.Context, task *model.Task, status constants.TaskStatus, userID uint) error {
	if !status.Valid() {
		return &apperrors.Exception{Code: "invalid_status", Message: "unknown task status " + string(status), StatusCode: http.StatusBadRequest}
	}
	return s.repo.UpdateStatus(ctx, task, status, &userID)
}

// DeleteTask removes the task with its events, allocations and hour entries.
func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	err := s.repo.Remove(ctx, &model.Task{ID: id})
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.ErrEntityNotFound
	}
	return err
}

// AddWatcher makes the user a watcher of the task. Watching twice is a
// no-op.
func (s *TaskService) AddWatcher(ctx context.Context, task *model.Task, userID uint) error {
	user, err := s.users.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.ErrReferenceNotFound
	}
	if err != nil {
		return err
	}
	_, err = s.repo.AddWatcher(ctx, task, *user)
	return err
}

func (s *TaskService) RemoveWatcher(ctx context.Context, task *model.Task, userID uint) error {
	removed, err := s.repo.RemoveWatcher(ctx, task, userID)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrEntityNotFound
	}
	return nil
}

// ApplyTemplate replaces the task's practice allocations with the
// template's practices.
func (s *TaskService) ApplyTemplate(ctx context.Context, task *model.Task, templateID uint) error {
	template, err := s.templates.Get(ctx, templateID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.ErrReferenceNotFound
	}
	if err != nil {
		return err
	}
	return s.repo.ApplyTemplate(ctx, task, template)
}
