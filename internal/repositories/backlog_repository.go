package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "agilefant.com/agilefant/internal/models"
)

type ProjectRepository struct {
	Repository[model.Project]
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{newRepository[model.Project](db, "id asc", func(q *gorm.DB) *gorm.DB {
		return q.Preload("Assignees")
	})}
}

// AssignedUsers returns the users assigned to the project.
func (r *ProjectRepository) AssignedUsers(ctx context.Context, projectID uint) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Model(&model.Project{ID: projectID}).
		Association("Assignees").
		Find(&users)
	return users, err
}

// ForIteration loads the project that owns the iteration.
func (r *ProjectRepository) ForIteration(ctx context.Context, iterationID uint) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Joins("JOIN iterations ON iterations.parent_id = projects.id").
		Where("iterations.id = ?", iterationID).
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

type IterationRepository struct {
	Repository[model.Iteration]
}

func NewIterationRepository(db *gorm.DB) *IterationRepository {
	return &IterationRepository{newRepository[model.Iteration](db, "id asc", preloadBacklog)}
}

// preloadBacklog loads everything needed to render an iteration backlog:
// stories in order, their tasks, and the responsibles of both.
func preloadBacklog(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Parent").
		Preload("Stories", func(q *gorm.DB) *gorm.DB { return q.Order("stories.id asc") }).
		Preload("Stories.Responsibles").
		Preload("Stories.Tasks", func(q *gorm.DB) *gorm.DB { return q.Order("tasks.id asc") }).
		Preload("Stories.Tasks.Responsibles").
		Preload("Stories.Tasks.Events", byCreated).
		Preload("Tasks", func(q *gorm.DB) *gorm.DB { return q.Order("tasks.id asc") }).
		Preload("Tasks.Responsibles").
		Preload("Tasks.Events", byCreated)
}

type StoryRepository struct {
	Repository[model.Story]
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{newRepository[model.Story](db, "id asc", func(q *gorm.DB) *gorm.DB {
		return q.
			Preload("Iteration.Parent").
			Preload("Project").
			Preload("Responsibles").
			Preload("Tasks", func(q *gorm.DB) *gorm.DB { return q.Order("tasks.id asc") }).
			Preload("Tasks.Responsibles").
			Preload("Tasks.Events", byCreated)
	})}
}
