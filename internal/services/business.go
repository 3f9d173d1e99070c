package services

import (
	"context"

	model "agilefant.com/agilefant/internal/models"
)

type ProjectBusiness interface {
	GetAssignedUsers(ctx context.Context, project *model.Project) ([]model.User, error)
}

// BacklogResolver finds the project owning a backlog, loading it when the
// backlog only carries ids.
type BacklogResolver interface {
	OwningProject(ctx context.Context, backlog model.Backlog) (*model.Project, error)
}

type StoryBusiness interface {
	GetStorysProjectResponsibles(ctx context.Context, story *model.Story) ([]model.User, error)
}

type HourEntryBusiness interface {
	CalculateSum(entries []model.HourEntry) int64
}

type HourEntryStore interface {
	RetrieveByTask(ctx context.Context, task *model.Task) ([]model.HourEntry, error)
	RetrieveByStory(ctx context.Context, story *model.Story) ([]model.HourEntry, error)
}

type UserLister interface {
	RetrieveAll(ctx context.Context) ([]model.User, error)
}

type TeamLister interface {
	RetrieveAll(ctx context.Context) ([]model.Team, error)
}
