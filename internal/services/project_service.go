package services

import (
	"context"
	"errors"
	"fmt"

	model "agilefant.com/agilefant/internal/models"
	repository "agilefant.com/agilefant/internal/repositories"
)

type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) GetAssignedUsers(ctx context.Context, project *model.Project) ([]model.User, error) {
	if project == nil || project.ID == 0 {
		return nil, nil
	}
	users, err := s.repo.AssignedUsers(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("assigned users of project %d: %w", project.ID, err)
	}
	return users, nil
}

// OwningProject returns the project owning backlog. An iteration whose
// parent was not loaded is looked up by id; nil means no project is known.
func (s *ProjectService) OwningProject(ctx context.Context, backlog model.Backlog) (*model.Project, error) {
	if backlog == nil {
		return nil, nil
	}
	if project := backlog.OwningProject(); project != nil {
		return project, nil
	}
	iteration, ok := backlog.(*model.Iteration)
	if !ok || iteration.ID == 0 {
		return nil, nil
	}
	project, err := s.repo.ForIteration(ctx, iteration.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("project of iteration %d: %w", iteration.ID, err)
	}
	return project, nil
}

type StoryService struct {
	projects ProjectBusiness
	backlogs BacklogResolver
}

func NewStoryService(projects ProjectBusiness, backlogs BacklogResolver) *StoryService {
	return &StoryService{projects: projects, backlogs: backlogs}
}

// GetStorysProjectResponsibles returns the users assigned to the project
// that owns the story's backlog. A story without a known backlog has none.
func (s *StoryService) GetStorysProjectResponsibles(ctx context.Context, story *model.Story) ([]model.User, error) {
	project, err := s.backlogs.OwningProject(ctx, story.Backlog())
	if err != nil {
		return nil, err
	}
	return s.projects.GetAssignedUsers(ctx, project)
}
