package services

import (
	"context"
	"fmt"

	"agilefant.com/agilefant/internal/constants"
	dto "agilefant.com/agilefant/internal/data_models"
	apperrors "agilefant.com/agilefant/internal/errors"
	model "agilefant.com/agilefant/internal/models"
)

// TransferObjectService assembles the read-only transfer objects handed to
// the presentation layer.
type TransferObjectService struct {
	projects    ProjectBusiness
	backlogs    BacklogResolver
	stories     StoryBusiness
	hourEntries HourEntryBusiness
	entryStore  HourEntryStore
	users       UserLister
	teams       TeamLister
}

func NewTransferObjectService(
	projects ProjectBusiness,
	backlogs BacklogResolver,
	stories StoryBusiness,
	hourEntries HourEntryBusiness,
	entryStore HourEntryStore,
	users UserLister,
	teams TeamLister,
) *TransferObjectService {
	return &TransferObjectService{
		projects:    projects,
		backlogs:    backlogs,
		stories:     stories,
		hourEntries: hourEntries,
		entryStore:  entryStore,
		users:       users,
		teams:       teams,
	}
}

// ConstructTaskTO builds a TaskTO, looking up which users count as "in
// project" from the task's parent: the story's project responsibles, or
// the assigned users of the iteration's project.
func (s *TransferObjectService) ConstructTaskTO(ctx context.Context, task *model.Task) (*dto.TaskTO, error) {
	var (
		assigned []model.User
		err      error
	)
	switch parent := task.BacklogItem().(type) {
	case *model.Story:
		assigned, err = s.stories.GetStorysProjectResponsibles(ctx, parent)
	case *model.Iteration:
		var project *model.Project
		if project, err = s.backlogs.OwningProject(ctx, parent); err == nil {
			assigned, err = s.projects.GetAssignedUsers(ctx, project)
		}
	default:
		return nil, apperrors.ErrInvalidTaskParent
	}
	if err != nil {
		return nil, fmt.Errorf("resolve project users for task %d: %w", task.ID, err)
	}
	return s.ConstructTaskTOWithUsers(ctx, task, assigned)
}

func (s *TransferObjectService) ConstructTaskTOWithUsers(ctx context.Context, task *model.Task, assignedUsers []model.User) (*dto.TaskTO, error) {
	entries, err := s.entryStore.RetrieveByTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("hour entries of task %d: %w", task.ID, err)
	}

	return &dto.TaskTO{
		ID:              task.ID,
		Name:            task.Name,
		Description:     task.Description,
		Status:          task.Status,
		Priority:        task.Priority,
		EffortEstimate:  task.EffortEstimate,
		PerformedEffort: task.PerformedEffort(),
		EffortSpent:     s.hourEntries.CalculateSum(entries),
		StoryID:         task.StoryID,
		IterationID:     task.IterationID,
		UserData:        resolveResponsibles(task, assignedUsers),
	}, nil
}

// ConstructStoryTO builds a StoryTO with nested TaskTOs. Effort spent on
// the tasks is rolled up into TotalEffortSpent.
func (s *TransferObjectService) ConstructStoryTO(ctx context.Context, story *model.Story, assignedUsers []model.User) (*dto.StoryTO, error) {
	entries, err := s.entryStore.RetrieveByStory(ctx, story)
	if err != nil {
		return nil, fmt.Errorf("hour entries of story %d: %w", story.ID, err)
	}

	to := &dto.StoryTO{
		ID:          story.ID,
		Name:        story.Name,
		Description: story.Description,
		State:       story.State,
		StoryPoints: story.StoryPoints,
		EffortSpent: s.hourEntries.CalculateSum(entries),
		Tasks:       make([]dto.TaskTO, 0, len(story.Tasks)),
		UserData:    resolveResponsibles(story, assignedUsers),
	}
	to.TotalEffortSpent = to.EffortSpent

	for i := range story.Tasks {
		taskTO, err := s.ConstructTaskTOWithUsers(ctx, &story.Tasks[i], assignedUsers)
		if err != nil {
			return nil, err
		}
		to.TotalEffortSpent += taskTO.EffortSpent
		to.PerformedEffort += taskTO.PerformedEffort
		to.Tasks = append(to.Tasks, *taskTO)
	}

	return to, nil
}

// ConstructBacklogDataWithUserData returns one StoryTO per story of the
// iteration, in story order. users may be nil.
func (s *TransferObjectService) ConstructBacklogDataWithUserData(ctx context.Context, iteration *model.Iteration, users []model.User) ([]dto.StoryTO, error) {
	stories := make([]dto.StoryTO, 0, len(iteration.Stories))
	for i := range iteration.Stories {
		to, err := s.ConstructStoryTO(ctx, &iteration.Stories[i], users)
		if err != nil {
			return nil, err
		}
		stories = append(stories, *to)
	}
	return stories, nil
}

func (s *TransferObjectService) ConstructUserAutocompleteData(ctx context.Context) ([]dto.AutocompleteDataNode, error) {
	users, err := s.users.RetrieveAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	nodes := make([]dto.AutocompleteDataNode, 0, len(users))
	for _, u := range users {
		nodes = append(nodes, dto.AutocompleteDataNode{
			ID:            u.ID,
			Name:          u.FullName,
			BaseClassName: constants.UserClassName,
		})
	}
	return nodes, nil
}

func (s *TransferObjectService) ConstructTeamAutocompleteData(ctx context.Context) ([]dto.AutocompleteDataNode, error) {
	teams, err := s.teams.RetrieveAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	nodes := make([]dto.AutocompleteDataNode, 0, len(teams))
	for i := range teams {
		nodes = append(nodes, dto.AutocompleteDataNode{
			ID:            teams[i].ID,
			Name:          teams[i].Name,
			BaseClassName: constants.TeamClassName,
			IDList:        teams[i].MemberIDs(),
		})
	}
	return nodes, nil
}
