package services

import (
	"context"
	"time"

	model "agilefant.com/agilefant/internal/models"
	repository "agilefant.com/agilefant/internal/repositories"
)

type HourEntryService struct {
	repo *repository.HourEntryRepository
}

func NewHourEntryService(repo *repository.HourEntryRepository) *HourEntryService {
	return &HourEntryService{repo: repo}
}

// CalculateSum totals the minutes spent. Nil and empty input sum to zero.
func (s *HourEntryService) CalculateSum(entries []model.HourEntry) int64 {
	var sum int64
	for _, e := range entries {
		sum += e.MinutesSpent
	}
	return sum
}

func (s *HourEntryService) LogTaskEffort(ctx context.Context, task *model.Task, userID uint, minutes int64, description string) (*model.HourEntry, error) {
	return s.log(ctx, &model.HourEntry{TaskID: &task.ID}, userID, minutes, description)
}

func (s *HourEntryService) LogStoryEffort(ctx context.Context, story *model.Story, userID uint, minutes int64, description string) (*model.HourEntry, error) {
	return s.log(ctx, &model.HourEntry{StoryID: &story.ID}, userID, minutes, description)
}

func (s *HourEntryService) log(ctx context.Context, entry *model.HourEntry, userID uint, minutes int64, description string) (*model.HourEntry, error) {
	if minutes <= 0 {
		return nil, ErrInvalidEffort
	}
	entry.UserID = userID
	entry.Date = time.Now().UTC()
	entry.MinutesSpent = minutes
	entry.Description = description
	if err := s.repo.Store(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
