package repository

import (
	"context"

	"gorm.io/gorm"

	model "agilefant.com/agilefant/internal/models"
)

type HourEntryRepository struct {
	Repository[model.HourEntry]
}

func NewHourEntryRepository(db *gorm.DB) *HourEntryRepository {
	return &HourEntryRepository{newRepository[model.HourEntry](db, "date asc, id asc", nil)}
}

func (r *HourEntryRepository) RetrieveByTask(ctx context.Context, task *model.Task) ([]model.HourEntry, error) {
	var entries []model.HourEntry
	err := r.db.WithContext(ctx).Where("task_id = ?", task.ID).Order("date asc, id asc").Find(&entries).Error
	return entries, err
}

func (r *HourEntryRepository) RetrieveByStory(ctx context.Context, story *model.Story) ([]model.HourEntry, error) {
	var entries []model.HourEntry
	err := r.db.WithContext(ctx).Where("story_id = ?", story.ID).Order("date asc, id asc").Find(&entries).Error
	return entries, err
}
