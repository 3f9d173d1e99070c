package repository

import (
	"context"

	"gorm.io/gorm"

	model "agilefant.com/agilefant/internal/models"
)

type ActivityTypeRepository struct {
	Repository[model.ActivityType]
}

func NewActivityTypeRepository(db *gorm.DB) *ActivityTypeRepository {
	return &ActivityTypeRepository{newRepository[model.ActivityType](db, "name asc, id asc", nil)}
}

// Remove deletes the activity type together with its work types.
func (r *ActivityTypeRepository) Remove(ctx context.Context, activityType *model.ActivityType) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_type_id = ?", activityType.ID).Delete(&model.WorkType{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.ActivityType{}, activityType.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

type WorkTypeRepository struct {
	Repository[model.WorkType]
}

func NewWorkTypeRepository(db *gorm.DB) *WorkTypeRepository {
	return &WorkTypeRepository{newRepository[model.WorkType](db, "name asc, id asc", func(q *gorm.DB) *gorm.DB {
		return q.Preload("ActivityType")
	})}
}
