package repository

import (
	"gorm.io/gorm"

	model "agilefant.com/agilefant/internal/models"
)

type PracticeTemplateRepository struct {
	Repository[model.PracticeTemplate]
}

func NewPracticeTemplateRepository(db *gorm.DB) *PracticeTemplateRepository {
	return &PracticeTemplateRepository{newRepository[model.PracticeTemplate](db, "name asc, id asc", func(q *gorm.DB) *gorm.DB {
		return q.Preload("Practices", func(q *gorm.DB) *gorm.DB { return q.Order("practices.id asc") })
	})}
}
