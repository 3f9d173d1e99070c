package repository

import (
	"gorm.io/gorm"

	model "agilefant.com/agilefant/internal/models"
)

type UserRepository struct {
	Repository[model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{newRepository[model.User](db, "id asc", nil)}
}

type TeamRepository struct {
	Repository[model.Team]
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{newRepository[model.Team](db, "id asc", func(q *gorm.DB) *gorm.DB {
		return q.Preload("Users", func(q *gorm.DB) *gorm.DB { return q.Order("users.id asc") })
	})}
}
