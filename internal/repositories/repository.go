package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

// Repository is the gorm-backed entity store for one model type.
type Repository[T any] struct {
	db    *gorm.DB
	order string
	load  func(*gorm.DB) *gorm.DB
}

func newRepository[T any](db *gorm.DB, order string, load func(*gorm.DB) *gorm.DB) Repository[T] {
	if load == nil {
		load = func(q *gorm.DB) *gorm.DB { return q }
	}
	return Repository[T]{db: db, order: order, load: load}
}

func (r *Repository[T]) query(ctx context.Context) *gorm.DB {
	return r.load(r.db.WithContext(ctx))
}

func byCreated(q *gorm.DB) *gorm.DB {
	return q.Order("created asc")
}

// Get loads one entity by id with the repository's preloads applied.
func (r *Repository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.query(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Store inserts the entity when its primary key is zero and updates it
// otherwise. Associations are left untouched.
func (r *Repository[T]) Store(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
}

func (r *Repository[T]) Remove(ctx context.Context, entity *T) error {
	res := r.db.WithContext(ctx).Delete(entity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository[T]) RetrieveAll(ctx context.Context) ([]T, error) {
	var entities []T
	err := r.query(ctx).Order(r.order).Find(&entities).Error
	return entities, err
}
