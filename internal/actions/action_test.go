package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/message"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"agilefant.com/agilefant/internal/i18n"
	model "agilefant.com/agilefant/internal/models"
	repository "agilefant.com/agilefant/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func testPrinter(t *testing.T, acceptLanguage string) *message.Printer {
	t.Helper()
	localizer, err := i18n.New("en-US")
	require.NoError(t, err)
	return localizer.Printer(acceptLanguage)
}

type fixtures struct {
	db            *gorm.DB
	workTypes     *repository.WorkTypeRepository
	activityTypes *repository.ActivityTypeRepository
	development   model.ActivityType
}

func setupFixtures(t *testing.T) fixtures {
	t.Helper()
	db := setupTestDB(t)
	f := fixtures{
		db:            db,
		workTypes:     repository.NewWorkTypeRepository(db),
		activityTypes: repository.NewActivityTypeRepository(db),
		development:   model.ActivityType{Name: "Development"},
	}
	require.NoError(t, db.Create(&f.development).Error)
	return f
}

// brokenStore fails every call with a non-lookup error.
type brokenStore[T any] struct{}

var errBroken = errors.New("disk on fire")

func (brokenStore[T]) Get(context.Context, uint) (*T, error) { return nil, errBroken }
func (brokenStore[T]) Store(context.Context, *T) error        { return errBroken }
func (brokenStore[T]) Remove(context.Context, *T) error       { return errBroken }

var _ CRUDAction = (*WorkTypeAction)(nil)
var _ CRUDAction = (*ActivityTypeAction)(nil)
