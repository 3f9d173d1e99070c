package cmd

import (
	"gorm.io/gorm"

	"agilefant.com/agilefant/internal/cache"
	repository "agilefant.com/agilefant/internal/repositories"
	"agilefant.com/agilefant/internal/services"
)

// app is the wired dependency graph shared by the commands.
type app struct {
	iterations    *repository.IterationRepository
	stories       *repository.StoryRepository
	workTypes     *repository.WorkTypeRepository
	activityTypes *repository.ActivityTypeRepository

	projects     *services.ProjectService
	storyService *services.StoryService
	taskService  *services.TaskService
	hourEntries  *services.HourEntryService
	transfer     *services.TransferObjectService
	autocomplete *services.AutocompleteService
}

func newApp(db *gorm.DB, autocompleteCache cache.AutocompleteCache) *app {
	projectRepo := repository.NewProjectRepository(db)
	hourEntryRepo := repository.NewHourEntryRepository(db)

	projects := services.NewProjectService(projectRepo)
	storyService := services.NewStoryService(projects, projects)
	hourEntries := services.NewHourEntryService(hourEntryRepo)
	userRepo := repository.NewUserRepository(db)
	transfer := services.NewTransferObjectService(
		projects,
		projects,
		storyService,
		hourEntries,
		hourEntryRepo,
		userRepo,
		repository.NewTeamRepository(db),
	)

	taskService := services.NewTaskService(
		repository.NewTaskRepository(db),
		userRepo,
		repository.NewPracticeTemplateRepository(db),
	)

	return &app{
		iterations:    repository.NewIterationRepository(db),
		stories:       repository.NewStoryRepository(db),
		workTypes:     repository.NewWorkTypeRepository(db),
		activityTypes: repository.NewActivityTypeRepository(db),
		projects:      projects,
		storyService:  storyService,
		taskService:   taskService,
		hourEntries:   hourEntries,
		transfer:      transfer,
		autocomplete:  services.NewAutocompleteService(transfer, autocompleteCache),
	}
}
