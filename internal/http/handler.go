package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "agilefant.com/agilefant/internal/errors"
	"agilefant.com/agilefant/internal/http/validators"
	"agilefant.com/agilefant/internal/i18n"
	repository "agilefant.com/agilefant/internal/repositories"
	"agilefant.com/agilefant/internal/services"
)

type Handler struct {
	transfer      *services.TransferObjectService
	autocomplete  *services.AutocompleteService
	projects      services.ProjectBusiness
	storyBusiness services.StoryBusiness
	taskService   *services.TaskService
	hourEntries   *services.HourEntryService
	iterations    *repository.IterationRepository
	stories       *repository.StoryRepository
	workTypes     *repository.WorkTypeRepository
	activityTypes *repository.ActivityTypeRepository
	localizer     *i18n.Localizer
}

type Deps struct {
	Transfer      *services.TransferObjectService
	Autocomplete  *services.AutocompleteService
	Projects      services.ProjectBusiness
	StoryBusiness services.StoryBusiness
	TaskService   *services.TaskService
	HourEntries   *services.HourEntryService
	Iterations    *repository.IterationRepository
	Stories       *repository.StoryRepository
	WorkTypes     *repository.WorkTypeRepository
	ActivityTypes *repository.ActivityTypeRepository
	Localizer     *i18n.Localizer
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		transfer:      d.Transfer,
		autocomplete:  d.Autocomplete,
		projects:      d.Projects,
		storyBusiness: d.StoryBusiness,
		taskService:   d.TaskService,
		hourEntries:   d.HourEntries,
		iterations:    d.Iterations,
		stories:       d.Stories,
		workTypes:     d.WorkTypes,
		activityTypes: d.ActivityTypes,
		localizer:     d.Localizer,
	}
}

// httpError maps storage and application errors onto echo errors.
func httpError(err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, what+" not found")
	}
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s: %v", what, err)
		return echo.NewHTTPError(status, "failed to load "+what)
	}
	return echo.NewHTTPError(status, echo.Map{
		"code":    apperrors.CodeOf(err),
		"message": err.Error(),
	})
}

func (h *Handler) IterationBacklog(c echo.Context) error {
	id, err := validators.ParseID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	iteration, err := h.iterations.Get(ctx, id)
	if err != nil {
		return httpError(err, "iteration")
	}
	users, err := h.projects.GetAssignedUsers(ctx, iteration.OwningProject())
	if err != nil {
		return httpError(err, "iteration")
	}
	stories, err := h.transfer.ConstructBacklogDataWithUserData(ctx, iteration, users)
	if err != nil {
		return httpError(err, "iteration")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(stories),
		"stories": stories,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := validators.ParseID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	task, err := h.taskService.GetTask(ctx, id)
	if err != nil {
		return httpError(err, "task")
	}
	to, err := h.transfer.ConstructTaskTO(ctx, task)
	if err != nil {
		return httpError(err, "task")
	}
	return c.JSON(http.StatusOK, to)
}

func (h *Handler) GetStory(c echo.Context) error {
	id, err := validators.ParseID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	story, err := h.stories.Get(ctx, id)
	if err != nil {
		return httpError(err, "story")
	}
	users, err := h.storyBusiness.GetStorysProjectResponsibles(ctx, story)
	if err != nil {
		return httpError(err, "story")
	}
	to, err := h.transfer.ConstructStoryTO(ctx, story, users)
	if err != nil {
		return httpError(err, "story")
	}
	return c.JSON(http.StatusOK, to)
}

func (h *Handler) UserAutocomplete(c echo.Context) error {
	nodes, err := h.autocomplete.Users(c.Request().Context())
	if err != nil {
		return httpError(err, "users")
	}
	return c.JSON(http.StatusOK, nodes)
}

func (h *Handler) TeamAutocomplete(c echo.Context) error {
	nodes, err := h.autocomplete.Teams(c.Request().Context())
	if err != nil {
		return httpError(err, "teams")
	}
	return c.JSON(http.StatusOK, nodes)
}
