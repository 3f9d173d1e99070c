package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agilefant.com/agilefant/internal/constants"
	dto "agilefant.com/agilefant/internal/data_models"
	"agilefant.com/agilefant/internal/http/validators"
	model "agilefant.com/agilefant/internal/models"
)

// loadTask resolves the :id path parameter to a task.
func (h *Handler) loadTask(c echo.Context) (*model.Task, error) {
	id, err := validators.ParseID(c, "id")
	if err != nil {
		return nil, err
	}
	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return nil, httpError(err, "task")
	}
	return task, nil
}

func (h *Handler) respondTask(c echo.Context, task *model.Task, status int) error {
	to, err := h.transfer.ConstructTaskTO(c.Request().Context(), task)
	if err != nil {
		return httpError(err, "task")
	}
	return c.JSON(status, to)
}

func (h *Handler) LogTaskEffort(c echo.Context) error {
	task, err := h.loadTask(c)
	if err != nil {
		return err
	}
	var req dto.LogEffortRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLogEffortRequest(&req); err != nil {
		return err
	}

	if err := h.taskService.LogPerformedWork(c.Request().Context(), task, req.UserID, req.Minutes); err != nil {
		return httpError(err, "task")
	}
	return h.respondTask(c, task, http.StatusCreated)
}

func (h *Handler) ChangeTaskStatus(c echo.Context) error {
	task, err := h.loadTask(c)
	if err != nil {
		return err
	}
	var req dto.ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateChangeStatusRequest(&req); err != nil {
		return err
	}

	if err := h.taskService.ChangeStatus(c.Request().Context(), task, constants.TaskStatus(req.Status), req.UserID); err != nil {
		return httpError(err, "task")
	}
	return h.respondTask(c, task, http.StatusOK)
}

// LogTaskHours books an hour entry against the task and answers with the
// refreshed TaskTO.
func (h *Handler) LogTaskHours(c echo.Context) error {
	task, err := h.loadTask(c)
	if err != nil {
		return err
	}
	var req dto.HourEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateHourEntryRequest(&req); err != nil {
		return err
	}

	if _, err := h.hourEntries.LogTaskEffort(c.Request().Context(), task, req.UserID, req.Minutes, req.Description); err != nil {
		return httpError(err, "task")
	}
	return h.respondTask(c, task, http.StatusCreated)
}

func (h *Handler) LogStoryHours(c echo.Context) error {
	id, err := validators.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.HourEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateHourEntryRequest(&req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	story, err := h.stories.Get(ctx, id)
	if err != nil {
		return httpError(err, "story")
	}
	if _, err := h.hourEntries.LogStoryEffort(ctx, story, req.UserID, req.Minutes, req.Description); err != nil {
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
	return c.JSON(http.StatusCreated, to)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := validators.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return httpError(err, "task")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AddTaskWatcher(c echo.Context) error {
	task, err := h.loadTask(c)
	if err != nil {
		return err
	}
	userID, err := validators.ParseID(c, "userId")
	if err != nil {
		return err
	}
	if err := h.taskService.AddWatcher(c.Request().Context(), task, userID); err != nil {
		return httpError(err, "watcher")
	}
	return c.JSON(http.StatusOK, echo.Map{"watchers": task.Watchers})
}

func (h *Handler) RemoveTaskWatcher(c echo.Context) error {
	task, err := h.loadTask(c)
	if err != nil {
		return err
	}
	userID, err := validators.ParseID(c, "userId")
	if err != nil {
		return err
	}
	if err := h.taskService.RemoveWatcher(c.Request().Context(), task, userID); err != nil {
		return httpError(err, "watcher")
	}
	return c.JSON(http.StatusOK, echo.Map{"watchers": task.Watchers})
}

// ApplyTaskTemplate replaces the task's practices with the template's.
func (h *Handler) ApplyTaskTemplate(c echo.Context) error {
	task, err := h.loadTask(c)
	if err != nil {
		return err
	}
	templateID, err := validators.ParseID(c, "templateId")
	if err != nil {
		return err
	}
	if err := h.taskService.ApplyTemplate(c.Request().Context(), task, templateID); err != nil {
		return httpError(err, "template")
	}
	return c.JSON(http.StatusOK, echo.Map{"practices": task.Practices})
}
