package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "agilefant.com/agilefant/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/iterations/:id/backlog", h.IterationBacklog)
	e.GET("/tasks/:id", h.GetTask)
	e.POST("/tasks/:id/effort", h.LogTaskEffort)
	e.PUT("/tasks/:id/status", h.ChangeTaskStatus)
	e.POST("/tasks/:id/hourentries", h.LogTaskHours)
	e.DELETE("/tasks/:id", h.DeleteTask)
	e.PUT("/tasks/:id/watchers/:userId", h.AddTaskWatcher)
	e.DELETE("/tasks/:id/watchers/:userId", h.RemoveTaskWatcher)
	e.POST("/tasks/:id/templates/:templateId", h.ApplyTaskTemplate)
	e.GET("/stories/:id", h.GetStory)
	e.POST("/stories/:id/hourentries", h.LogStoryHours)

	e.GET("/autocomplete/users", h.UserAutocomplete)
	e.GET("/autocomplete/teams", h.TeamAutocomplete)

	e.GET("/activitytypes/new", h.CreateActivityType)
	e.GET("/activitytypes/:activityTypeId", h.EditActivityType)
	e.POST("/activitytypes", h.StoreActivityType)
	e.PUT("/activitytypes/:activityTypeId", h.StoreActivityType)
	e.DELETE("/activitytypes/:activityTypeId", h.DeleteActivityType)

	e.GET("/activitytypes/:activityTypeId/worktypes/new", h.CreateWorkType)
	e.GET("/activitytypes/:activityTypeId/worktypes/:id", h.EditWorkType)
	e.POST("/activitytypes/:activityTypeId/worktypes", h.StoreWorkType)
	e.PUT("/activitytypes/:activityTypeId/worktypes/:id", h.StoreWorkType)
	e.DELETE("/worktypes/:id", h.DeleteWorkType)
}
