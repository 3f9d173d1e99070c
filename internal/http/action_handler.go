package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agilefant.com/agilefant/internal/actions"
	dto "agilefant.com/agilefant/internal/data_models"
	"agilefant.com/agilefant/internal/http/validators"
	model "agilefant.com/agilefant/internal/models"
)

func resultStatus(result actions.Result, created bool) int {
	switch result {
	case actions.ResultSuccess:
		if created {
			return http.StatusCreated
		}
		return http.StatusOK
	case actions.ResultInput:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusNotFound
	}
}

func (h *Handler) newWorkTypeAction(c echo.Context) *actions.WorkTypeAction {
	printer := h.localizer.Printer(c.Request().Header.Get("Accept-Language"))
	return actions.NewWorkTypeAction(h.workTypes, h.activityTypes, printer)
}

func (h *Handler) respondWorkType(c echo.Context, a *actions.WorkTypeAction, result actions.Result, created bool) error {
	resp := dto.ActionResponse{
		Result:   string(result),
		Errors:   a.ActionErrors(),
		StoredID: a.StoredWorkTypeID,
	}
	if result == actions.ResultSuccess {
		resp.Entity = a.WorkType
	}
	return c.JSON(resultStatus(result, created), resp)
}

func (h *Handler) CreateWorkType(c echo.Context) error {
	activityTypeID, err := validators.ParseID(c, "activityTypeId")
	if err != nil {
		return err
	}
	a := h.newWorkTypeAction(c)
	a.ActivityTypeID = activityTypeID
	return h.respondWorkType(c, a, a.Create(c.Request().Context()), false)
}

func (h *Handler) EditWorkType(c echo.Context) error {
	activityTypeID, err := validators.ParseID(c, "activityTypeId")
	if err != nil {
		return err
	}
	id, err := validators.ParseID(c, "id")
	if err != nil {
		return err
	}
	a := h.newWorkTypeAction(c)
	a.ActivityTypeID = activityTypeID
	a.WorkTypeID = id
	return h.respondWorkType(c, a, a.Edit(c.Request().Context()), false)
}

// StoreWorkType handles both POST (new) and PUT (existing) submissions.
func (h *Handler) StoreWorkType(c echo.Context) error {
	activityTypeID, err := validators.ParseID(c, "activityTypeId")
	if err != nil {
		return err
	}
	var workTypeID uint
	if c.Param("id") != "" {
		if workTypeID, err = validators.ParseID(c, "id"); err != nil {
			return err
		}
	}

	var req *dto.WorkTypeRequestData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	a := h.newWorkTypeAction(c)
	a.ActivityTypeID = activityTypeID
	a.WorkTypeID = workTypeID
	if req != nil {
		a.WorkType = &model.WorkType{Name: req.Name, Description: req.Description}
	}
	return h.respondWorkType(c, a, a.Store(c.Request().Context()), workTypeID == 0)
}

func (h *Handler) DeleteWorkType(c echo.Context) error {
	id, err := validators.ParseID(c, "id")
	if err != nil {
		return err
	}
	a := h.newWorkTypeAction(c)
	a.WorkTypeID = id
	return h.respondWorkType(c, a, a.Delete(c.Request().Context()), false)
}

func (h *Handler) newActivityTypeAction(c echo.Context) *actions.ActivityTypeAction {
	printer := h.localizer.Printer(c.Request().Header.Get("Accept-Language"))
	return actions.NewActivityTypeAction(h.activityTypes, printer)
}

func (h *Handler) respondActivityType(c echo.Context, a *actions.ActivityTypeAction, result actions.Result, created bool) error {
	resp := dto.ActionResponse{
		Result:   string(result),
		Errors:   a.ActionErrors(),
		StoredID: a.StoredActivityTypeID,
	}
	if result == actions.ResultSuccess {
		resp.Entity = a.ActivityType
	}
	return c.JSON(resultStatus(result, created), resp)
}

func (h *Handler) CreateActivityType(c echo.Context) error {
	a := h.newActivityTypeAction(c)
	return h.respondActivityType(c, a, a.Create(c.Request().Context()), false)
}

func (h *Handler) EditActivityType(c echo.Context) error {
	id, err := validators.ParseID(c, "activityTypeId")
	if err != nil {
		return err
	}
	a := h.newActivityTypeAction(c)
	a.ActivityTypeID = id
	return h.respondActivityType(c, a, a.Edit(c.Request().Context()), false)
}

func (h *Handler) StoreActivityType(c echo.Context) error {
	var id uint
	var err error
	if c.Param("activityTypeId") != "" {
		if id, err = validators.ParseID(c, "activityTypeId"); err != nil {
			return err
		}
	}

	var req *dto.ActivityTypeRequestData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	a := h.newActivityTypeAction(c)
	a.ActivityTypeID = id
	if req != nil {
		a.ActivityType = &model.ActivityType{Name: req.Name, Description: req.Description}
	}
	return h.respondActivityType(c, a, a.Store(c.Request().Context()), id == 0)
}

func (h *Handler) DeleteActivityType(c echo.Context) error {
	id, err := validators.ParseID(c, "activityTypeId")
	if err != nil {
		return err
	}
	a := h.newActivityTypeAction(c)
	a.ActivityTypeID = id
	return h.respondActivityType(c, a, a.Delete(c.Request().Context()), false)
}
