package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agilefant.com/agilefant/internal/constants"
	dto "agilefant.com/agilefant/internal/data_models"
)

func ValidateLogEffortRequest(r *dto.LogEffortRequest) error {
	if r.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}
	if r.Minutes <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "minutes must be positive")
	}
	return nil
}

func ValidateChangeStatusRequest(r *dto.ChangeStatusRequest) error {
	if r.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}
	if !constants.TaskStatus(r.Status).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status "+r.Status)
	}
	return nil
}

func ValidateHourEntryRequest(r *dto.HourEntryRequest) error {
	if r.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}
	if r.Minutes <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "minutes must be positive")
	}
	return nil
}
