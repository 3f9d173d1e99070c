package validators

import (
	"github.com/labstack/echo/v4"

	apperrors "agilefant.com/agilefant/internal/errors"
)

// ParseID reads a positive integer path parameter.
func ParseID(c echo.Context, name string) (uint, error) {
	var id uint
	if err := echo.PathParamsBinder(c).MustUint(name, &id).BindError(); err != nil || id == 0 {
		return 0, echo.NewHTTPError(apperrors.ErrInvalidID.StatusCode, echo.Map{
			"code":    apperrors.ErrInvalidID.Code,
			"message": name + " must be a positive integer",
		})
	}
	return id, nil
}
