package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/Akshat190/qr-main/internal/entity"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidOrder),
		errors.Is(err, entity.ErrInvalidMenuItem),
		errors.Is(err, entity.ErrInvalidUser):
		return 400
	case errors.Is(err, entity.ErrInvalidCredentials):
		return 401
	case errors.Is(err, entity.ErrOrderNotFound),
		errors.Is(err, entity.ErrMenuItemNotFound):
		return 404
	case errors.Is(err, entity.ErrInvalidTransition),
		errors.Is(err, entity.ErrUserExists):
		return 409
	default:
		return 500
	}
}

func jsonError(c echo.Context, err error) error {
	return c.JSON(errorStatus(err), map[string]string{"error": err.Error()})
}
