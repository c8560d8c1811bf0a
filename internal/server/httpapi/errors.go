package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vincenttwizere/Refuture-sub002/internal/common"
)

// errorResponse is the error body of every endpoint; the client surfaces
// Message verbatim.
type errorResponse struct {
	Message string `json:"message"`
}

// fail maps service errors onto HTTP statuses. Unknown errors collapse to
// a generic 500 so internals never leak into user-visible messages.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrAccountInactive),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrSessionRevoked),
		errors.Is(err, common.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorResponse{Message: err.Error()})
	case errors.Is(err, common.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Message: err.Error()})
	case errors.Is(err, common.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, common.ErrAlreadyExists):
		return c.JSON(http.StatusConflict, errorResponse{Message: "an account with this email already exists"})
	case errors.Is(err, common.ErrInvalidRole):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Message: message})
}
