package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
)

type updateSettingsRequest struct {
	Theme         string           `json:"theme" validate:"required,oneof=light dark"`
	Language      string           `json:"language" validate:"required"`
	Notifications notificationsDTO `json:"notifications"`
}

func (s *Server) handleGetSettings(c echo.Context) error {
	settings, err := s.settings.Get(c.Request().Context(), claimsOf(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"settings": toSettingsDTO(settings)})
}

func (s *Server) handlePutSettings(c echo.Context) error {
	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "theme must be light or dark; language is required")
	}

	settings, err := s.settings.Update(c.Request().Context(), models.Settings{
		UserID:   claimsOf(c).UserID,
		Theme:    req.Theme,
		Language: req.Language,
		Notifications: models.Notifications{
			Email: req.Notifications.Email,
			Push:  req.Notifications.Push,
			SMS:   req.Notifications.SMS,
		},
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"settings": toSettingsDTO(settings)})
}
