package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (s *Server) handleContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "name, email, subject and message are required")
	}

	err := s.contact.Submit(c.Request().Context(), models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleListUsers(c echo.Context) error {
	list, err := s.users.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}

	dtos := make([]userDTO, 0, len(list))
	for i := range list {
		dtos = append(dtos, toUserDTO(&list[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"users": dtos})
}
