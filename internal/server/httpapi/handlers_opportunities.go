package httpapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/services"
)

type createOpportunityRequest struct {
	Title        string `json:"title" validate:"required"`
	Organization string `json:"organization" validate:"required"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Deadline     string `json:"deadline"`
}

func (s *Server) handleCreateOpportunity(c echo.Context) error {
	var req createOpportunityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "title and organization are required")
	}

	var deadline *time.Time
	if req.Deadline != "" {
		t, err := time.Parse(time.RFC3339, req.Deadline)
		if err != nil {
			return badRequest(c, "deadline must be an RFC 3339 timestamp")
		}
		deadline = &t
	}

	opportunity, err := s.opportunities.Create(c.Request().Context(), claimsOf(c).UserID, services.OpportunityInput{
		Title:        req.Title,
		Organization: req.Organization,
		Category:     req.Category,
		Description:  req.Description,
		Location:     req.Location,
		Deadline:     deadline,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"opportunity": toOpportunityDTO(opportunity)})
}

func (s *Server) handleOpportunities(c echo.Context) error {
	list, err := s.opportunities.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}

	dtos := make([]opportunityDTO, 0, len(list))
	for i := range list {
		dtos = append(dtos, toOpportunityDTO(&list[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"opportunities": dtos})
}

func (s *Server) handleOpportunity(c echo.Context) error {
	opportunity, err := s.opportunities.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"opportunity": toOpportunityDTO(opportunity)})
}
