package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/services"
)

type createProfileRequest struct {
	Headline    string   `json:"headline" validate:"required"`
	Bio         string   `json:"bio"`
	Skills      []string `json:"skills"`
	Education   string   `json:"education"`
	Languages   []string `json:"languages"`
	Location    string   `json:"location"`
	DocumentKey string   `json:"documentKey"`
}

func (s *Server) handleCreateProfile(c echo.Context) error {
	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "headline is required")
	}

	profile, err := s.profiles.Create(c.Request().Context(), claimsOf(c).UserID, services.ProfileInput{
		Headline:    req.Headline,
		Bio:         req.Bio,
		Skills:      req.Skills,
		Education:   req.Education,
		Languages:   req.Languages,
		Location:    req.Location,
		DocumentKey: req.DocumentKey,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"profile": toProfileDTO(profile)})
}

func (s *Server) handleProfileByUser(c echo.Context) error {
	profile, err := s.profiles.GetByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": toProfileDTO(profile)})
}

func (s *Server) handleProfileByID(c echo.Context) error {
	profile, err := s.profiles.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": toProfileDTO(profile)})
}

func (s *Server) handleProfileDocument(c echo.Context) error {
	url, err := s.profiles.DocumentURL(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"url": url})
}

type presignDocumentRequest struct {
	Filename string `json:"filename" validate:"required"`
}

func (s *Server) handlePresignDocument(c echo.Context) error {
	var req presignDocumentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "filename is required")
	}

	key, url, err := s.profiles.PresignDocument(c.Request().Context(), claimsOf(c).UserID, req.Filename)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"key": key, "url": url})
}
