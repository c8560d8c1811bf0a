package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/services"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Role      string `json:"role" validate:"required"`
}

type authResponse struct {
	Token      string  `json:"token"`
	User       userDTO `json:"user"`
	RedirectTo string  `json:"redirectTo"`
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "email and password are required")
	}

	result, err := s.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, authResponse{
		Token:      result.Token,
		User:       toUserDTO(result.User),
		RedirectTo: result.RedirectTo,
	})
}

func (s *Server) handleSignup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "all signup fields are required; password must be at least 6 characters")
	}

	result, err := s.auth.Signup(c.Request().Context(), services.SignupParams{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, authResponse{
		Token:      result.Token,
		User:       toUserDTO(result.User),
		RedirectTo: result.RedirectTo,
	})
}

func (s *Server) handleMe(c echo.Context) error {
	user, err := s.auth.Me(c.Request().Context(), claimsOf(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": toUserDTO(user)})
}

func (s *Server) handleLogout(c echo.Context) error {
	if err := s.auth.Logout(c.Request().Context(), claimsOf(c).ID); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
