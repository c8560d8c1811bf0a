// Package httpapi exposes the Refuture backend over REST. Routing and
// request/response shapes live here; business rules live in the services
// package.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/vincenttwizere/Refuture-sub002/internal/common"
	"github.com/vincenttwizere/Refuture-sub002/internal/logging"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/services"
)

// Server wires the Echo engine to the service layer.
type Server struct {
	echo *echo.Echo
	log  logging.Logger
	addr string

	auth          *services.AuthService
	profiles      *services.ProfileService
	opportunities *services.OpportunityService
	users         *services.UserService
	settings      *services.SettingsService
	contact       *services.ContactService
}

// requestValidator adapts go-playground/validator to echo.Validator.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(
	addr string,
	log logging.Logger,
	authSvc *services.AuthService,
	profileSvc *services.ProfileService,
	opportunitySvc *services.OpportunityService,
	userSvc *services.UserService,
	settingsSvc *services.SettingsService,
	contactSvc *services.ContactService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI: true, LogStatus: true, LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info(c.Request().Context(), "request",
				"method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	e.Validator = &requestValidator{validate: validator.New()}

	s := &Server{
		echo:          e,
		log:           log,
		addr:          addr,
		auth:          authSvc,
		profiles:      profileSvc,
		opportunities: opportunitySvc,
		users:         userSvc,
		settings:      settingsSvc,
		contact:       contactSvc,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")

	// Public routes.
	api.POST("/auth/signup", s.handleSignup)
	api.POST("/auth/login", s.handleLogin)
	api.POST("/contact", s.handleContact)
	api.GET("/profiles/user/:userId", s.handleProfileByUser)

	// Any authenticated role.
	secured := api.Group("", requireAuth(s.auth))
	secured.GET("/auth/me", s.handleMe)
	secured.POST("/auth/logout", s.handleLogout)
	secured.GET("/profiles/:id", s.handleProfileByID)
	secured.GET("/profiles/:id/document", s.handleProfileDocument)
	secured.GET("/opportunities", s.handleOpportunities)
	secured.GET("/opportunities/:id", s.handleOpportunity)
	secured.GET("/settings", s.handleGetSettings)
	secured.PUT("/settings", s.handlePutSettings)

	// Role-restricted routes.
	refugee := secured.Group("", requireRole(common.RoleRefugee))
	refugee.POST("/profiles", s.handleCreateProfile)
	refugee.POST("/profiles/document", s.handlePresignDocument)

	provider := secured.Group("", requireRole(common.RoleProvider))
	provider.POST("/opportunities", s.handleCreateOpportunity)

	admin := secured.Group("", requireRole(common.RoleAdmin))
	admin.GET("/users", s.handleListUsers)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(s.addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}
