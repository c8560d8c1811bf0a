// Package services contains the server-side business logic behind the
// Refuture REST API.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vincenttwizere/Refuture-sub002/internal/common"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/auth"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/config"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/users"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/sessions"
)

// AuthResult is what a successful login or signup produces: a registered
// bearer token, the user record, and the view the client should land on.
type AuthResult struct {
	Token      string
	User       *models.User
	RedirectTo string
}

// SignupParams carries registration data. Validation beyond field presence
// happens here, not in the handler.
type SignupParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// AuthService handles signup, login, token verification and logout.
type AuthService struct {
	users    users.Repository
	sessions sessions.Registry

	secret   []byte
	validity time.Duration
}

func NewAuthService(userRepo users.Repository, registry sessions.Registry, cfg *config.Config) *AuthService {
	return &AuthService{
		users:    userRepo,
		sessions: registry,
		secret:   []byte(cfg.SecretKey),
		validity: cfg.TokenValidity,
	}
}

// Signup creates an account and signs the new user in. Admin accounts
// cannot be self-registered.
func (s *AuthService) Signup(ctx context.Context, p SignupParams) (*AuthResult, error) {
	if !common.ValidRole(p.Role) || p.Role == common.RoleAdmin {
		return nil, common.ErrInvalidRole
	}

	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(p.Email)),
		PasswordHash: hash,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Role:         p.Role,
	}
	user, err = s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.issue(ctx, user)
}

// Login verifies credentials and mints a registered token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, common.ErrAccountInactive
	}

	if err := s.users.SetLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}
	now := time.Now()
	user.LastLogin = &now

	return s.issue(ctx, user)
}

// Authenticate verifies a bearer token and checks that its session has not
// been revoked. Used by the HTTP auth middleware on every protected call.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := auth.ParseToken(token, s.secret)
	if err != nil {
		return nil, err
	}

	active, err := s.sessions.IsActive(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}
	if !active {
		return nil, common.ErrSessionRevoked
	}
	return claims, nil
}

// Me returns the current user record for a verified token.
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, common.ErrAccountInactive
	}
	return user, nil
}

// Logout revokes the token's server-side session.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	return s.sessions.Revoke(ctx, jti)
}

func (s *AuthService) issue(ctx context.Context, user *models.User) (*AuthResult, error) {
	token, jti, err := auth.GenerateToken(user.ID, user.Role, s.secret, s.validity)
	if err != nil {
		return nil, common.ErrInternal
	}
	if err := s.sessions.Register(ctx, jti, user.ID, s.validity); err != nil {
		return nil, fmt.Errorf("registering session: %w", err)
	}

	return &AuthResult{Token: token, User: user, RedirectTo: RedirectFor(user)}, nil
}

// RedirectFor picks the landing view for a freshly authenticated user:
// role dashboard, except refugees without a profile, who go to profile
// creation first.
func RedirectFor(user *models.User) string {
	switch user.Role {
	case common.RoleProvider:
		return "/provider-dashboard"
	case common.RoleAdmin:
		return "/admin-dashboard"
	default:
		if !user.HasProfile {
			return "/create-profile"
		}
		return "/refugee-dashboard"
	}
}
