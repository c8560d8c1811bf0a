package services

import (
	"context"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/users"
)

// UserService serves the admin dashboard's user listing.
type UserService struct {
	users users.Repository
}

func NewUserService(repo users.Repository) *UserService {
	return &UserService{users: repo}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
