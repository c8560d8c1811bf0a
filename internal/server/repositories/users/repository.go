// Package users stores account records.
package users

import (
	"context"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	SetHasProfile(ctx context.Context, id string, hasProfile bool) error
	SetLastLogin(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.User, error)
}
