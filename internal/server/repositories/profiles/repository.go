// Package profiles stores talent profiles.
package profiles

import (
	"context"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
}
