// Package settings stores per-user preferences.
package settings

import (
	"context"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
)

type Repository interface {
	// Get returns the user's settings row; common.ErrNotFound when the user
	// never saved any.
	Get(ctx context.Context, userID string) (*models.Settings, error)

	// Upsert inserts or replaces the user's settings.
	Upsert(ctx context.Context, s *models.Settings) error
}
