package services

import (
	"context"
	"errors"

	"github.com/vincenttwizere/Refuture-sub002/internal/common"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/settings"
)

type SettingsService struct {
	settings settings.Repository
}

func NewSettingsService(repo settings.Repository) *SettingsService {
	return &SettingsService{settings: repo}
}

// Get returns the user's settings, falling back to the documented defaults
// when the user never saved any.
func (s *SettingsService) Get(ctx context.Context, userID string) (*models.Settings, error) {
	stored, err := s.settings.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			defaults := models.DefaultSettings(userID)
			return &defaults, nil
		}
		return nil, err
	}
	return stored, nil
}

func (s *SettingsService) Update(ctx context.Context, in models.Settings) (*models.Settings, error) {
	if err := s.settings.Upsert(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}
