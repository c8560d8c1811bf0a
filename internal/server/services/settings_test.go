package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincenttwizere/Refuture-sub002/internal/common"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
)

type fakeSettingsRepo struct {
	rows map[string]*models.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{rows: map[string]*models.Settings{}}
}

func (f *fakeSettingsRepo) Get(ctx context.Context, userID string) (*models.Settings, error) {
	s, ok := f.rows[userID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return s, nil
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, s *models.Settings) error {
	f.rows[s.UserID] = s
	return nil
}

func TestSettingsGetFallsBackToDefaults(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	got, err := svc.Get(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings("u-1"), *got)
}

func TestSettingsUpdateThenGet(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	in := models.Settings{UserID: "u-1", Theme: "dark", Language: "fr",
		Notifications: models.Notifications{Email: true}}
	updated, err := svc.Update(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, *updated)

	got, err := svc.Get(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Theme)
}
