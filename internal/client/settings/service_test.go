package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/api"
	"github.com/vincenttwizere/Refuture-sub002/internal/client/models"
	"github.com/vincenttwizere/Refuture-sub002/internal/logging"
)

type fakeCache struct {
	settings *models.Settings
	saveErr  error
}

func (f *fakeCache) CachedSettings() (*models.Settings, error) {
	return f.settings, nil
}

func (f *fakeCache) CacheSettings(s models.Settings) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.settings = &s
	return nil
}

type fakeSession bool

func (f fakeSession) IsAuthenticated() bool { return bool(f) }

type settingsAPI struct {
	api.Client
	get    func(ctx context.Context) (*models.Settings, error)
	update func(ctx context.Context, s models.Settings) (*models.Settings, error)
}

func (f *settingsAPI) Settings(ctx context.Context) (*models.Settings, error) {
	return f.get(ctx)
}

func (f *settingsAPI) UpdateSettings(ctx context.Context, s models.Settings) (*models.Settings, error) {
	return f.update(ctx, s)
}

func dark() models.Settings {
	return models.Settings{Theme: "dark", Language: "en", Notifications: models.Notifications{Email: true, Push: true}}
}

func TestGetUnauthenticatedReturnsDefaults(t *testing.T) {
	svc := NewService(&settingsAPI{}, &fakeCache{settings: ptr(dark())}, fakeSession(false), logging.NewDiscard())

	got := svc.Get(context.Background())
	assert.Equal(t, models.DefaultSettings(), got)
}

func TestGetFetchesAndCaches(t *testing.T) {
	cache := &fakeCache{}
	client := &settingsAPI{get: func(ctx context.Context) (*models.Settings, error) {
		s := dark()
		return &s, nil
	}}
	svc := NewService(client, cache, fakeSession(true), logging.NewDiscard())

	got := svc.Get(context.Background())
	assert.Equal(t, dark(), got)
	require.NotNil(t, cache.settings)
	assert.Equal(t, dark(), *cache.settings)
}

func TestGetFallsBackToCacheOnFetchError(t *testing.T) {
	cache := &fakeCache{settings: ptr(dark())}
	client := &settingsAPI{get: func(ctx context.Context) (*models.Settings, error) {
		return nil, api.ErrUnavailable
	}}
	svc := NewService(client, cache, fakeSession(true), logging.NewDiscard())

	got := svc.Get(context.Background())
	assert.Equal(t, dark(), got)
}

func TestGetFallsBackToDefaultsWithoutCache(t *testing.T) {
	client := &settingsAPI{get: func(ctx context.Context) (*models.Settings, error) {
		return nil, api.ErrUnavailable
	}}
	svc := NewService(client, &fakeCache{}, fakeSession(true), logging.NewDiscard())

	got := svc.Get(context.Background())
	assert.Equal(t, models.DefaultSettings(), got)
}

func TestUpdateSurfacesErrors(t *testing.T) {
	client := &settingsAPI{update: func(ctx context.Context, s models.Settings) (*models.Settings, error) {
		return nil, errors.New("boom")
	}}
	svc := NewService(client, &fakeCache{}, fakeSession(true), logging.NewDiscard())

	_, err := svc.Update(context.Background(), dark())
	assert.Error(t, err)
}

func TestUpdateRefreshesCache(t *testing.T) {
	cache := &fakeCache{}
	client := &settingsAPI{update: func(ctx context.Context, s models.Settings) (*models.Settings, error) {
		return &s, nil
	}}
	svc := NewService(client, cache, fakeSession(true), logging.NewDiscard())

	got, err := svc.Update(context.Background(), dark())
	require.NoError(t, err)
	assert.Equal(t, dark(), got)
	require.NotNil(t, cache.settings)
	assert.Equal(t, dark(), *cache.settings)
}

func ptr(s models.Settings) *models.Settings { return &s }
