// Package settings implements the user-preferences service. Preferences
// live server-side; the client keeps a JSON cache in local storage and
// falls back to documented defaults when unauthenticated or when the
// backend cannot be reached. Fetch failures never surface as errors.
package settings

import (
	"context"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/api"
	"github.com/vincenttwizere/Refuture-sub002/internal/client/models"
	"github.com/vincenttwizere/Refuture-sub002/internal/logging"
)

// Cache is the local settings cache, backed by the client's BoltDB store.
type Cache interface {
	CachedSettings() (*models.Settings, error)
	CacheSettings(s models.Settings) error
}

// Authenticated reports the current session state; satisfied by the
// session store.
type Authenticated interface {
	IsAuthenticated() bool
}

type Service struct {
	api   api.Client
	cache Cache
	sess  Authenticated
	log   logging.Logger
}

func NewService(client api.Client, cache Cache, sess Authenticated, log logging.Logger) *Service {
	return &Service{api: client, cache: cache, sess: sess, log: log}
}

// Get returns the effective settings. Unauthenticated sessions get the
// defaults; backend failures fall back to the cached copy, then defaults.
func (s *Service) Get(ctx context.Context) models.Settings {
	if !s.sess.IsAuthenticated() {
		return models.DefaultSettings()
	}

	remote, err := s.api.Settings(ctx)
	if err != nil || remote == nil {
		if err != nil {
			s.log.Debug(ctx, "settings fetch failed, using cache", "err", err)
		}
		if cached, cacheErr := s.cache.CachedSettings(); cacheErr == nil && cached != nil {
			return *cached
		}
		return models.DefaultSettings()
	}

	if err := s.cache.CacheSettings(*remote); err != nil {
		s.log.Warn(ctx, "caching settings failed", "err", err)
	}
	return *remote
}

// Update persists new settings server-side and refreshes the local cache.
// Unlike Get, failures here surface to the caller so a form can report them.
func (s *Service) Update(ctx context.Context, in models.Settings) (models.Settings, error) {
	updated, err := s.api.UpdateSettings(ctx, in)
	if err != nil {
		return models.Settings{}, err
	}
	if err := s.cache.CacheSettings(*updated); err != nil {
		s.log.Warn(ctx, "caching settings failed", "err", err)
	}
	return *updated, nil
}
