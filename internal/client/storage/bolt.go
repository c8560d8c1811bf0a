// Package storage persists the client's durable local state in a BoltDB
// file: the bearer token and the cached settings object. The session store
// is the only writer of the token key; the settings service is the only
// writer of the settings key.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/models"
)

var (
	bucketName  = []byte("refuture")
	keyToken    = []byte("token")
	keySettings = []byte("settings")
)

// Store wraps a BoltDB file holding the client's persisted state.
type Store struct {
	db *bolt.DB
}

// Open initializes the BoltDB file at path and ensures the bucket exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Token returns the persisted bearer token, or "" when none is stored.
func (s *Store) Token() (string, error) {
	var token string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get(keyToken); v != nil {
			token = string(v)
		}
		return nil
	})
	return token, err
}

// SaveToken stores the bearer token durably.
func (s *Store) SaveToken(token string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(keyToken, []byte(token))
	})
}

// DeleteToken removes the persisted token. Missing keys are not an error.
func (s *Store) DeleteToken() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete(keyToken)
	})
}

// CachedSettings returns the locally cached settings object, or nil when
// nothing has been cached yet.
func (s *Store) CachedSettings() (*models.Settings, error) {
	var raw []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get(keySettings); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var settings models.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// CacheSettings stores the settings object locally as JSON.
func (s *Store) CacheSettings(settings models.Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(keySettings, payload)
	})
}
