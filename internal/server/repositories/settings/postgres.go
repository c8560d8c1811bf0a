package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vincenttwizere/Refuture-sub002/internal/common"
	"github.com/vincenttwizere/Refuture-sub002/internal/dbx"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Settings, error) {
	query := `SELECT user_id, theme, language, notifications FROM settings WHERE user_id = $1`

	s := &models.Settings{}
	var notifications []byte
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&s.UserID, &s.Theme, &s.Language, &notifications)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(notifications, &s.Notifications); err != nil {
		return nil, fmt.Errorf("decoding notifications: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, s *models.Settings) error {
	notifications, err := json.Marshal(s.Notifications)
	if err != nil {
		return err
	}

	query := `INSERT INTO settings (user_id, theme, language, notifications)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (user_id) DO UPDATE
	          SET theme = EXCLUDED.theme, language = EXCLUDED.language, notifications = EXCLUDED.notifications`

	if _, err := r.db.ExecContext(ctx, query, s.UserID, s.Theme, s.Language, notifications); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
