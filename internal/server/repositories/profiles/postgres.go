package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vincenttwizere/Refuture-sub002/internal/common"
	"github.com/vincenttwizere/Refuture-sub002/internal/dbx"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Skills and languages are JSONB columns; they travel as encoded []byte.
func encodeList(items []string) ([]byte, error) {
	if items == nil {
		items = []string{}
	}
	return json.Marshal(items)
}

func (r *PostgresRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	skills, err := encodeList(profile.Skills)
	if err != nil {
		return nil, err
	}
	languages, err := encodeList(profile.Languages)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO profiles (id, user_id, headline, bio, skills, education, languages, location, document_key)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING created_at`

	err = r.db.QueryRowContext(ctx, query,
		profile.ID, profile.UserID, profile.Headline, profile.Bio, skills,
		profile.Education, languages, profile.Location, profile.DocumentKey).
		Scan(&profile.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}

const profileColumns = `id, user_id, headline, bio, skills, education, languages, location, document_key, created_at`

func scanProfile(row interface{ Scan(dest ...any) error }) (*models.Profile, error) {
	profile := &models.Profile{}
	var skills, languages []byte

	err := row.Scan(&profile.ID, &profile.UserID, &profile.Headline, &profile.Bio, &skills,
		&profile.Education, &languages, &profile.Location, &profile.DocumentKey, &profile.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(skills, &profile.Skills); err != nil {
		return nil, fmt.Errorf("decoding skills: %w", err)
	}
	if err := json.Unmarshal(languages, &profile.Languages); err != nil {
		return nil, fmt.Errorf("decoding languages: %w", err)
	}
	return profile, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return profile, nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return profile, nil
}
