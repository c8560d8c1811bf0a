package contact

import (
	"context"
	"fmt"

	"github.com/vincenttwizere/Refuture-sub002/internal/dbx"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	query := `INSERT INTO contact_messages (id, name, email, subject, message)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message).
		Scan(&msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
