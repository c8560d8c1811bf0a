package opportunities

import (
	"context"
	"database/sql"
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

const opportunityColumns = `id, provider_id, title, organization, category, description, location, deadline, is_active, created_at`

func scanOpportunity(row interface{ Scan(dest ...any) error }) (*models.Opportunity, error) {
	o := &models.Opportunity{}
	err := row.Scan(&o.ID, &o.ProviderID, &o.Title, &o.Organization, &o.Category,
		&o.Description, &o.Location, &o.Deadline, &o.IsActive, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) Create(ctx context.Context, o *models.Opportunity) (*models.Opportunity, error) {
	query := `INSERT INTO opportunities (id, provider_id, title, organization, category, description, location, deadline)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING is_active, created_at`

	err := r.db.QueryRowContext(ctx, query,
		o.ID, o.ProviderID, o.Title, o.Organization, o.Category, o.Description, o.Location, o.Deadline).
		Scan(&o.IsActive, &o.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return o, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE id = $1`

	o, err := scanOpportunity(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return o, nil
}

func (r *PostgresRepository) ListActive(ctx context.Context) ([]models.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE is_active ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var list []models.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, *o)
	}
	return list, rows.Err()
}
