// Package opportunities stores provider-posted opportunities.
package opportunities

import (
	"context"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, o *models.Opportunity) (*models.Opportunity, error)
	GetByID(ctx context.Context, id string) (*models.Opportunity, error)
	ListActive(ctx context.Context) ([]models.Opportunity, error)
}
