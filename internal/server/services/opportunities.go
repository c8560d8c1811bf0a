package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/opportunities"
)

// OpportunityInput is the provider-side creation payload.
type OpportunityInput struct {
	Title        string
	Organization string
	Category     string
	Description  string
	Location     string
	Deadline     *time.Time
}

type OpportunityService struct {
	opportunities opportunities.Repository
}

func NewOpportunityService(repo opportunities.Repository) *OpportunityService {
	return &OpportunityService{opportunities: repo}
}

func (s *OpportunityService) Create(ctx context.Context, providerID string, in OpportunityInput) (*models.Opportunity, error) {
	o := &models.Opportunity{
		ID:           uuid.NewString(),
		ProviderID:   providerID,
		Title:        in.Title,
		Organization: in.Organization,
		Category:     in.Category,
		Description:  in.Description,
		Location:     in.Location,
		Deadline:     in.Deadline,
	}
	return s.opportunities.Create(ctx, o)
}

func (s *OpportunityService) Get(ctx context.Context, id string) (*models.Opportunity, error) {
	return s.opportunities.GetByID(ctx, id)
}

func (s *OpportunityService) List(ctx context.Context) ([]models.Opportunity, error) {
	return s.opportunities.ListActive(ctx)
}
