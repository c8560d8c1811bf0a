// Package contact stores landing-page contact form submissions.
package contact

import (
	"context"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}
