package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/models"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/contact"
)

type ContactService struct {
	contact contact.Repository
}

func NewContactService(repo contact.Repository) *ContactService {
	return &ContactService{contact: repo}
}

func (s *ContactService) Submit(ctx context.Context, msg models.ContactMessage) error {
	msg.ID = uuid.NewString()
	return s.contact.Create(ctx, &msg)
}
