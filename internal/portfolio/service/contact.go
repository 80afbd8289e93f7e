package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
	"github.com/tech2saini/portfolio/pkg/idx"
)

// ContactService records messages from the public contact form.
type ContactService struct {
	Store store.Store
}

func (s *ContactService) Submit(ctx context.Context, m domain.ContactMessage) (domain.ContactMessage, error) {
	m.ID = idx.New().String()
	m.Email = NormalizeEmail(m.Email)
	m.CreatedAt = time.Now().UTC()
	if err := s.Store.ContactMessages().CreateContactMessage(ctx, m); err != nil {
		return domain.ContactMessage{}, fmt.Errorf("failed to store contact message: %w", err)
	}
	return m, nil
}

func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.Store.ContactMessages().ListContactMessages(ctx)
}
