package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
	"github.com/tech2saini/portfolio/pkg/idx"
)

var (
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrNotSubscribed     = errors.New("email not subscribed")
)

// NewsletterService manages the subscriber list. Unsubscribing keeps the
// row around so a later re-subscribe reactivates it instead of creating a
// duplicate.
type NewsletterService struct {
	Store store.Store
}

func (s *NewsletterService) Subscribe(ctx context.Context, email, name string) (domain.NewsletterSubscriber, error) {
	email = NormalizeEmail(email)
	now := time.Now().UTC()

	existing, err := s.Store.NewsletterSubscribers().GetSubscriberByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.IsActive {
			return domain.NewsletterSubscriber{}, ErrAlreadySubscribed
		}
		if err := s.Store.NewsletterSubscribers().ReactivateSubscriber(ctx, existing.ID, now); err != nil {
			return domain.NewsletterSubscriber{}, fmt.Errorf("failed to reactivate subscriber: %w", err)
		}
		existing.IsActive = true
		existing.SubscribedAt = now
		existing.UnsubscribedAt = nil
		return existing, nil
	case !errors.Is(err, store.ErrNotFound):
		return domain.NewsletterSubscriber{}, fmt.Errorf("failed to look up subscriber: %w", err)
	}

	sub := domain.NewsletterSubscriber{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		IsActive:     true,
		SubscribedAt: now,
	}
	if err := s.Store.NewsletterSubscribers().CreateSubscriber(ctx, sub); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.NewsletterSubscriber{}, ErrAlreadySubscribed
		}
		return domain.NewsletterSubscriber{}, fmt.Errorf("failed to create subscriber: %w", err)
	}
	return sub, nil
}

func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	sub, err := s.Store.NewsletterSubscribers().GetSubscriberByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotSubscribed
		}
		return fmt.Errorf("failed to look up subscriber: %w", err)
	}
	if !sub.IsActive {
		return ErrNotSubscribed
	}
	if err := s.Store.NewsletterSubscribers().DeactivateSubscriber(ctx, sub.ID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to deactivate subscriber: %w", err)
	}
	return nil
}

func (s *NewsletterService) ListActive(ctx context.Context) ([]domain.NewsletterSubscriber, error) {
	return s.Store.NewsletterSubscribers().ListActiveSubscribers(ctx)
}
