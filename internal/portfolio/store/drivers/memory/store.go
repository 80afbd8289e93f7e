// Package memory provides an in-process Store implementation backed by maps.
// It is used for tests and for running the server without a database file.
package memory

import (
	"context"
	"sync"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
)

type Store struct {
	mu sync.RWMutex

	users          map[string]domain.User // keyed by id
	sessions       map[string]domain.Session
	passwordResets map[string]domain.PasswordReset // keyed by token hash
	skills         map[string]domain.Skill
	services       map[string]domain.Service
	projects       map[string]domain.Project
	experiences    map[string]domain.Experience
	blogPosts      map[string]domain.BlogPost
	contacts       map[string]domain.ContactMessage
	subscribers    map[string]domain.NewsletterSubscriber
}

func NewStore() *Store {
	return &Store{
		users:          make(map[string]domain.User),
		sessions:       make(map[string]domain.Session),
		passwordResets: make(map[string]domain.PasswordReset),
		skills:         make(map[string]domain.Skill),
		services:       make(map[string]domain.Service),
		projects:       make(map[string]domain.Project),
		experiences:    make(map[string]domain.Experience),
		blogPosts:      make(map[string]domain.BlogPost),
		contacts:       make(map[string]domain.ContactMessage),
		subscribers:    make(map[string]domain.NewsletterSubscriber),
	}
}

func (s *Store) Users() store.Users                   { return &usersRepo{s: s} }
func (s *Store) Sessions() store.Sessions             { return &sessionsRepo{s: s} }
func (s *Store) PasswordResets() store.PasswordResets { return &passwordResetsRepo{s: s} }
func (s *Store) Skills() store.Skills                 { return &skillsRepo{s: s} }
func (s *Store) Services() store.Services             { return &servicesRepo{s: s} }
func (s *Store) Projects() store.Projects             { return &projectsRepo{s: s} }
func (s *Store) Experiences() store.Experiences       { return &experiencesRepo{s: s} }
func (s *Store) BlogPosts() store.BlogPosts           { return &blogPostsRepo{s: s} }
func (s *Store) ContactMessages() store.ContactMessages {
	return &contactMessagesRepo{s: s}
}
func (s *Store) NewsletterSubscribers() store.NewsletterSubscribers {
	return &newsletterRepo{s: s}
}

// ApplyMigrations is a no-op; there is no schema to migrate.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error { return nil }

func (s *Store) Ping(ctx context.Context) error { return nil }
