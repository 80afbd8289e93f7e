package store

import (
	"context"
	"errors"
	"time"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, memory)
// implement this. The driver is selected explicitly at startup from
// configuration; nothing probes for connectivity at import time.
type Store interface {
	Users() Users
	Sessions() Sessions
	PasswordResets() PasswordResets
	Skills() Skills
	Services() Services
	Projects() Projects
	Experiences() Experiences
	BlogPosts() BlogPosts
	ContactMessages() ContactMessages
	NewsletterSubscribers() NewsletterSubscribers

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by their normalized (lower case) email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user. Returns ErrAlreadyExists when the email
	// is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile mutates name and email and bumps updated_at.
	UpdateProfile(ctx context.Context, userID, name, email string) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// EnableTwoFactor persists the confirmed TOTP secret and flips the flag.
	EnableTwoFactor(ctx context.Context, userID, secret string) error

	// DisableTwoFactor clears the secret and the flag.
	DisableTwoFactor(ctx context.Context, userID string) error
}

// Sessions persists opaque session tokens by fingerprint. The same interface
// is satisfied by the SQL drivers and by the Redis session store, so the
// session backend can be swapped independently of the main store.
type Sessions interface {
	// CreateSession stores a new session record.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSession returns the session for a token fingerprint. Expired
	// sessions are reported as ErrNotFound even if the row still exists.
	GetSession(ctx context.Context, tokenHash string) (domain.Session, error)

	// DeleteSession removes a single session. Deleting a missing session is
	// not an error (logout is idempotent).
	DeleteSession(ctx context.Context, tokenHash string) error

	// DeleteUserSessions removes every session of a user except the one
	// whose fingerprint matches exceptTokenHash (pass "" to remove all).
	DeleteUserSessions(ctx context.Context, userID, exceptTokenHash string) error

	// DeleteExpiredSessions removes sessions past their expiry (housekeeping).
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

type PasswordResets interface {
	// CreatePasswordReset stores a freshly issued reset token fingerprint.
	CreatePasswordReset(ctx context.Context, pr domain.PasswordReset) error

	// GetPasswordReset fetches a reset record by token fingerprint.
	GetPasswordReset(ctx context.Context, tokenHash string) (domain.PasswordReset, error)

	// MarkPasswordResetUsed stamps used_at so the token cannot be replayed.
	MarkPasswordResetUsed(ctx context.Context, id string, usedAt time.Time) error

	// DeleteExpiredPasswordResets removes spent and expired tokens.
	DeleteExpiredPasswordResets(ctx context.Context, now time.Time) error
}

type Skills interface {
	ListSkills(ctx context.Context) ([]domain.Skill, error)
	CreateSkill(ctx context.Context, s domain.Skill) error
	GetSkill(ctx context.Context, id string) (domain.Skill, error)
	UpdateSkill(ctx context.Context, s domain.Skill) error
	DeleteSkill(ctx context.Context, id string) error
}

type Services interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	CreateService(ctx context.Context, s domain.Service) error
	GetService(ctx context.Context, id string) (domain.Service, error)
	UpdateService(ctx context.Context, s domain.Service) error
	DeleteService(ctx context.Context, id string) error
}

type Projects interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (domain.Project, error)

	// GetProjectBySlug resolves a project by its title, which doubles as the
	// public slug.
	GetProjectBySlug(ctx context.Context, slug string) (domain.Project, error)

	CreateProject(ctx context.Context, p domain.Project) error
	UpdateProject(ctx context.Context, p domain.Project) error
	DeleteProject(ctx context.Context, id string) error
}

type Experiences interface {
	ListExperiences(ctx context.Context) ([]domain.Experience, error)
	CreateExperience(ctx context.Context, e domain.Experience) error
	GetExperience(ctx context.Context, id string) (domain.Experience, error)
	UpdateExperience(ctx context.Context, e domain.Experience) error
	DeleteExperience(ctx context.Context, id string) error
}

type BlogPosts interface {
	// ListBlogPosts returns posts newest first; publishedOnly filters drafts.
	ListBlogPosts(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error)
	GetBlogPost(ctx context.Context, id string) (domain.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (domain.BlogPost, error)
	CreateBlogPost(ctx context.Context, b domain.BlogPost) error
	UpdateBlogPost(ctx context.Context, b domain.BlogPost) error
	DeleteBlogPost(ctx context.Context, id string) error
}

type ContactMessages interface {
	CreateContactMessage(ctx context.Context, m domain.ContactMessage) error
	ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error)
}

type NewsletterSubscribers interface {
	// ListActiveSubscribers returns active subscribers newest first.
	ListActiveSubscribers(ctx context.Context) ([]domain.NewsletterSubscriber, error)

	// GetSubscriberByEmail returns the subscriber row for an email,
	// regardless of active state.
	GetSubscriberByEmail(ctx context.Context, email string) (domain.NewsletterSubscriber, error)

	CreateSubscriber(ctx context.Context, s domain.NewsletterSubscriber) error

	// ReactivateSubscriber flips a previously unsubscribed row back on.
	ReactivateSubscriber(ctx context.Context, id string, at time.Time) error

	// DeactivateSubscriber marks the subscription inactive with a timestamp.
	DeactivateSubscriber(ctx context.Context, id string, at time.Time) error
}
