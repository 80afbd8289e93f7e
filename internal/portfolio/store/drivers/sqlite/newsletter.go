package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
)

type newsletterRepo struct {
	db *sql.DB
}

const subscriberColumns = `id, email, name, is_active, subscribed_at, unsubscribed_at`

func scanSubscriber(scan func(dest ...any) error) (domain.NewsletterSubscriber, error) {
	var s domain.NewsletterSubscriber
	var unsubscribedAt sql.NullTime
	err := scan(&s.ID, &s.Email, &s.Name, &s.IsActive, &s.SubscribedAt, &unsubscribedAt)
	if err != nil {
		return domain.NewsletterSubscriber{}, err
	}
	s.UnsubscribedAt = mapNullTimePtr(unsubscribedAt)
	return s, nil
}

func (r *newsletterRepo) ListActiveSubscribers(ctx context.Context) ([]domain.NewsletterSubscriber, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+subscriberColumns+` FROM newsletter_subscribers
		 WHERE is_active = 1 ORDER BY subscribed_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.NewsletterSubscriber
	for rows.Next() {
		s, err := scanSubscriber(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *newsletterRepo) GetSubscriberByEmail(ctx context.Context, email string) (domain.NewsletterSubscriber, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+subscriberColumns+` FROM newsletter_subscribers WHERE email = ?`, email)
	s, err := scanSubscriber(row.Scan)
	if err != nil {
		return domain.NewsletterSubscriber{}, mapNotFound(err)
	}
	return s, nil
}

func (r *newsletterRepo) CreateSubscriber(ctx context.Context, s domain.NewsletterSubscriber) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO newsletter_subscribers (id, email, name, is_active, subscribed_at, unsubscribed_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Email, s.Name, s.IsActive, s.SubscribedAt, mapOptionalTime(s.UnsubscribedAt))
	return mapConflict(err)
}

func (r *newsletterRepo) ReactivateSubscriber(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE newsletter_subscribers SET is_active = 1, subscribed_at = ?, unsubscribed_at = NULL
		 WHERE id = ?`, at, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *newsletterRepo) DeactivateSubscriber(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE newsletter_subscribers SET is_active = 0, unsubscribed_at = ?
		 WHERE id = ?`, at, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
