package sqlite

import (
	"context"
	"database/sql"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
)

type contactMessagesRepo struct {
	db *sql.DB
}

func (r *contactMessagesRepo) CreateContactMessage(ctx context.Context, m domain.ContactMessage) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, phone, subject, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Phone, m.Subject, m.Message, m.CreatedAt)
	return mapConflict(err)
}

func (r *contactMessagesRepo) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, phone, subject, message, created_at
		 FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone,
			&m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
