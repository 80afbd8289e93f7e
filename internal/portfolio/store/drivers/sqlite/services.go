package sqlite

import (
	"context"
	"database/sql"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
)

type servicesRepo struct {
	db *sql.DB
}

const serviceColumns = `id, title, description, price, features, icon, sort_order, created_at, updated_at`

func scanService(scan func(dest ...any) error) (domain.Service, error) {
	var s domain.Service
	var features string
	err := scan(&s.ID, &s.Title, &s.Description, &s.Price, &features,
		&s.Icon, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Service{}, err
	}
	s.Features = decodeList(features)
	return s, nil
}

func (r *servicesRepo) ListServices(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Service
	for rows.Next() {
		s, err := scanService(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *servicesRepo) GetService(ctx context.Context, id string) (domain.Service, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = ?`, id)
	s, err := scanService(row.Scan)
	if err != nil {
		return domain.Service{}, mapNotFound(err)
	}
	return s, nil
}

func (r *servicesRepo) CreateService(ctx context.Context, s domain.Service) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO services (id, title, description, price, features, icon, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Title, s.Description, s.Price, encodeList(s.Features),
		s.Icon, s.SortOrder, s.CreatedAt, s.UpdatedAt)
	return mapConflict(err)
}

func (r *servicesRepo) UpdateService(ctx context.Context, s domain.Service) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE services SET title = ?, description = ?, price = ?, features = ?, icon = ?, sort_order = ?, updated_at = ?
		 WHERE id = ?`,
		s.Title, s.Description, s.Price, encodeList(s.Features),
		s.Icon, s.SortOrder, s.UpdatedAt, s.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *servicesRepo) DeleteService(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
