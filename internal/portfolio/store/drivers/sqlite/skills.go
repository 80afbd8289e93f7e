package sqlite

import (
	"context"
	"database/sql"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
)

type skillsRepo struct {
	db *sql.DB
}

const skillColumns = `id, name, level, icon, color, is_additional, sort_order, created_at, updated_at`

func (r *skillsRepo) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+skillColumns+` FROM skills ORDER BY sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Level, &s.Icon, &s.Color,
			&s.IsAdditional, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *skillsRepo) GetSkill(ctx context.Context, id string) (domain.Skill, error) {
	var s domain.Skill
	err := r.db.QueryRowContext(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE id = ?`, id).
		Scan(&s.ID, &s.Name, &s.Level, &s.Icon, &s.Color,
			&s.IsAdditional, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Skill{}, mapNotFound(err)
	}
	return s, nil
}

func (r *skillsRepo) CreateSkill(ctx context.Context, s domain.Skill) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO skills (id, name, level, icon, color, is_additional, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Level, s.Icon, s.Color, s.IsAdditional, s.SortOrder, s.CreatedAt, s.UpdatedAt)
	return mapConflict(err)
}

func (r *skillsRepo) UpdateSkill(ctx context.Context, s domain.Skill) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE skills SET name = ?, level = ?, icon = ?, color = ?, is_additional = ?, sort_order = ?, updated_at = ?
		 WHERE id = ?`,
		s.Name, s.Level, s.Icon, s.Color, s.IsAdditional, s.SortOrder, s.UpdatedAt, s.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *skillsRepo) DeleteSkill(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
