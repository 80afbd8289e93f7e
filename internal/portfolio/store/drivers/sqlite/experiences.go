package sqlite

import (
	"context"
	"database/sql"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
)

type experiencesRepo struct {
	db *sql.DB
}

const experienceColumns = `id, period, title, company, description, gpa, coursework, color, sort_order, created_at, updated_at`

func scanExperience(scan func(dest ...any) error) (domain.Experience, error) {
	var e domain.Experience
	var coursework string
	err := scan(&e.ID, &e.Period, &e.Title, &e.Company, &e.Description, &e.GPA,
		&coursework, &e.Color, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Experience{}, err
	}
	e.Coursework = decodeList(coursework)
	return e, nil
}

func (r *experiencesRepo) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+experienceColumns+` FROM experiences ORDER BY sort_order ASC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Experience
	for rows.Next() {
		e, err := scanExperience(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *experiencesRepo) GetExperience(ctx context.Context, id string) (domain.Experience, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+experienceColumns+` FROM experiences WHERE id = ?`, id)
	e, err := scanExperience(row.Scan)
	if err != nil {
		return domain.Experience{}, mapNotFound(err)
	}
	return e, nil
}

func (r *experiencesRepo) CreateExperience(ctx context.Context, e domain.Experience) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO experiences (id, period, title, company, description, gpa, coursework, color, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Period, e.Title, e.Company, e.Description, e.GPA,
		encodeList(e.Coursework), e.Color, e.SortOrder, e.CreatedAt, e.UpdatedAt)
	return mapConflict(err)
}

func (r *experiencesRepo) UpdateExperience(ctx context.Context, e domain.Experience) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE experiences SET period = ?, title = ?, company = ?, description = ?, gpa = ?, coursework = ?, color = ?, sort_order = ?, updated_at = ?
		 WHERE id = ?`,
		e.Period, e.Title, e.Company, e.Description, e.GPA,
		encodeList(e.Coursework), e.Color, e.SortOrder, e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *experiencesRepo) DeleteExperience(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
