package sqlite

import (
	"context"
	"database/sql"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
)

type projectsRepo struct {
	db *sql.DB
}

const projectColumns = `id, title, description, content, image, technologies, gradient_from, gradient_to, demo_url, github_url, featured, sort_order, created_at, updated_at`

func scanProject(scan func(dest ...any) error) (domain.Project, error) {
	var p domain.Project
	var technologies string
	err := scan(&p.ID, &p.Title, &p.Description, &p.Content, &p.Image, &technologies,
		&p.GradientFrom, &p.GradientTo, &p.DemoURL, &p.GithubURL,
		&p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Project{}, err
	}
	p.Technologies = decodeList(technologies)
	return p, nil
}

func (r *projectsRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY sort_order ASC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *projectsRepo) GetProject(ctx context.Context, id string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row.Scan)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) GetProjectBySlug(ctx context.Context, slug string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE title = ?`, slug)
	p, err := scanProject(row.Scan)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, title, description, content, image, technologies, gradient_from, gradient_to, demo_url, github_url, featured, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, p.Content, p.Image, encodeList(p.Technologies),
		p.GradientFrom, p.GradientTo, p.DemoURL, p.GithubURL,
		p.Featured, p.SortOrder, p.CreatedAt, p.UpdatedAt)
	return mapConflict(err)
}

func (r *projectsRepo) UpdateProject(ctx context.Context, p domain.Project) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET title = ?, description = ?, content = ?, image = ?, technologies = ?, gradient_from = ?, gradient_to = ?, demo_url = ?, github_url = ?, featured = ?, sort_order = ?, updated_at = ?
		 WHERE id = ?`,
		p.Title, p.Description, p.Content, p.Image, encodeList(p.Technologies),
		p.GradientFrom, p.GradientTo, p.DemoURL, p.GithubURL,
		p.Featured, p.SortOrder, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *projectsRepo) DeleteProject(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
