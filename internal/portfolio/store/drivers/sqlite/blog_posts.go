package sqlite

import (
	"context"
	"database/sql"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
)

type blogPostsRepo struct {
	db *sql.DB
}

const blogPostColumns = `id, title, slug, excerpt, content, image, tags, published, published_at, sort_order, created_at, updated_at`

func scanBlogPost(scan func(dest ...any) error) (domain.BlogPost, error) {
	var b domain.BlogPost
	var tags string
	var publishedAt sql.NullTime
	err := scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.Image,
		&tags, &b.Published, &publishedAt, &b.SortOrder, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.BlogPost{}, err
	}
	b.Tags = decodeList(tags)
	b.PublishedAt = mapNullTimePtr(publishedAt)
	return b, nil
}

func (r *blogPostsRepo) ListBlogPosts(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts`
	if publishedOnly {
		query += ` WHERE published = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BlogPost
	for rows.Next() {
		b, err := scanBlogPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *blogPostsRepo) GetBlogPost(ctx context.Context, id string) (domain.BlogPost, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+blogPostColumns+` FROM blog_posts WHERE id = ?`, id)
	b, err := scanBlogPost(row.Scan)
	if err != nil {
		return domain.BlogPost{}, mapNotFound(err)
	}
	return b, nil
}

func (r *blogPostsRepo) GetBlogPostBySlug(ctx context.Context, slug string) (domain.BlogPost, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+blogPostColumns+` FROM blog_posts WHERE slug = ?`, slug)
	b, err := scanBlogPost(row.Scan)
	if err != nil {
		return domain.BlogPost{}, mapNotFound(err)
	}
	return b, nil
}

func (r *blogPostsRepo) CreateBlogPost(ctx context.Context, b domain.BlogPost) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO blog_posts (id, title, slug, excerpt, content, image, tags, published, published_at, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.Slug, b.Excerpt, b.Content, b.Image, encodeList(b.Tags),
		b.Published, mapOptionalTime(b.PublishedAt), b.SortOrder, b.CreatedAt, b.UpdatedAt)
	return mapConflict(err)
}

func (r *blogPostsRepo) UpdateBlogPost(ctx context.Context, b domain.BlogPost) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE blog_posts SET title = ?, slug = ?, excerpt = ?, content = ?, image = ?, tags = ?, published = ?, published_at = ?, sort_order = ?, updated_at = ?
		 WHERE id = ?`,
		b.Title, b.Slug, b.Excerpt, b.Content, b.Image, encodeList(b.Tags),
		b.Published, mapOptionalTime(b.PublishedAt), b.SortOrder, b.UpdatedAt, b.ID)
	if err != nil {
		return mapConflict(err)
	}
	return requireRowAffected(res)
}

func (r *blogPostsRepo) DeleteBlogPost(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
