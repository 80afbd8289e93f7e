package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
	"github.com/tech2saini/portfolio/internal/portfolio/store/drivers/sqlite"
)

func newTestContent(t *testing.T) *ContentService {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return &ContentService{Store: st}
}

func TestSkillPatchSemantics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	content := newTestContent(t)

	created, err := content.CreateSkill(ctx, domain.Skill{
		Name:  "Go",
		Level: 80,
		Icon:  "go-icon",
		Color: "#00ADD8",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	level := 95
	updated, err := content.UpdateSkill(ctx, created.ID, domain.SkillPatch{Level: &level})
	require.NoError(t, err)

	t.Run("patched field changes", func(t *testing.T) {
		require.Equal(t, 95, updated.Level)
	})
	t.Run("absent fields stay intact", func(t *testing.T) {
		require.Equal(t, "Go", updated.Name)
		require.Equal(t, "go-icon", updated.Icon)
		require.Equal(t, "#00ADD8", updated.Color)
	})
	t.Run("updated_at moves, created_at does not", func(t *testing.T) {
		require.Equal(t, created.CreatedAt, updated.CreatedAt)
		require.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
		require.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		_, err := content.UpdateSkill(ctx, "missing", domain.SkillPatch{Level: &level})
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, content.DeleteSkill(ctx, "missing"), store.ErrNotFound)
	})
}

func TestSkillOrdering(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	content := newTestContent(t)

	for _, s := range []domain.Skill{
		{Name: "Third", SortOrder: 3},
		{Name: "First", SortOrder: 1},
		{Name: "Second", SortOrder: 2},
	} {
		_, err := content.CreateSkill(ctx, s)
		require.NoError(t, err)
	}

	skills, err := content.ListSkills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 3)
	require.Equal(t, "First", skills[0].Name)
	require.Equal(t, "Second", skills[1].Name)
	require.Equal(t, "Third", skills[2].Name)
}

func TestProjectSlugLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	content := newTestContent(t)

	created, err := content.CreateProject(ctx, domain.Project{
		Title:        "My CLI Tool",
		Description:  "A tool",
		Image:        "img.png",
		Technologies: []string{"Go", "SQLite"},
		GradientFrom: "#000",
		GradientTo:   "#fff",
	})
	require.NoError(t, err)

	t.Run("slug matches the title", func(t *testing.T) {
		p, err := content.GetProjectBySlug(ctx, "My CLI Tool")
		require.NoError(t, err)
		require.Equal(t, created.ID, p.ID)
		require.Equal(t, []string{"Go", "SQLite"}, p.Technologies)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		_, err := content.GetProjectBySlug(ctx, "Other Tool")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestBlogPublishedFiltering(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	content := newTestContent(t)

	published, err := content.CreateBlogPost(ctx, domain.BlogPost{
		Title:     "Shipped",
		Slug:      "shipped",
		Content:   "body",
		Published: true,
	})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)

	draft, err := content.CreateBlogPost(ctx, domain.BlogPost{
		Title:   "Draft",
		Slug:    "draft",
		Content: "wip",
	})
	require.NoError(t, err)
	require.Nil(t, draft.PublishedAt)

	t.Run("public listing shows published only", func(t *testing.T) {
		posts, err := content.ListBlogPosts(ctx, false)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		require.Equal(t, "shipped", posts[0].Slug)
	})

	t.Run("draft listing shows everything", func(t *testing.T) {
		posts, err := content.ListBlogPosts(ctx, true)
		require.NoError(t, err)
		require.Len(t, posts, 2)
	})

	t.Run("slug lookup finds drafts too", func(t *testing.T) {
		p, err := content.GetBlogPostBySlug(ctx, "draft")
		require.NoError(t, err)
		require.Equal(t, draft.ID, p.ID)
	})

	t.Run("publishing a draft stamps published_at", func(t *testing.T) {
		yes := true
		updated, err := content.UpdateBlogPost(ctx, draft.ID, domain.BlogPostPatch{Published: &yes})
		require.NoError(t, err)
		require.True(t, updated.Published)
		require.NotNil(t, updated.PublishedAt)
		require.WithinDuration(t, time.Now(), *updated.PublishedAt, 5*time.Second)
	})

	t.Run("duplicate slug is rejected", func(t *testing.T) {
		_, err := content.CreateBlogPost(ctx, domain.BlogPost{
			Title:   "Also Shipped",
			Slug:    "shipped",
			Content: "dup",
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}
