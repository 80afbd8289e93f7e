package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
	"github.com/tech2saini/portfolio/pkg/idx"
)

// ContentService owns the portfolio entities: skills, services, projects,
// experiences, and blog posts. Creates assign the ID and timestamps;
// updates go through the Patch types so absent fields stay untouched.
type ContentService struct {
	Store store.Store
}

func (s *ContentService) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return s.Store.Skills().ListSkills(ctx)
}

func (s *ContentService) CreateSkill(ctx context.Context, sk domain.Skill) (domain.Skill, error) {
	now := time.Now().UTC()
	sk.ID = idx.New().String()
	sk.CreatedAt = now
	sk.UpdatedAt = now
	if err := s.Store.Skills().CreateSkill(ctx, sk); err != nil {
		return domain.Skill{}, fmt.Errorf("failed to create skill: %w", err)
	}
	return sk, nil
}

func (s *ContentService) UpdateSkill(ctx context.Context, id string, patch domain.SkillPatch) (domain.Skill, error) {
	sk, err := s.Store.Skills().GetSkill(ctx, id)
	if err != nil {
		return domain.Skill{}, err
	}
	patch.Apply(&sk, time.Now().UTC())
	if err := s.Store.Skills().UpdateSkill(ctx, sk); err != nil {
		return domain.Skill{}, fmt.Errorf("failed to update skill: %w", err)
	}
	return sk, nil
}

func (s *ContentService) DeleteSkill(ctx context.Context, id string) error {
	return s.Store.Skills().DeleteSkill(ctx, id)
}

func (s *ContentService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.Store.Services().ListServices(ctx)
}

func (s *ContentService) CreateService(ctx context.Context, sv domain.Service) (domain.Service, error) {
	now := time.Now().UTC()
	sv.ID = idx.New().String()
	sv.CreatedAt = now
	sv.UpdatedAt = now
	if err := s.Store.Services().CreateService(ctx, sv); err != nil {
		return domain.Service{}, fmt.Errorf("failed to create service: %w", err)
	}
	return sv, nil
}

func (s *ContentService) UpdateService(ctx context.Context, id string, patch domain.ServicePatch) (domain.Service, error) {
	sv, err := s.Store.Services().GetService(ctx, id)
	if err != nil {
		return domain.Service{}, err
	}
	patch.Apply(&sv, time.Now().UTC())
	if err := s.Store.Services().UpdateService(ctx, sv); err != nil {
		return domain.Service{}, fmt.Errorf("failed to update service: %w", err)
	}
	return sv, nil
}

func (s *ContentService) DeleteService(ctx context.Context, id string) error {
	return s.Store.Services().DeleteService(ctx, id)
}

func (s *ContentService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.Store.Projects().ListProjects(ctx)
}

func (s *ContentService) GetProject(ctx context.Context, id string) (domain.Project, error) {
	return s.Store.Projects().GetProject(ctx, id)
}

func (s *ContentService) GetProjectBySlug(ctx context.Context, slug string) (domain.Project, error) {
	return s.Store.Projects().GetProjectBySlug(ctx, slug)
}

func (s *ContentService) CreateProject(ctx context.Context, p domain.Project) (domain.Project, error) {
	now := time.Now().UTC()
	p.ID = idx.New().String()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.Store.Projects().CreateProject(ctx, p); err != nil {
		return domain.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

func (s *ContentService) UpdateProject(ctx context.Context, id string, patch domain.ProjectPatch) (domain.Project, error) {
	p, err := s.Store.Projects().GetProject(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	patch.Apply(&p, time.Now().UTC())
	if err := s.Store.Projects().UpdateProject(ctx, p); err != nil {
		return domain.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	return p, nil
}

func (s *ContentService) DeleteProject(ctx context.Context, id string) error {
	return s.Store.Projects().DeleteProject(ctx, id)
}

func (s *ContentService) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	return s.Store.Experiences().ListExperiences(ctx)
}

func (s *ContentService) CreateExperience(ctx context.Context, e domain.Experience) (domain.Experience, error) {
	now := time.Now().UTC()
	e.ID = idx.New().String()
	e.CreatedAt = now
	e.UpdatedAt = now
	if err := s.Store.Experiences().CreateExperience(ctx, e); err != nil {
		return domain.Experience{}, fmt.Errorf("failed to create experience: %w", err)
	}
	return e, nil
}

func (s *ContentService) UpdateExperience(ctx context.Context, id string, patch domain.ExperiencePatch) (domain.Experience, error) {
	e, err := s.Store.Experiences().GetExperience(ctx, id)
	if err != nil {
		return domain.Experience{}, err
	}
	patch.Apply(&e, time.Now().UTC())
	if err := s.Store.Experiences().UpdateExperience(ctx, e); err != nil {
		return domain.Experience{}, fmt.Errorf("failed to update experience: %w", err)
	}
	return e, nil
}

func (s *ContentService) DeleteExperience(ctx context.Context, id string) error {
	return s.Store.Experiences().DeleteExperience(ctx, id)
}

// ListBlogPosts returns published posts only unless includeDrafts is set
// (the authenticated listing).
func (s *ContentService) ListBlogPosts(ctx context.Context, includeDrafts bool) ([]domain.BlogPost, error) {
	return s.Store.BlogPosts().ListBlogPosts(ctx, !includeDrafts)
}

func (s *ContentService) GetBlogPost(ctx context.Context, id string) (domain.BlogPost, error) {
	return s.Store.BlogPosts().GetBlogPost(ctx, id)
}

func (s *ContentService) GetBlogPostBySlug(ctx context.Context, slug string) (domain.BlogPost, error) {
	return s.Store.BlogPosts().GetBlogPostBySlug(ctx, slug)
}

func (s *ContentService) CreateBlogPost(ctx context.Context, b domain.BlogPost) (domain.BlogPost, error) {
	now := time.Now().UTC()
	b.ID = idx.New().String()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Published && b.PublishedAt == nil {
		b.PublishedAt = &now
	}
	if err := s.Store.BlogPosts().CreateBlogPost(ctx, b); err != nil {
		return domain.BlogPost{}, fmt.Errorf("failed to create blog post: %w", err)
	}
	return b, nil
}

func (s *ContentService) UpdateBlogPost(ctx context.Context, id string, patch domain.BlogPostPatch) (domain.BlogPost, error) {
	b, err := s.Store.BlogPosts().GetBlogPost(ctx, id)
	if err != nil {
		return domain.BlogPost{}, err
	}
	now := time.Now().UTC()
	patch.Apply(&b, now)
	if b.Published && b.PublishedAt == nil {
		b.PublishedAt = &now
	}
	if err := s.Store.BlogPosts().UpdateBlogPost(ctx, b); err != nil {
		return domain.BlogPost{}, fmt.Errorf("failed to update blog post: %w", err)
	}
	return b, nil
}

func (s *ContentService) DeleteBlogPost(ctx context.Context, id string) error {
	return s.Store.BlogPosts().DeleteBlogPost(ctx, id)
}
