package memory

import (
	"context"
	"sort"
	"time"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
)

type skillsRepo struct {
	s *Store
}

func (r *skillsRepo) ListSkills(_ context.Context) ([]domain.Skill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Skill, 0, len(r.s.skills))
	for _, sk := range r.s.skills {
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *skillsRepo) GetSkill(_ context.Context, id string) (domain.Skill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sk, ok := r.s.skills[id]
	if !ok {
		return domain.Skill{}, store.ErrNotFound
	}
	return sk, nil
}

func (r *skillsRepo) CreateSkill(_ context.Context, sk domain.Skill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.skills[sk.ID]; ok {
		return store.ErrAlreadyExists
	}
	r.s.skills[sk.ID] = sk
	return nil
}

func (r *skillsRepo) UpdateSkill(_ context.Context, sk domain.Skill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.skills[sk.ID]; !ok {
		return store.ErrNotFound
	}
	r.s.skills[sk.ID] = sk
	return nil
}

func (r *skillsRepo) DeleteSkill(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.skills[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.skills, id)
	return nil
}

type servicesRepo struct {
	s *Store
}

func (r *servicesRepo) ListServices(_ context.Context) ([]domain.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Service, 0, len(r.s.services))
	for _, sv := range r.s.services {
		out = append(out, sv)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *servicesRepo) GetService(_ context.Context, id string) (domain.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sv, ok := r.s.services[id]
	if !ok {
		return domain.Service{}, store.ErrNotFound
	}
	return sv, nil
}

func (r *servicesRepo) CreateService(_ context.Context, sv domain.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[sv.ID]; ok {
		return store.ErrAlreadyExists
	}
	r.s.services[sv.ID] = sv
	return nil
}

func (r *servicesRepo) UpdateService(_ context.Context, sv domain.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[sv.ID]; !ok {
		return store.ErrNotFound
	}
	r.s.services[sv.ID] = sv
	return nil
}

func (r *servicesRepo) DeleteService(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.services, id)
	return nil
}

type projectsRepo struct {
	s *Store
}

func (r *projectsRepo) ListProjects(_ context.Context) ([]domain.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Project, 0, len(r.s.projects))
	for _, p := range r.s.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *projectsRepo) GetProject(_ context.Context, id string) (domain.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.projects[id]
	if !ok {
		return domain.Project{}, store.ErrNotFound
	}
	return p, nil
}

func (r *projectsRepo) GetProjectBySlug(_ context.Context, slug string) (domain.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.projects {
		if p.Title == slug {
			return p, nil
		}
	}
	return domain.Project{}, store.ErrNotFound
}

func (r *projectsRepo) CreateProject(_ context.Context, p domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.projects[p.ID]; ok {
		return store.ErrAlreadyExists
	}
	r.s.projects[p.ID] = p
	return nil
}

func (r *projectsRepo) UpdateProject(_ context.Context, p domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.projects[p.ID]; !ok {
		return store.ErrNotFound
	}
	r.s.projects[p.ID] = p
	return nil
}

func (r *projectsRepo) DeleteProject(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.projects[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.projects, id)
	return nil
}

type experiencesRepo struct {
	s *Store
}

func (r *experiencesRepo) ListExperiences(_ context.Context) ([]domain.Experience, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Experience, 0, len(r.s.experiences))
	for _, e := range r.s.experiences {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *experiencesRepo) GetExperience(_ context.Context, id string) (domain.Experience, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.experiences[id]
	if !ok {
		return domain.Experience{}, store.ErrNotFound
	}
	return e, nil
}

func (r *experiencesRepo) CreateExperience(_ context.Context, e domain.Experience) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.experiences[e.ID]; ok {
		return store.ErrAlreadyExists
	}
	r.s.experiences[e.ID] = e
	return nil
}

func (r *experiencesRepo) UpdateExperience(_ context.Context, e domain.Experience) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.experiences[e.ID]; !ok {
		return store.ErrNotFound
	}
	r.s.experiences[e.ID] = e
	return nil
}

func (r *experiencesRepo) DeleteExperience(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.experiences[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.experiences, id)
	return nil
}

type blogPostsRepo struct {
	s *Store
}

func (r *blogPostsRepo) ListBlogPosts(_ context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.BlogPost, 0, len(r.s.blogPosts))
	for _, b := range r.s.blogPosts {
		if publishedOnly && !b.Published {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *blogPostsRepo) GetBlogPost(_ context.Context, id string) (domain.BlogPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.blogPosts[id]
	if !ok {
		return domain.BlogPost{}, store.ErrNotFound
	}
	return b, nil
}

func (r *blogPostsRepo) GetBlogPostBySlug(_ context.Context, slug string) (domain.BlogPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, b := range r.s.blogPosts {
		if b.Slug == slug {
			return b, nil
		}
	}
	return domain.BlogPost{}, store.ErrNotFound
}

func (r *blogPostsRepo) CreateBlogPost(_ context.Context, b domain.BlogPost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.blogPosts[b.ID]; ok {
		return store.ErrAlreadyExists
	}
	for _, existing := range r.s.blogPosts {
		if existing.Slug == b.Slug {
			return store.ErrAlreadyExists
		}
	}
	r.s.blogPosts[b.ID] = b
	return nil
}

func (r *blogPostsRepo) UpdateBlogPost(_ context.Context, b domain.BlogPost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.blogPosts[b.ID]; !ok {
		return store.ErrNotFound
	}
	for _, existing := range r.s.blogPosts {
		if existing.ID != b.ID && existing.Slug == b.Slug {
			return store.ErrAlreadyExists
		}
	}
	r.s.blogPosts[b.ID] = b
	return nil
}

func (r *blogPostsRepo) DeleteBlogPost(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.blogPosts[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.blogPosts, id)
	return nil
}

type contactMessagesRepo struct {
	s *Store
}

func (r *contactMessagesRepo) CreateContactMessage(_ context.Context, m domain.ContactMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.contacts[m.ID]; ok {
		return store.ErrAlreadyExists
	}
	r.s.contacts[m.ID] = m
	return nil
}

func (r *contactMessagesRepo) ListContactMessages(_ context.Context) ([]domain.ContactMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.ContactMessage, 0, len(r.s.contacts))
	for _, m := range r.s.contacts {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type newsletterRepo struct {
	s *Store
}

func (r *newsletterRepo) ListActiveSubscribers(_ context.Context) ([]domain.NewsletterSubscriber, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.NewsletterSubscriber, 0, len(r.s.subscribers))
	for _, sub := range r.s.subscribers {
		if sub.IsActive {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubscribedAt.After(out[j].SubscribedAt)
	})
	return out, nil
}

func (r *newsletterRepo) GetSubscriberByEmail(_ context.Context, email string) (domain.NewsletterSubscriber, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, sub := range r.s.subscribers {
		if sub.Email == email {
			return sub, nil
		}
	}
	return domain.NewsletterSubscriber{}, store.ErrNotFound
}

func (r *newsletterRepo) CreateSubscriber(_ context.Context, sub domain.NewsletterSubscriber) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.subscribers {
		if existing.Email == sub.Email {
			return store.ErrAlreadyExists
		}
	}
	r.s.subscribers[sub.ID] = sub
	return nil
}

func (r *newsletterRepo) ReactivateSubscriber(_ context.Context, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sub, ok := r.s.subscribers[id]
	if !ok {
		return store.ErrNotFound
	}
	sub.IsActive = true
	sub.SubscribedAt = at
	sub.UnsubscribedAt = nil
	r.s.subscribers[id] = sub
	return nil
}

func (r *newsletterRepo) DeactivateSubscriber(_ context.Context, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sub, ok := r.s.subscribers[id]
	if !ok {
		return store.ErrNotFound
	}
	sub.IsActive = false
	sub.UnsubscribedAt = &at
	r.s.subscribers[id] = sub
	return nil
}
