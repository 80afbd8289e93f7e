package domain

import "time"

// Skill is a single entry on the skills grid.
type Skill struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Level        int       `json:"level"` // 0-100
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
	IsAdditional bool      `json:"isAdditional"`
	SortOrder    int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SkillPatch lists the mutable fields of a Skill. Nil fields are left
// untouched; any applied patch bumps UpdatedAt.
type SkillPatch struct {
	Name         *string `json:"name,omitempty"`
	Level        *int    `json:"level,omitempty"`
	Icon         *string `json:"icon,omitempty"`
	Color        *string `json:"color,omitempty"`
	IsAdditional *bool   `json:"isAdditional,omitempty"`
	SortOrder    *int    `json:"order,omitempty"`
}

// Apply merges the patch into s and touches UpdatedAt.
func (p SkillPatch) Apply(s *Skill, now time.Time) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Level != nil {
		s.Level = *p.Level
	}
	if p.Icon != nil {
		s.Icon = *p.Icon
	}
	if p.Color != nil {
		s.Color = *p.Color
	}
	if p.IsAdditional != nil {
		s.IsAdditional = *p.IsAdditional
	}
	if p.SortOrder != nil {
		s.SortOrder = *p.SortOrder
	}
	s.UpdatedAt = now
}

// Service is a service offering card.
type Service struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Features    []string  `json:"features"`
	Icon        string    `json:"icon"`
	SortOrder   int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ServicePatch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *string  `json:"price,omitempty"`
	Features    []string `json:"features,omitempty"`
	Icon        *string  `json:"icon,omitempty"`
	SortOrder   *int     `json:"order,omitempty"`
}

func (p ServicePatch) Apply(s *Service, now time.Time) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Features != nil {
		s.Features = p.Features
	}
	if p.Icon != nil {
		s.Icon = *p.Icon
	}
	if p.SortOrder != nil {
		s.SortOrder = *p.SortOrder
	}
	s.UpdatedAt = now
}

// Project is a portfolio entry. Slug lookups match the title, mirroring the
// public routing scheme.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Content      string    `json:"content,omitempty"`
	Image        string    `json:"image"`
	Technologies []string  `json:"technologies"`
	GradientFrom string    `json:"gradientFrom"`
	GradientTo   string    `json:"gradientTo"`
	DemoURL      string    `json:"demoUrl,omitempty"`
	GithubURL    string    `json:"githubUrl,omitempty"`
	Featured     bool      `json:"featured"`
	SortOrder    int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ProjectPatch struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Content      *string  `json:"content,omitempty"`
	Image        *string  `json:"image,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	GradientFrom *string  `json:"gradientFrom,omitempty"`
	GradientTo   *string  `json:"gradientTo,omitempty"`
	DemoURL      *string  `json:"demoUrl,omitempty"`
	GithubURL    *string  `json:"githubUrl,omitempty"`
	Featured     *bool    `json:"featured,omitempty"`
	SortOrder    *int     `json:"order,omitempty"`
}

func (p ProjectPatch) Apply(pr *Project, now time.Time) {
	if p.Title != nil {
		pr.Title = *p.Title
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Content != nil {
		pr.Content = *p.Content
	}
	if p.Image != nil {
		pr.Image = *p.Image
	}
	if p.Technologies != nil {
		pr.Technologies = p.Technologies
	}
	if p.GradientFrom != nil {
		pr.GradientFrom = *p.GradientFrom
	}
	if p.GradientTo != nil {
		pr.GradientTo = *p.GradientTo
	}
	if p.DemoURL != nil {
		pr.DemoURL = *p.DemoURL
	}
	if p.GithubURL != nil {
		pr.GithubURL = *p.GithubURL
	}
	if p.Featured != nil {
		pr.Featured = *p.Featured
	}
	if p.SortOrder != nil {
		pr.SortOrder = *p.SortOrder
	}
	pr.UpdatedAt = now
}

// Experience is a work or education timeline entry.
type Experience struct {
	ID          string    `json:"id"`
	Period      string    `json:"period"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description,omitempty"`
	GPA         string    `json:"gpa,omitempty"`
	Coursework  []string  `json:"coursework,omitempty"`
	Color       string    `json:"color"`
	SortOrder   int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ExperiencePatch struct {
	Period      *string  `json:"period,omitempty"`
	Title       *string  `json:"title,omitempty"`
	Company     *string  `json:"company,omitempty"`
	Description *string  `json:"description,omitempty"`
	GPA         *string  `json:"gpa,omitempty"`
	Coursework  []string `json:"coursework,omitempty"`
	Color       *string  `json:"color,omitempty"`
	SortOrder   *int     `json:"order,omitempty"`
}

func (p ExperiencePatch) Apply(e *Experience, now time.Time) {
	if p.Period != nil {
		e.Period = *p.Period
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Company != nil {
		e.Company = *p.Company
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.GPA != nil {
		e.GPA = *p.GPA
	}
	if p.Coursework != nil {
		e.Coursework = p.Coursework
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	if p.SortOrder != nil {
		e.SortOrder = *p.SortOrder
	}
	e.UpdatedAt = now
}

// BlogPost is an article; Published gates public visibility.
type BlogPost struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content"`
	Image       string     `json:"image,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	SortOrder   int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type BlogPostPatch struct {
	Title       *string    `json:"title,omitempty"`
	Slug        *string    `json:"slug,omitempty"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Content     *string    `json:"content,omitempty"`
	Image       *string    `json:"image,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Published   *bool      `json:"published,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	SortOrder   *int       `json:"order,omitempty"`
}

func (p BlogPostPatch) Apply(b *BlogPost, now time.Time) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Slug != nil {
		b.Slug = *p.Slug
	}
	if p.Excerpt != nil {
		b.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		b.Content = *p.Content
	}
	if p.Image != nil {
		b.Image = *p.Image
	}
	if p.Tags != nil {
		b.Tags = p.Tags
	}
	if p.Published != nil {
		b.Published = *p.Published
	}
	if p.PublishedAt != nil {
		b.PublishedAt = p.PublishedAt
	}
	if p.SortOrder != nil {
		b.SortOrder = *p.SortOrder
	}
	b.UpdatedAt = now
}
