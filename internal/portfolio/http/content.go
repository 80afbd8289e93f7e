package http

import (
	"errors"
	"net/http"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/service"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
	"github.com/tech2saini/portfolio/pkg/httpx"
	"github.com/tech2saini/portfolio/pkg/slogx"
)

// ContentHandler serves the portfolio entities. Reads are public; writes
// sit behind RequireSession in the router.
type ContentHandler struct {
	Content *service.ContentService
}

func (h *ContentHandler) writeStoreError(w http.ResponseWriter, r *http.Request, err error, what string) {
	if errors.Is(err, store.ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	slogx.FromContext(r.Context()).Error("content operation failed", "entity", what, "error", err)
	httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
}

// HandleListSkills handles GET /api/skills
//
//	@Summary	List skills
//	@Tags		Content
//	@Produce	json
//	@Success	200	{array}	domain.Skill
//	@Router		/api/skills [get].
func (h *ContentHandler) HandleListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.Content.ListSkills(r.Context())
	if err != nil {
		h.writeStoreError(w, r, err, "skill")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, skills)
}

// HandleCreateSkill handles POST /api/skills
//
//	@Summary	Create a skill
//	@Tags		Content
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	domain.Skill
//	@Failure	400	{object}	ErrorResponse
//	@Router		/api/skills [post].
func (h *ContentHandler) HandleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var sk domain.Skill
	if err := httpx.DecodeJSON(r, &sk); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.Content.CreateSkill(r.Context(), sk)
	if err != nil {
		h.writeStoreError(w, r, err, "skill")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdateSkill handles PUT /api/skills/{id}
//
//	@Summary	Update a skill
//	@Tags		Content
//	@Accept		json
//	@Produce	json
//	@Param		id	path		string	true	"skill id"
//	@Success	200	{object}	domain.Skill
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/skills/{id} [put].
func (h *ContentHandler) HandleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	var patch domain.SkillPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	updated, err := h.Content.UpdateSkill(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		h.writeStoreError(w, r, err, "skill")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDeleteSkill handles DELETE /api/skills/{id}
//
//	@Summary	Delete a skill
//	@Tags		Content
//	@Param		id	path	string	true	"skill id"
//	@Success	200	{object}	successResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/skills/{id} [delete].
func (h *ContentHandler) HandleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := h.Content.DeleteSkill(r.Context(), r.PathValue("id")); err != nil {
		h.writeStoreError(w, r, err, "skill")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

// HandleListServices handles GET /api/services
//
//	@Summary	List services
//	@Tags		Content
//	@Produce	json
//	@Success	200	{array}	domain.Service
//	@Router		/api/services [get].
func (h *ContentHandler) HandleListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Content.ListServices(r.Context())
	if err != nil {
		h.writeStoreError(w, r, err, "service")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, services)
}

// HandleCreateService handles POST /api/services.
func (h *ContentHandler) HandleCreateService(w http.ResponseWriter, r *http.Request) {
	var sv domain.Service
	if err := httpx.DecodeJSON(r, &sv); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.Content.CreateService(r.Context(), sv)
	if err != nil {
		h.writeStoreError(w, r, err, "service")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdateService handles PUT /api/services/{id}.
func (h *ContentHandler) HandleUpdateService(w http.ResponseWriter, r *http.Request) {
	var patch domain.ServicePatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	updated, err := h.Content.UpdateService(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		h.writeStoreError(w, r, err, "service")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDeleteService handles DELETE /api/services/{id}.
func (h *ContentHandler) HandleDeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.Content.DeleteService(r.Context(), r.PathValue("id")); err != nil {
		h.writeStoreError(w, r, err, "service")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

// HandleListProjects handles GET /api/projects
//
//	@Summary	List projects
//	@Tags		Content
//	@Produce	json
//	@Success	200	{array}	domain.Project
//	@Router		/api/projects [get].
func (h *ContentHandler) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Content.ListProjects(r.Context())
	if err != nil {
		h.writeStoreError(w, r, err, "project")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, projects)
}

// HandleGetProject handles GET /api/projects/{id}.
func (h *ContentHandler) HandleGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.Content.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeStoreError(w, r, err, "project")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// HandleGetProjectBySlug handles GET /api/projects/slug/{slug}. The slug is
// the project title.
func (h *ContentHandler) HandleGetProjectBySlug(w http.ResponseWriter, r *http.Request) {
	p, err := h.Content.GetProjectBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		h.writeStoreError(w, r, err, "project")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// HandleCreateProject handles POST /api/projects.
func (h *ContentHandler) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	var p domain.Project
	if err := httpx.DecodeJSON(r, &p); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.Content.CreateProject(r.Context(), p)
	if err != nil {
		h.writeStoreError(w, r, err, "project")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdateProject handles PUT /api/projects/{id}.
func (h *ContentHandler) HandleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var patch domain.ProjectPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	updated, err := h.Content.UpdateProject(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		h.writeStoreError(w, r, err, "project")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDeleteProject handles DELETE /api/projects/{id}.
func (h *ContentHandler) HandleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.Content.DeleteProject(r.Context(), r.PathValue("id")); err != nil {
		h.writeStoreError(w, r, err, "project")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

// HandleListExperiences handles GET /api/experiences
//
//	@Summary	List experiences
//	@Tags		Content
//	@Produce	json
//	@Success	200	{array}	domain.Experience
//	@Router		/api/experiences [get].
func (h *ContentHandler) HandleListExperiences(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.Content.ListExperiences(r.Context())
	if err != nil {
		h.writeStoreError(w, r, err, "experience")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, experiences)
}

// HandleCreateExperience handles POST /api/experiences.
func (h *ContentHandler) HandleCreateExperience(w http.ResponseWriter, r *http.Request) {
	var e domain.Experience
	if err := httpx.DecodeJSON(r, &e); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.Content.CreateExperience(r.Context(), e)
	if err != nil {
		h.writeStoreError(w, r, err, "experience")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdateExperience handles PUT /api/experiences/{id}.
func (h *ContentHandler) HandleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	var patch domain.ExperiencePatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	updated, err := h.Content.UpdateExperience(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		h.writeStoreError(w, r, err, "experience")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDeleteExperience handles DELETE /api/experiences/{id}.
func (h *ContentHandler) HandleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	if err := h.Content.DeleteExperience(r.Context(), r.PathValue("id")); err != nil {
		h.writeStoreError(w, r, err, "experience")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

// HandleListBlogPosts handles GET /api/blog
//
//	@Summary		List blog posts
//	@Description	Published posts only for anonymous callers. Authenticated callers may pass ?includeDrafts=true.
//	@Tags			Content
//	@Produce		json
//	@Param			includeDrafts	query	bool	false	"include unpublished posts (requires session)"
//	@Success		200	{array}	domain.BlogPost
//	@Router			/api/blog [get].
func (h *ContentHandler) HandleListBlogPosts(w http.ResponseWriter, r *http.Request) {
	_, authed := userID(r)
	includeDrafts := authed && r.URL.Query().Get("includeDrafts") == "true"

	posts, err := h.Content.ListBlogPosts(r.Context(), includeDrafts)
	if err != nil {
		h.writeStoreError(w, r, err, "blog post")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, posts)
}

// HandleGetBlogPost handles GET /api/blog/{id}.
func (h *ContentHandler) HandleGetBlogPost(w http.ResponseWriter, r *http.Request) {
	b, err := h.Content.GetBlogPost(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeStoreError(w, r, err, "blog post")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

// HandleGetBlogPostBySlug handles GET /api/blog/slug/{slug}.
func (h *ContentHandler) HandleGetBlogPostBySlug(w http.ResponseWriter, r *http.Request) {
	b, err := h.Content.GetBlogPostBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		h.writeStoreError(w, r, err, "blog post")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

// HandleCreateBlogPost handles POST /api/blog.
func (h *ContentHandler) HandleCreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var b domain.BlogPost
	if err := httpx.DecodeJSON(r, &b); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.Content.CreateBlogPost(r.Context(), b)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			httpx.WriteError(w, http.StatusBadRequest, "Slug already in use")
			return
		}
		h.writeStoreError(w, r, err, "blog post")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdateBlogPost handles PUT /api/blog/{id}.
func (h *ContentHandler) HandleUpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	var patch domain.BlogPostPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	updated, err := h.Content.UpdateBlogPost(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			httpx.WriteError(w, http.StatusBadRequest, "Slug already in use")
			return
		}
		h.writeStoreError(w, r, err, "blog post")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDeleteBlogPost handles DELETE /api/blog/{id}.
func (h *ContentHandler) HandleDeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	if err := h.Content.DeleteBlogPost(r.Context(), r.PathValue("id")); err != nil {
		h.writeStoreError(w, r, err, "blog post")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}
