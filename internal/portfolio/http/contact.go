package http

import (
	"net/http"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
	"github.com/tech2saini/portfolio/internal/portfolio/service"
	"github.com/tech2saini/portfolio/pkg/httpx"
	"github.com/tech2saini/portfolio/pkg/slogx"
)

// ContactHandler takes public contact-form submissions and serves the
// authenticated inbox.
type ContactHandler struct {
	Contact *service.ContactService
}

// HandleSubmit handles POST /api/contact
//
//	@Summary	Submit a contact message
//	@Tags		Contact
//	@Accept		json
//	@Produce	json
//	@Param		request	body		contactRequest	true	"name, email, subject, message; phone optional"
//	@Success	201		{object}	domain.ContactMessage
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/contact [post].
func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req contactRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Name, email, subject, and message are required")
		return
	}

	msg, err := h.Contact.Submit(ctx, domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		slogx.FromContext(ctx).Error("contact submission failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, msg)
}

// HandleList handles GET /api/contact
//
//	@Summary	List contact messages
//	@Tags		Contact
//	@Produce	json
//	@Success	200	{array}		domain.ContactMessage
//	@Failure	401	{object}	ErrorResponse
//	@Router		/api/contact [get].
func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.Contact.List(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to list contact messages", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, msgs)
}
