package http

import (
	"errors"
	"net/http"

	"github.com/tech2saini/portfolio/internal/portfolio/service"
	"github.com/tech2saini/portfolio/pkg/httpx"
	"github.com/tech2saini/portfolio/pkg/slogx"
)

// NewsletterHandler manages public subscribe/unsubscribe plus the
// authenticated subscriber listing.
type NewsletterHandler struct {
	Newsletter *service.NewsletterService
}

// HandleSubscribe handles POST /api/newsletter/subscribe
//
//	@Summary	Subscribe to the newsletter
//	@Tags		Newsletter
//	@Accept		json
//	@Produce	json
//	@Param		request	body		subscribeRequest	true	"email; name optional"
//	@Success	201		{object}	domain.NewsletterSubscriber
//	@Failure	400		{object}	ErrorResponse	"already subscribed"
//	@Router		/api/newsletter/subscribe [post].
func (h *NewsletterHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req subscribeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Email is required")
		return
	}

	sub, err := h.Newsletter.Subscribe(ctx, req.Email, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrAlreadySubscribed) {
			httpx.WriteError(w, http.StatusBadRequest, "Email already subscribed")
			return
		}
		slogx.FromContext(ctx).Error("subscribe failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, sub)
}

// HandleUnsubscribe handles POST /api/newsletter/unsubscribe
//
//	@Summary	Unsubscribe from the newsletter
//	@Tags		Newsletter
//	@Accept		json
//	@Produce	json
//	@Param		request	body		unsubscribeRequest	true	"email"
//	@Success	200		{object}	successResponse
//	@Failure	404		{object}	ErrorResponse	"email not subscribed"
//	@Router		/api/newsletter/unsubscribe [post].
func (h *NewsletterHandler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req unsubscribeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Newsletter.Unsubscribe(ctx, req.Email); err != nil {
		if errors.Is(err, service.ErrNotSubscribed) {
			httpx.WriteError(w, http.StatusNotFound, "Email not subscribed")
			return
		}
		slogx.FromContext(ctx).Error("unsubscribe failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

// HandleListSubscribers handles GET /api/newsletter/subscribers
//
//	@Summary	List active subscribers
//	@Tags		Newsletter
//	@Produce	json
//	@Success	200	{array}		domain.NewsletterSubscriber
//	@Failure	401	{object}	ErrorResponse
//	@Router		/api/newsletter/subscribers [get].
func (h *NewsletterHandler) HandleListSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Newsletter.ListActive(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to list subscribers", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, subs)
}
