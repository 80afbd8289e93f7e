package http

import (
	"errors"
	"net/http"

	"github.com/tech2saini/portfolio/internal/portfolio/service"
	"github.com/tech2saini/portfolio/pkg/httpx"
	"github.com/tech2saini/portfolio/pkg/slogx"
)

// PasswordResetHandler covers the unauthenticated forgot/reset flow.
type PasswordResetHandler struct {
	Resets *service.PasswordResetService
}

// HandleForgotPassword handles POST /api/auth/forgot-password
//
//	@Summary		Request a password reset
//	@Description	Always answers with a generic success so the endpoint cannot confirm whether an email is registered.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		forgotPasswordRequest	true	"email"
//	@Success		200		{object}	messageResponse
//	@Router			/api/auth/forgot-password [post].
func (h *PasswordResetHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req forgotPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Resets.Request(ctx, req.Email); err != nil {
		// Still answer generically; the failure is ours, not the caller's
		// to learn from.
		slogx.FromContext(ctx).Error("reset request failed", "error", err)
	}
	httpx.WriteJSON(w, http.StatusOK, messageResponse{
		Message: "If an account exists for that email, a reset link has been sent",
	})
}

// HandleResetPassword handles POST /api/auth/reset-password
//
//	@Summary		Redeem a password reset token
//	@Description	Sets a new password and revokes all sessions of the account. Tokens are single-use and expire after an hour.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		resetPasswordRequest	true	"token, newPassword"
//	@Success		200		{object}	successResponse
//	@Failure		400		{object}	ErrorResponse	"invalid, expired, or spent token"
//	@Router			/api/auth/reset-password [post].
func (h *PasswordResetHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req resetPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Resets.Reset(ctx, req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid token")
		case errors.Is(err, service.ErrPasswordTooShort):
			httpx.WriteError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		default:
			slogx.FromContext(ctx).Error("password reset failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}
