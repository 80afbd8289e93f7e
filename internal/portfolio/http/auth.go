package http

import (
	"errors"
	"net/http"

	"github.com/tech2saini/portfolio/internal/portfolio/service"
	"github.com/tech2saini/portfolio/pkg/httpx"
	"github.com/tech2saini/portfolio/pkg/slogx"
)

const msgServerError = "Internal server error"

// AuthHandler covers registration, login, logout, the current-user lookup,
// and the 2FA lifecycle.
type AuthHandler struct {
	Auth     *service.AuthService
	Sessions *service.SessionManager

	// SecureCookies marks session cookies Secure; enabled in production.
	SecureCookies bool
}

// HandleRegister handles POST /api/auth/register
//
//	@Summary		Register a new account
//	@Description	Creates an account and starts a session. The password must be at least 8 characters.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest		true	"email, password, name"
//	@Success		201		{object}	domain.PublicUser	"public profile"
//	@Failure		400		{object}	ErrorResponse		"duplicate email or validation failure"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Email, password, and name are required")
		return
	}

	user, err := h.Auth.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserExists):
			httpx.WriteError(w, http.StatusBadRequest, "User already exists")
		case errors.Is(err, service.ErrPasswordTooShort):
			httpx.WriteError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		default:
			log.Error("registration failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		}
		return
	}

	token, sess, err := h.Sessions.Issue(ctx, user.ID)
	if err != nil {
		log.Error("failed to issue session", "user_id", user.ID, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	setSessionCookie(w, token, sess.ExpiresAt.Sub(sess.CreatedAt), h.SecureCookies)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, user.Public())
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Log in
//	@Description	Authenticates an email/password pair. Accounts with 2FA enabled must supply twoFactorCode; the first call without one returns {"requiresTwoFactor":true} and no session.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest		true	"email, password, optional twoFactorCode"
//	@Success		200		{object}	domain.PublicUser	"public profile, or {requiresTwoFactor:true}"
//	@Failure		401		{object}	ErrorResponse		"invalid credentials or 2FA code"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.Auth.Login(ctx, req.Email, req.Password, req.TwoFactorCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTwoFactorRequired):
			httpx.WriteJSON(w, http.StatusOK, requiresTwoFactorResponse{RequiresTwoFactor: true})
		case errors.Is(err, service.ErrInvalidTwoFactorCode):
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid 2FA code")
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			log.Error("login failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		}
		return
	}

	token, sess, err := h.Sessions.Issue(ctx, user.ID)
	if err != nil {
		log.Error("failed to issue session", "user_id", user.ID, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	setSessionCookie(w, token, sess.ExpiresAt.Sub(sess.CreatedAt), h.SecureCookies)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, user.Public())
}

// HandleLogout handles POST /api/auth/logout
//
//	@Summary		Log out
//	@Description	Destroys the presented session, if any. Idempotent.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	successResponse
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		if err := h.Sessions.Destroy(r.Context(), token); err != nil {
			slogx.FromContext(r.Context()).Warn("failed to destroy session", "error", err)
		}
	}
	clearSessionCookie(w, h.SecureCookies)
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

// HandleCurrentUser handles GET /api/auth/user
//
//	@Summary		Current user
//	@Description	Returns the public profile behind the session cookie.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	domain.PublicUser
//	@Failure		401	{object}	ErrorResponse	"not authenticated"
//	@Router			/api/auth/user [get].
func (h *AuthHandler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := userID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}

	user, err := h.Auth.CurrentUser(ctx, id)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load user", "user_id", id, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user.Public())
}

// HandleSetupTwoFactor handles POST /api/auth/setup-2fa
//
//	@Summary		Begin 2FA setup
//	@Description	Generates a TOTP secret and QR code for the authenticated user. Nothing is persisted until verify-2fa confirms a code.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	twoFactorSetupResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/api/auth/setup-2fa [post].
func (h *AuthHandler) HandleSetupTwoFactor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := userID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}

	enrollment, err := h.Auth.EnrollTwoFactor(ctx, id)
	if err != nil {
		slogx.FromContext(ctx).Error("2FA setup failed", "user_id", id, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, twoFactorSetupResponse{
		Secret:         enrollment.Secret,
		QRCode:         enrollment.QRCode,
		ManualEntryKey: enrollment.ManualEntryKey,
	})
}

// HandleVerifyTwoFactor handles POST /api/auth/verify-2fa
//
//	@Summary		Confirm 2FA setup
//	@Description	Validates the first code against the candidate secret and enables 2FA. A bad code changes nothing.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		verifyTwoFactorRequest	true	"token (6-digit code) and secret"
//	@Success		200		{object}	successResponse
//	@Failure		400		{object}	ErrorResponse	"invalid token"
//	@Failure		401		{object}	ErrorResponse
//	@Router			/api/auth/verify-2fa [post].
func (h *AuthHandler) HandleVerifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := userID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}

	var req verifyTwoFactorRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Auth.ConfirmTwoFactor(ctx, id, req.Secret, req.Token); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid token")
			return
		}
		slogx.FromContext(ctx).Error("2FA confirm failed", "user_id", id, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

// HandleDisableTwoFactor handles POST /api/auth/disable-2fa
//
//	@Summary		Disable 2FA
//	@Description	Clears the TOTP secret and flag for the authenticated user.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	successResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/api/auth/disable-2fa [post].
func (h *AuthHandler) HandleDisableTwoFactor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := userID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}

	if err := h.Auth.DisableTwoFactor(ctx, id); err != nil {
		slogx.FromContext(ctx).Error("2FA disable failed", "user_id", id, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

// HandleChangePassword handles POST /api/auth/change-password
//
//	@Summary		Change password
//	@Description	Verifies the current password, stores the new one, and revokes every other session.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		changePasswordRequest	true	"currentPassword, newPassword"
//	@Success		200		{object}	successResponse
//	@Failure		400		{object}	ErrorResponse	"wrong current password or weak new password"
//	@Failure		401		{object}	ErrorResponse
//	@Router			/api/auth/change-password [post].
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := userID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}

	var req changePasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Auth.ChangePassword(ctx, id, req.CurrentPassword, req.NewPassword, sessionToken(r)); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			httpx.WriteError(w, http.StatusBadRequest, "Current password is incorrect")
		case errors.Is(err, service.ErrPasswordTooShort):
			httpx.WriteError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		default:
			slogx.FromContext(ctx).Error("password change failed", "user_id", id, "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

// HandleUpdateProfile handles POST /api/auth/update-profile
//
//	@Summary		Update profile
//	@Description	Applies optional name and email changes. Re-submitting one's own email is a no-op.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		updateProfileRequest	true	"optional name and email"
//	@Success		200		{object}	domain.PublicUser		"updated public profile"
//	@Failure		400		{object}	ErrorResponse			"email already in use"
//	@Failure		401		{object}	ErrorResponse
//	@Router			/api/auth/update-profile [post].
func (h *AuthHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := userID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}

	var req updateProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.Auth.UpdateProfile(ctx, id, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) {
			httpx.WriteError(w, http.StatusBadRequest, "Email already in use")
			return
		}
		slogx.FromContext(ctx).Error("profile update failed", "user_id", id, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user.Public())
}
