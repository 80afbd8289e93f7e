package http

// Request and response payloads for the JSON API. Error responses are
// always `{"error": "..."}`; httpx.WriteError produces them.

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	TwoFactorCode string `json:"twoFactorCode,omitempty"`
}

type verifyTwoFactorRequest struct {
	Token  string `json:"token"`
	Secret string `json:"secret"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type updateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type subscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type unsubscribeRequest struct {
	Email string `json:"email"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type requiresTwoFactorResponse struct {
	RequiresTwoFactor bool `json:"requiresTwoFactor"`
}

type twoFactorSetupResponse struct {
	Secret         string `json:"secret"`
	QRCode         string `json:"qrCode"`
	ManualEntryKey string `json:"manualEntryKey"`
}

// ErrorResponse documents the error body shape for swagger.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}
