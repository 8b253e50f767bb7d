package handler

import (
	"net/http"
	"time"

	"crm/config"
	"crm/internal/delivery/api/middleware"
	"crm/internal/delivery/api/response"
	"crm/internal/infra/auth"

	"github.com/labstack/echo/v4"
)

// TestHandler handles endpoints used to check the middleware chain locally
type TestHandler struct {
	cfg *config.Config
	now func() time.Time
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(cfg *config.Config) *TestHandler {
	return &TestHandler{cfg: cfg, now: time.Now}
}

// IssueTokenRequest asks for a development bearer token
type IssueTokenRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
}

// TestAuthMiddleware echoes the identity resolved by the auth middleware
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Identity not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"userID":  identity.UserID,
		"email":   identity.Email,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// IssueToken signs a short-lived HS256 token for the jwt auth provider
func (h *TestHandler) IssueToken(c echo.Context) error {
	if h.cfg.Auth == nil || h.cfg.Auth.Provider != config.AuthProviderJWT {
		return response.Forbidden(c, "FORBIDDEN", "Tokens are issued by the identity provider")
	}

	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token request")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	token, err := auth.IssueToken(h.cfg.SecretKey.Access, req.UserID, req.Email, h.now(), auth.DevTokenTTL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"access_token": token})
}
