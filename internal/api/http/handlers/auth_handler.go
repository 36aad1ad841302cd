package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/videogames-portal/internal/api/dto"
	"github.com/spec-kit/videogames-portal/internal/session"
	apperrors "github.com/spec-kit/videogames-portal/pkg/util"
)

// minNameLength is the minimum trimmed length accepted at login.
const minNameLength = 2

// AuthHandler exposes the login view and token endpoints.
type AuthHandler struct {
	issuer *session.Issuer
	store  session.Store
}

// NewAuthHandler constructs handler.
func NewAuthHandler(issuer *session.Issuer, store session.Store) *AuthHandler {
	return &AuthHandler{issuer: issuer, store: store}
}

// LoginView handles GET /login.
func (h *AuthHandler) LoginView(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"view":    "login",
		"message": "enter your name to obtain an access token",
	})
}

// IssueToken handles POST /auth/token. Validation failures block
// issuance entirely; no delay is simulated for them.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	name := strings.TrimSpace(req.Name)
	if len(name) < minNameLength {
		return apperrors.NewValidationError(
			"name is required and must be at least 2 characters",
			map[string]any{"field": "name"},
		)
	}

	issued, err := h.issuer.Issue(c.UserContext(), name)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.AuthResponse{Token: string(issued.Token), ExpiresAt: issued.ExpiresAt},
	})
}

// Logout handles DELETE /auth/token, clearing the session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.store.Clear()
	return c.SendStatus(http.StatusNoContent)
}
