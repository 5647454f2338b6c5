package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SiamIslamSagor/prime-property-plus-server/internal/auth"
)

type AuthHandler struct {
	tokens *auth.TokenManager
	log    *zap.Logger
}

func NewAuthHandler(tokens *auth.TokenManager, log *zap.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, log: log}
}

type tokenReq struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CreateToken issues a signed identity token for the posted claims.
func (h *AuthHandler) CreateToken(c *fiber.Ctx) error {
	var req tokenReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email is required"})
	}
	token, err := h.tokens.Issue(req.Email, req.Name)
	if err != nil {
		h.log.Error("token issue failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(fiber.Map{"token": token})
}
