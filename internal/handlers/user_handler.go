package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/SiamIslamSagor/prime-property-plus-server/internal/models"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/repository"
)

type UserHandler struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserHandler(users repository.UserRepository, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// Create registers a user on first sign-in. A repeated create for the same
// email is a no-op reported with a nil insertedId.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var u models.User
	if err := c.BodyParser(&u); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if u.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email is required"})
	}
	u.ID = primitive.NilObjectID
	id, err := h.users.Insert(c.Context(), &u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(fiber.Map{"message": "user already exists in P P P", "insertedId": nil})
		}
		h.log.Error("user insert failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(fiber.Map{"insertedId": id.Hex()})
}

// List returns every user. Admin only.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.users.FindAll(c.Context())
	if err != nil {
		h.log.Error("user list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(users)
}

type roleReq struct {
	Role string `json:"role"`
}

// SetRole patches a user's role. Admin only.
func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	var req roleReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if req.Role != models.RoleAgent && req.Role != models.RoleAdmin && req.Role != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown role"})
	}
	modified, err := h.users.SetRole(c.Context(), id, req.Role)
	if err != nil {
		h.log.Error("role update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(fiber.Map{"modifiedCount": modified})
}

// IsAdmin reports whether the addressed user holds the admin role.
func (h *UserHandler) IsAdmin(c *fiber.Ctx) error {
	return h.hasRole(c, models.RoleAdmin, "admin")
}

// IsAgent reports whether the addressed user holds the agent role.
func (h *UserHandler) IsAgent(c *fiber.Ctx) error {
	return h.hasRole(c, models.RoleAgent, "agent")
}

func (h *UserHandler) hasRole(c *fiber.Ctx, role, key string) error {
	u, err := h.users.FindByEmail(c.Context(), c.Params("email"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(fiber.Map{key: false})
		}
		h.log.Error("user lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(fiber.Map{key: u.Role == role})
}
