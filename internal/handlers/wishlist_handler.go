package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/SiamIslamSagor/prime-property-plus-server/internal/middleware"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/models"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/repository"
)

type WishListHandler struct {
	wishes repository.WishListRepository
	log    *zap.Logger
}

func NewWishListHandler(wishes repository.WishListRepository, log *zap.Logger) *WishListHandler {
	return &WishListHandler{wishes: wishes, log: log}
}

// Add saves a property snapshot for the authenticated user. A property the
// user has already saved is reported with a nil insertedId.
func (h *WishListHandler) Add(c *fiber.Ctx) error {
	var w models.WishListEntry
	if err := c.BodyParser(&w); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if w.PropertyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "propertyId is required"})
	}
	w.ID = primitive.NilObjectID
	w.RequesterEmail = middleware.AuthedEmail(c)
	id, err := h.wishes.Insert(c.Context(), &w)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(fiber.Map{"message": "property already in wish list", "insertedId": nil})
		}
		h.log.Error("wish list insert failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(fiber.Map{"insertedId": id.Hex()})
}

// ListByRequester returns the authenticated user's saved properties.
func (h *WishListHandler) ListByRequester(c *fiber.Ctx) error {
	entries, err := h.wishes.FindByRequester(c.Context(), c.Params("email"))
	if err != nil {
		h.log.Error("wish list fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(entries)
}

// GetItem returns a single wish-list entry by id.
func (h *WishListHandler) GetItem(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	w, err := h.wishes.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "wish list item not found"})
		}
		h.log.Error("wish list lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(w)
}

// DeleteItem removes a wish-list entry by id.
func (h *WishListHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	deleted, err := h.wishes.Delete(c.Context(), id)
	if err != nil {
		h.log.Error("wish list delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(fiber.Map{"deletedCount": deleted})
}
