package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/SiamIslamSagor/prime-property-plus-server/internal/middleware"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/models"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/repository"
)

type ReviewHandler struct {
	reviews repository.ReviewRepository
	log     *zap.Logger
}

func NewReviewHandler(reviews repository.ReviewRepository, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, log: log}
}

// Add inserts a review authored by the authenticated user.
func (h *ReviewHandler) Add(c *fiber.Ctx) error {
	var r models.Review
	if err := c.BodyParser(&r); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if r.PropertyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "propertyId is required"})
	}
	r.ID = primitive.NilObjectID
	r.ReviewerEmail = middleware.AuthedEmail(c)
	if r.ReviewerName == "" {
		r.ReviewerName = middleware.AuthedName(c)
	}
	id, err := h.reviews.Insert(c.Context(), &r)
	if err != nil {
		h.log.Error("review insert failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(fiber.Map{"insertedId": id.Hex()})
}

// ListAll returns every review. Public.
func (h *ReviewHandler) ListAll(c *fiber.Ctx) error {
	reviews, err := h.reviews.FindAll(c.Context())
	if err != nil {
		h.log.Error("review list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(reviews)
}

// ListByReviewer returns the authenticated user's own reviews.
func (h *ReviewHandler) ListByReviewer(c *fiber.Ctx) error {
	reviews, err := h.reviews.FindByReviewer(c.Context(), c.Params("email"))
	if err != nil {
		h.log.Error("reviewer list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(reviews)
}

// ListByProperty returns reviews of a single property. Public.
func (h *ReviewHandler) ListByProperty(c *fiber.Ctx) error {
	reviews, err := h.reviews.FindByProperty(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Error("property review list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(reviews)
}

// Delete removes a review by id.
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	deleted, err := h.reviews.Delete(c.Context(), id)
	if err != nil {
		h.log.Error("review delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(fiber.Map{"deletedCount": deleted})
}
