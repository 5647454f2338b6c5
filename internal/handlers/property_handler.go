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

type PropertyHandler struct {
	properties repository.PropertyRepository
	log        *zap.Logger
}

func NewPropertyHandler(properties repository.PropertyRepository, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{properties: properties, log: log}
}

// Create inserts a new listing for the authenticated agent. Listings start
// pending and unadvertised regardless of the posted body.
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var p models.Property
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if p.Title == "" || p.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "title and location are required"})
	}
	p.ID = primitive.NilObjectID
	p.AgentEmail = middleware.AuthedEmail(c)
	p.VerificationStatus = models.VerificationPending
	p.Advertised = false
	id, err := h.properties.Insert(c.Context(), &p)
	if err != nil {
		h.log.Error("property insert failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(fiber.Map{"insertedId": id.Hex()})
}

// ListVerified returns listings an admin has verified. Public.
func (h *PropertyHandler) ListVerified(c *fiber.Ctx) error {
	props, err := h.properties.FindVerified(c.Context())
	if err != nil {
		h.log.Error("verified property list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(props)
}

// ListAll returns every listing regardless of status. Admin only.
func (h *PropertyHandler) ListAll(c *fiber.Ctx) error {
	props, err := h.properties.FindAll(c.Context())
	if err != nil {
		h.log.Error("property list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(props)
}

// ListAdvertised returns verified listings flagged for advertisement. Public.
func (h *PropertyHandler) ListAdvertised(c *fiber.Ctx) error {
	props, err := h.properties.FindAdvertised(c.Context())
	if err != nil {
		h.log.Error("advertised property list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(props)
}

// Details returns a single listing by id.
func (h *PropertyHandler) Details(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	p, err := h.properties.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "property not found"})
		}
		h.log.Error("property lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(p)
}

type statusReq struct {
	Status string `json:"status"`
}

// SetStatus patches a listing's verification status. The only transitions
// modeled are pending to verified or rejected.
func (h *PropertyHandler) SetStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	var req statusReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if req.Status != models.VerificationVerified && req.Status != models.VerificationRejected {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown status"})
	}
	modified, err := h.properties.SetVerificationStatus(c.Context(), id, req.Status)
	if err != nil {
		h.log.Error("status update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(fiber.Map{"modifiedCount": modified})
}

type advertiseReq struct {
	Advertise bool `json:"advertise"`
}

// SetAdvertised toggles the advertise flag on a listing. Admin only.
func (h *PropertyHandler) SetAdvertised(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	var req advertiseReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	modified, err := h.properties.SetAdvertised(c.Context(), id, req.Advertise)
	if err != nil {
		h.log.Error("advertise update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(fiber.Map{"modifiedCount": modified})
}

// ListByAgent returns the authenticated agent's own listings.
func (h *PropertyHandler) ListByAgent(c *fiber.Ctx) error {
	props, err := h.properties.FindByAgent(c.Context(), c.Params("email"))
	if err != nil {
		h.log.Error("agent property list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(props)
}

// Delete removes one of the authenticated agent's listings.
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	p, err := h.properties.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "property not found"})
		}
		h.log.Error("property lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	if p.AgentEmail != middleware.AuthedEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
	}
	deleted, err := h.properties.Delete(c.Context(), id)
	if err != nil {
		h.log.Error("property delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(fiber.Map{"deletedCount": deleted})
}
