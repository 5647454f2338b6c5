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

type PurchaseHandler struct {
	purchases repository.PurchaseRepository
	log       *zap.Logger
}

func NewPurchaseHandler(purchases repository.PurchaseRepository, log *zap.Logger) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases, log: log}
}

// Create records a purchase offer for the authenticated buyer. The record
// starts initiated; payment completion is a later, independent patch.
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var p models.PurchaseRecord
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if p.PropertyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "propertyId is required"})
	}
	if p.OfferedAmount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "offeredAmount must be positive"})
	}
	p.ID = primitive.NilObjectID
	p.BuyerEmail = middleware.AuthedEmail(c)
	if p.BuyerName == "" {
		p.BuyerName = middleware.AuthedName(c)
	}
	p.Status = models.PurchaseInitiated
	p.TransactionID = ""
	p.PaymentDate = ""
	id, err := h.purchases.Insert(c.Context(), &p)
	if err != nil {
		h.log.Error("purchase insert failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(fiber.Map{"insertedId": id.Hex()})
}

// ListByBuyer returns the authenticated buyer's purchase records.
func (h *PurchaseHandler) ListByBuyer(c *fiber.Ctx) error {
	records, err := h.purchases.FindByBuyer(c.Context(), c.Params("email"))
	if err != nil {
		h.log.Error("buyer purchase list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(records)
}

// ListByAgent returns offers made against the authenticated agent's listings.
func (h *PurchaseHandler) ListByAgent(c *fiber.Ctx) error {
	records, err := h.purchases.FindByAgent(c.Context(), c.Params("email"))
	if err != nil {
		h.log.Error("agent purchase list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(records)
}

// Get returns a single purchase record by id.
func (h *PurchaseHandler) Get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	p, err := h.purchases.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "purchase not found"})
		}
		h.log.Error("purchase lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(p)
}

type paymentReq struct {
	TransactionID string `json:"transactionId"`
	PaymentDate   string `json:"paymentDate"`
}

// SetPayment patches a record with payment completion fields and moves it
// to bought.
func (h *PurchaseHandler) SetPayment(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	var req paymentReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if req.TransactionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "transactionId is required"})
	}
	modified, err := h.purchases.SetPayment(c.Context(), id, req.TransactionID, req.PaymentDate)
	if err != nil {
		h.log.Error("payment update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.JSON(fiber.Map{"modifiedCount": modified})
}
