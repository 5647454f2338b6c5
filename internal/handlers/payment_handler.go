package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SiamIslamSagor/prime-property-plus-server/internal/payment"
)

type PaymentHandler struct {
	intents payment.IntentCreator
	log     *zap.Logger
}

func NewPaymentHandler(intents payment.IntentCreator, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{intents: intents, log: log}
}

type intentReq struct {
	Price float64 `json:"price"`
}

// CreateIntent asks the processor for a charge intent over the posted price
// and returns only the client secret.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var req intentReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	secret, err := h.intents.CreateIntent(c.Context(), req.Price)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "price must be positive"})
		}
		h.log.Error("payment intent failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "payment intent failed"})
	}
	return c.JSON(fiber.Map{"clientSecret": secret})
}
