package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Recovery converts a handler panic into a 500 response instead of
// tearing down the connection.
func Recovery(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r))
				_ = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": "internal error",
				})
			}
		}()
		return c.Next()
	}
}
