package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/SiamIslamSagor/prime-property-plus-server/internal/auth"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/repository"
)

// Locals keys set by RequireAuth for downstream handlers.
const (
	LocalEmail = "userEmail"
	LocalName  = "userName"
)

// RequireAuth verifies the Bearer token and stores the authenticated
// identity in the request locals.
func RequireAuth(tm *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized access"})
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized access"})
		}
		claims, err := tm.Verify(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized access"})
		}
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalName, claims.Name)
		return c.Next()
	}
}

// RequireRole gates a route on the stored role of the authenticated user.
// The lookup runs on every request; roles are never cached across requests.
func RequireRole(users repository.UserRepository, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := AuthedEmail(c)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized access"})
		}
		u, err := users.FindByEmail(c.Context(), email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
		}
		if u.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
		}
		return c.Next()
	}
}

// RequireSelf gates a route on the :email path parameter matching the
// authenticated identity.
func RequireSelf() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params("email") != AuthedEmail(c) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
		}
		return c.Next()
	}
}

// AuthedEmail returns the email RequireAuth stored, or "" when the route
// ran without authentication.
func AuthedEmail(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalEmail).(string); ok {
		return v
	}
	return ""
}

// AuthedName returns the display name RequireAuth stored, or "" when the
// route ran without authentication.
func AuthedName(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalName).(string); ok {
		return v
	}
	return ""
}
