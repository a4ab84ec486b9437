package middleware

import (
	"carehub/access"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Authorize checks the caller's role against the route table. It must run
// after AuthRequired. Routes the table does not know are refused with 403
// when strict is set and let through otherwise.
func Authorize(table *access.Table, strict bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization",
			})
		}

		switch table.Decide(c.Method(), c.Path(), principal.Role) {
		case access.Allow:
			return c.Next()
		case access.Deny:
			return forbidden(c)
		default:
			if strict {
				return forbidden(c)
			}
			slog.Warn("No authorization rule matched; allowing request",
				"method", c.Method(), "path", c.Path(), "role", string(principal.Role))
			return c.Next()
		}
	}
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": "Insufficient permissions",
	})
}
