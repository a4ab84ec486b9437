package handlers

import (
	"carehub/app"
	"carehub/middleware"
	"carehub/models"

	"github.com/gofiber/fiber/v2"
)

// GetAlerts lists all alerts with the caller's read flags
func GetAlerts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		alerts, err := a.Alerts.List(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch alerts")
		}
		return success(c, fiber.Map{"alerts": alerts})
	}
}

func GetUnreadAlertCount(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := a.Alerts.UnreadCount(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return handleServiceError(c, err, "Failed to count unread alerts")
		}
		return success(c, fiber.Map{"count": count})
	}
}

func GetAlert(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		alertID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid alert id")
		}

		alert, err := a.Alerts.Get(c.UserContext(), alertID, middleware.GetUserID(c))
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch alert")
		}
		return success(c, fiber.Map{"alert": alert})
	}
}

func CreateAlert(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.AlertRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		caller, _ := middleware.GetPrincipal(c)
		alert, err := a.Alerts.Create(c.UserContext(), caller, req)
		if err != nil {
			return handleServiceError(c, err, "Failed to create alert")
		}
		return created(c, fiber.Map{"alert": alert})
	}
}

func UpdateAlert(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		alertID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid alert id")
		}

		var req models.AlertRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		caller, _ := middleware.GetPrincipal(c)
		alert, err := a.Alerts.Update(c.UserContext(), caller, alertID, req)
		if err != nil {
			return handleServiceError(c, err, "Failed to update alert")
		}
		return success(c, fiber.Map{"alert": alert})
	}
}

func DeleteAlert(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		alertID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid alert id")
		}

		if err := a.Alerts.Delete(c.UserContext(), alertID); err != nil {
			return handleServiceError(c, err, "Failed to delete alert")
		}
		return success(c, fiber.Map{"message": "Alert deleted"})
	}
}

// MarkAlertRead is idempotent
func MarkAlertRead(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		alertID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid alert id")
		}

		if err := a.Alerts.MarkRead(c.UserContext(), alertID, middleware.GetUserID(c)); err != nil {
			return handleServiceError(c, err, "Failed to mark alert as read")
		}
		return success(c, fiber.Map{"message": "Alert marked as read"})
	}
}
