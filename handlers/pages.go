package handlers

import (
	"carehub/app"
	"carehub/middleware"
	"carehub/views"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
)

func HomePage(c *fiber.Ctx) error {
	return render(c, views.Index())
}

func LoginPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return render(c, views.Login(a.Config.GoogleClientID))
	}
}

// DashboardPage renders the caller's summary. Unauthenticated browsers are
// redirected to /login by AuthRequired before this runs.
func DashboardPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, _ := middleware.GetPrincipal(c)
		dashboard, err := a.Dashboard.Summary(c.UserContext(), caller)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to load dashboard", err)
		}
		return render(c, views.Dashboard(dashboard))
	}
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func render(c *fiber.Ctx, component templ.Component) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.UserContext(), c.Response().BodyWriter())
}
