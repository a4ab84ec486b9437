package handlers

import (
	"carehub/app"
	"carehub/middleware"
	"carehub/models"
	"carehub/services"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Register creates a regular user account and signs it in
func Register(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		result, err := a.Auth.Register(c.UserContext(), req)
		if err != nil {
			return handleServiceError(c, err, "Failed to register")
		}

		setTokenCookie(c, a, result)
		return created(c, fiber.Map{"user": result.User, "token": result.Token})
	}
}

// Login signs in with username and password
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		result, err := a.Auth.Login(c.UserContext(), req)
		if err != nil {
			return handleServiceError(c, err, "Failed to log in")
		}

		a.Logger.Info("user logged in", "user_id", result.User.ID, "role", string(result.User.Role))

		setTokenCookie(c, a, result)
		return success(c, fiber.Map{"user": result.User, "token": result.Token})
	}
}

// GoogleLogin signs in with a Google ID token from Google Identity Services
func GoogleLogin(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.GoogleLoginRequest
		if ok, err := bind(c, a, &req); !ok {
			return err
		}

		result, err := a.Auth.LoginWithGoogle(c.UserContext(), req.IDToken)
		if err != nil {
			return handleServiceError(c, err, "Failed to log in with Google")
		}

		setTokenCookie(c, a, result)
		return success(c, fiber.Map{"user": result.User, "token": result.Token})
	}
}

// Logout revokes the caller's token when one is present and clears the cookie
func Logout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a.Auth.Logout(middleware.GetClaims(c))

		c.Cookie(&fiber.Cookie{
			Name:     middleware.TokenCookie,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			Secure:   a.Config.IsProduction(),
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return success(c, fiber.Map{"message": "Logged out"})
	}
}

func setTokenCookie(c *fiber.Ctx, a *app.App, result *services.AuthResult) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.Claims.ExpiresAt.Time,
		HTTPOnly: true,
		Secure:   a.Config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
