package middleware

import "github.com/gofiber/fiber/v2"

// Security sets browser hardening headers and disables caching outside the public pages.
func Security() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		c.Set("Content-Security-Policy", "default-src 'self'; script-src 'self' 'unsafe-inline' https://accounts.google.com; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self' https://accounts.google.com; frame-src https://accounts.google.com")
		if c.Path() != "/" && c.Path() != "/login" {
			c.Set("Cache-Control", "no-store")
		}
		return c.Next()
	}
}
