package middleware

import (
	"carehub/models"
	"carehub/tokens"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// TokenCookie is the cookie browsers carry the access token in
const TokenCookie = "token"

// TokenParser verifies a signed access token
type TokenParser interface {
	Parse(token string) (*tokens.Claims, error)
}

// RevocationChecker reports whether a token id has been logged out
type RevocationChecker interface {
	IsRevoked(tokenID string) bool
}

// AuthRequired rejects requests without a valid, unrevoked token with 401.
// The token is read from the Authorization header first, then the token cookie.
func AuthRequired(parser TokenParser, revoked RevocationChecker) fiber.Handler {
	return authenticate(parser, revoked, unauthorized)
}

// PageAuthRequired guards server-rendered pages: instead of a 401 the
// browser is sent to the login page.
func PageAuthRequired(parser TokenParser, revoked RevocationChecker) fiber.Handler {
	return authenticate(parser, revoked, func(c *fiber.Ctx, _ string) error {
		return c.Redirect("/login", fiber.StatusSeeOther)
	})
}

func authenticate(parser TokenParser, revoked RevocationChecker, reject func(c *fiber.Ctx, message string) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := extractToken(c)
		if err != nil {
			return reject(c, err.Error())
		}
		if raw == "" {
			return reject(c, "Missing authorization")
		}

		claims, err := parser.Parse(raw)
		if err != nil {
			c.ClearCookie(TokenCookie)
			return reject(c, "Invalid or expired token")
		}

		if revoked != nil && revoked.IsRevoked(claims.RegisteredClaims.ID) {
			c.ClearCookie(TokenCookie)
			return reject(c, "Token has been revoked")
		}

		setClaims(c, claims)
		return c.Next()
	}
}

// OptionalAuth attaches the caller when a valid token is present and never rejects
func OptionalAuth(parser TokenParser, revoked RevocationChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := extractToken(c)
		if err != nil || raw == "" {
			return c.Next()
		}

		claims, err := parser.Parse(raw)
		if err != nil {
			return c.Next()
		}
		if revoked != nil && revoked.IsRevoked(claims.RegisteredClaims.ID) {
			return c.Next()
		}

		setClaims(c, claims)
		return c.Next()
	}
}

type headerError string

func (e headerError) Error() string { return string(e) }

func extractToken(c *fiber.Ctx) (string, error) {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", headerError("Invalid authorization header format")
		}
		return parts[1], nil
	}
	return c.Cookies(TokenCookie), nil
}

func setClaims(c *fiber.Ctx, claims *tokens.Claims) {
	c.Locals("userID", claims.ID)
	c.Locals("principal", claims.Principal())
	c.Locals("claims", claims)
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
	})
}

func GetUserID(c *fiber.Ctx) int64 {
	userID, ok := c.Locals("userID").(int64)
	if !ok {
		return 0
	}
	return userID
}

// GetPrincipal returns the authenticated caller; ok is false on public routes
func GetPrincipal(c *fiber.Ctx) (models.Principal, bool) {
	p, ok := c.Locals("principal").(models.Principal)
	return p, ok
}

func GetClaims(c *fiber.Ctx) *tokens.Claims {
	claims, _ := c.Locals("claims").(*tokens.Claims)
	return claims
}
