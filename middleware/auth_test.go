package middleware

import (
	"carehub/access"
	"carehub/models"
	"carehub/session"
	"carehub/tokens"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthApp(t *testing.T, strict bool) (*fiber.App, *tokens.Issuer, *session.Store) {
	t.Helper()

	issuer := tokens.NewIssuer("middleware-secret", "carehub", time.Hour)
	store := session.NewStore()
	table := access.MustNewTable([]access.Rule{
		access.NewRule("GET /notes", models.RoleAdmin, models.RoleUser, models.RoleVolunteer),
		access.NewRule("POST /alerts", models.RoleAdmin),
	}, "/med-appointments")

	app := fiber.New()
	app.Use(AuthRequired(issuer, store), Authorize(table, strict))

	ok := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": GetUserID(c)})
	}
	app.Get("/notes", ok)
	app.Post("/alerts", ok)
	app.Get("/unlisted", ok)
	app.Get("/med-appointments/:any", ok)

	return app, issuer, store
}

func issueFor(t *testing.T, issuer *tokens.Issuer, role models.Role) (string, *tokens.Claims) {
	t.Helper()
	token, claims, err := issuer.Issue(&models.User{ID: 42, Username: "tester", Role: role})
	require.NoError(t, err)
	return token, claims
}

func TestAuthRequired(t *testing.T) {
	app, issuer, store := setupAuthApp(t, true)
	token, claims := issueFor(t, issuer, models.RoleUser)

	tests := []struct {
		name           string
		setup          func(req *http.Request)
		expectedStatus int
	}{
		{"No token", func(req *http.Request) {}, fiber.StatusUnauthorized},
		{"Malformed header", func(req *http.Request) { req.Header.Set("Authorization", "Token abc") }, fiber.StatusUnauthorized},
		{"Garbage token", func(req *http.Request) { req.Header.Set("Authorization", "Bearer abc.def.ghi") }, fiber.StatusUnauthorized},
		{"Bearer header", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) }, fiber.StatusOK},
		{"Cookie", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token}) }, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/notes", nil)
			tt.setup(req)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}

	t.Run("Expired token", func(t *testing.T) {
		expired, _, err := issuer.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).
			Issue(&models.User{ID: 42, Username: "tester", Role: models.RoleUser})
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/notes", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Revoked token", func(t *testing.T) {
		store.Revoke(claims.RegisteredClaims.ID, claims.ExpiresAt.Time)

		req := httptest.NewRequest("GET", "/notes", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Browser navigation still gets 401 on API routes", func(t *testing.T) {
		for _, path := range []string{"/notes", "/med-appointments/2025-01-01"} {
			req := httptest.NewRequest("GET", path, nil)
			req.Header.Set("Accept", "text/html,application/json;q=0.9")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
			assert.Empty(t, resp.Header.Get("Location"))
		}
	})
}

func TestPageAuthRequired(t *testing.T) {
	issuer := tokens.NewIssuer("middleware-secret", "carehub", time.Hour)
	token, _ := issueFor(t, issuer, models.RoleUser)

	app := fiber.New()
	app.Get("/dashboard", PageAuthRequired(issuer, session.NewStore()), func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})

	req := httptest.NewRequest("GET", "/dashboard", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	req = httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name           string
		strict         bool
		role           models.Role
		method         string
		path           string
		expectedStatus int
	}{
		{"Allowed role", true, models.RoleVolunteer, "GET", "/notes", fiber.StatusOK},
		{"Role outside allow-list", true, models.RoleUser, "POST", "/alerts", fiber.StatusForbidden},
		{"Admin on admin route", true, models.RoleAdmin, "POST", "/alerts", fiber.StatusOK},
		{"Unlisted route when strict", true, models.RoleAdmin, "GET", "/unlisted", fiber.StatusForbidden},
		{"Unlisted route when lenient", false, models.RoleAdmin, "GET", "/unlisted", fiber.StatusOK},
		{"Med appointments default deny when lenient", false, models.RoleUser, "GET", "/med-appointments/2025-01-01", fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, issuer, _ := setupAuthApp(t, tt.strict)
			token, _ := issueFor(t, issuer, tt.role)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	issuer := tokens.NewIssuer("middleware-secret", "carehub", time.Hour)
	token, _ := issueFor(t, issuer, models.RoleUser)

	app := fiber.New()
	app.Use(OptionalAuth(issuer, session.NewStore()))
	app.Get("/", func(c *fiber.Ctx) error {
		_, ok := GetPrincipal(c)
		return c.JSON(fiber.Map{"authenticated": ok})
	})

	for name, header := range map[string]string{"anonymous": "", "garbage": "Bearer nope", "valid": "Bearer " + token} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		})
	}
}
