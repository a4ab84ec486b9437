package handlers_test

import (
	"carehub/models"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := setupTestEnv(t, true)

	routes := []struct {
		method string
		path   string
	}{
		{fiber.MethodGet, "/users/me"},
		{fiber.MethodGet, "/users"},
		{fiber.MethodGet, "/alerts"},
		{fiber.MethodPost, "/alerts"},
		{fiber.MethodGet, "/chats/1/messages"},
		{fiber.MethodGet, "/medications"},
		{fiber.MethodGet, "/med-appointments/2025-01-01"},
		{fiber.MethodGet, "/notes"},
		{fiber.MethodDelete, "/feedbacks/1"},
		{fiber.MethodGet, "/weather"},
		{fiber.MethodGet, "/trivia"},
		{fiber.MethodGet, "/not-a-route"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			resp := env.do(t, rt.method, rt.path, "", nil)
			assert.Equal(t, fiber.StatusUnauthorized, resp.status)
		})
	}

	t.Run("Garbage token", func(t *testing.T) {
		resp := env.do(t, fiber.MethodGet, "/notes", "not.a.jwt", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.status)
	})
}

func TestPublicRoutes(t *testing.T) {
	env := setupTestEnv(t, true)

	for _, path := range []string{"/", "/login", "/health"} {
		resp := env.do(t, fiber.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusOK, resp.status, path)
	}
}

func TestRoleAuthorization(t *testing.T) {
	env := setupTestEnv(t, true)
	_, admin := env.seedUser(t, "admin", models.RoleAdmin)
	_, user := env.seedUser(t, "user", models.RoleUser)
	_, volunteer := env.seedUser(t, "volunteer", models.RoleVolunteer)

	note := map[string]string{"title": "Groceries", "content": "rice, eggs"}
	alert := map[string]string{"title": "Haze", "description": "Stay indoors", "category": "health"}
	feedback := map[string]interface{}{"title": "Great app", "message": "Thanks", "rating": 5}
	chat := map[string]string{"subject": "Need a ride"}

	tests := []struct {
		name           string
		token          string
		method         string
		path           string
		body           interface{}
		expectedStatus int
	}{
		{"User creates alert", user, fiber.MethodPost, "/alerts", alert, fiber.StatusForbidden},
		{"Volunteer creates alert", volunteer, fiber.MethodPost, "/alerts", alert, fiber.StatusForbidden},
		{"Admin creates alert", admin, fiber.MethodPost, "/alerts", alert, fiber.StatusCreated},
		{"User lists users", user, fiber.MethodGet, "/users", nil, fiber.StatusForbidden},
		{"Admin lists users", admin, fiber.MethodGet, "/users", nil, fiber.StatusOK},
		{"Admin lists medications", admin, fiber.MethodGet, "/medications", nil, fiber.StatusForbidden},
		{"Volunteer lists medications", volunteer, fiber.MethodGet, "/medications", nil, fiber.StatusForbidden},
		{"User lists medications", user, fiber.MethodGet, "/medications", nil, fiber.StatusOK},
		{"Volunteer lists appointments", volunteer, fiber.MethodGet, "/med-appointments", nil, fiber.StatusForbidden},
		{"User lists appointments", user, fiber.MethodGet, "/med-appointments", nil, fiber.StatusOK},
		{"User appointments by compact date", user, fiber.MethodGet, "/med-appointments/date/20250101", nil, fiber.StatusOK},
		{"User appointments by dashed path date", user, fiber.MethodGet, "/med-appointments/2025-01-01", nil, fiber.StatusForbidden},
		{"Admin opens chat", admin, fiber.MethodPost, "/chats", chat, fiber.StatusForbidden},
		{"User opens chat", user, fiber.MethodPost, "/chats", chat, fiber.StatusCreated},
		{"User accepts chat", user, fiber.MethodPut, "/chats/1/accept", nil, fiber.StatusForbidden},
		{"User deletes chat", user, fiber.MethodDelete, "/chats/1", nil, fiber.StatusForbidden},
		{"Admin submits feedback", admin, fiber.MethodPost, "/feedbacks", feedback, fiber.StatusForbidden},
		{"Volunteer submits feedback", volunteer, fiber.MethodPost, "/feedbacks", feedback, fiber.StatusCreated},
		{"User triages feedback", user, fiber.MethodPut, "/feedbacks/1/status", map[string]string{"status": "reviewed"}, fiber.StatusForbidden},
		{"Admin triages feedback", admin, fiber.MethodPut, "/feedbacks/1/status", map[string]string{"status": "reviewed"}, fiber.StatusOK},
		{"Every role writes notes", volunteer, fiber.MethodPost, "/notes", note, fiber.StatusCreated},
		{"Non numeric id is not a route", admin, fiber.MethodGet, "/notes/abc", nil, fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.do(t, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.expectedStatus, resp.status, string(resp.raw))
		})
	}
}

func TestUnmatchedRoutes(t *testing.T) {
	t.Run("Strict", func(t *testing.T) {
		env := setupTestEnv(t, true)
		_, token := env.seedUser(t, "user", models.RoleUser)

		resp := env.do(t, fiber.MethodGet, "/not-a-route", token, nil)
		assert.Equal(t, fiber.StatusForbidden, resp.status)

		resp = env.do(t, fiber.MethodGet, "/med-appointments/2025-01-01", token, nil)
		assert.Equal(t, fiber.StatusForbidden, resp.status)
	})

	t.Run("Lenient", func(t *testing.T) {
		env := setupTestEnv(t, false)
		_, token := env.seedUser(t, "user", models.RoleUser)

		resp := env.do(t, fiber.MethodGet, "/not-a-route", token, nil)
		assert.Equal(t, fiber.StatusNotFound, resp.status)

		// The med-appointments prefix is denied even when lenient
		resp = env.do(t, fiber.MethodGet, "/med-appointments/2025-01-01", token, nil)
		assert.Equal(t, fiber.StatusForbidden, resp.status)
	})
}

func TestBrowserRedirectsToLogin(t *testing.T) {
	env := setupTestEnv(t, true)

	req := httptest.NewRequest(fiber.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	resp := env.send(t, req)

	assert.Equal(t, fiber.StatusSeeOther, resp.status)
	assert.Equal(t, "/login", resp.headers.Get("Location"))
}

func TestBrowserGetsUnauthorizedOnAPIRoutes(t *testing.T) {
	env := setupTestEnv(t, true)

	for _, path := range []string{"/notes", "/alerts", "/med-appointments/2025-01-01"} {
		req := httptest.NewRequest(fiber.MethodGet, path, nil)
		req.Header.Set("Accept", "text/html,application/json;q=0.9")
		resp := env.send(t, req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.status, path)
		assert.Empty(t, resp.headers.Get("Location"), path)
	}
}

func TestHeadUsesGetRules(t *testing.T) {
	env := setupTestEnv(t, true)
	_, user := env.seedUser(t, "user", models.RoleUser)
	_, volunteer := env.seedUser(t, "volunteer", models.RoleVolunteer)

	resp := env.do(t, fiber.MethodHead, "/notes", user, nil)
	assert.Equal(t, fiber.StatusOK, resp.status)

	resp = env.do(t, fiber.MethodHead, "/medications", volunteer, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.status)
}
