package handlers_test

import (
	"carehub/models"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteRoundTrip(t *testing.T) {
	env := setupTestEnv(t, true)
	_, token := env.seedUser(t, "writer", models.RoleVolunteer)

	resp := env.do(t, fiber.MethodPost, "/notes", token, map[string]string{"title": "Pharmacy", "content": "Pick up refill on Friday"})
	require.Equal(t, fiber.StatusCreated, resp.status, string(resp.raw))
	var created models.Note
	resp.field(t, "note", &created)

	resp = env.do(t, fiber.MethodGet, fmt.Sprintf("/notes/%d", created.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.status)
	var fetched models.Note
	resp.field(t, "note", &fetched)

	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.UserID, fetched.UserID)
	assert.Equal(t, "Pharmacy", fetched.Title)
	assert.Equal(t, "Pick up refill on Friday", fetched.Content)

	resp = env.do(t, fiber.MethodPut, fmt.Sprintf("/notes/%d", created.ID), token, map[string]string{"title": "Pharmacy", "content": "Done"})
	require.Equal(t, fiber.StatusOK, resp.status)

	resp = env.do(t, fiber.MethodGet, "/notes?q=pharm", token, nil)
	require.Equal(t, fiber.StatusOK, resp.status)
	var notes []models.Note
	resp.field(t, "notes", &notes)
	require.Len(t, notes, 1)
	assert.Equal(t, "Done", notes[0].Content)

	resp = env.do(t, fiber.MethodGet, "/notes?q=%25", token, nil)
	require.Equal(t, fiber.StatusOK, resp.status)
	resp.field(t, "notes", &notes)
	assert.Empty(t, notes, "LIKE wildcards in the query are literal")

	resp = env.do(t, fiber.MethodDelete, fmt.Sprintf("/notes/%d", created.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.status)

	resp = env.do(t, fiber.MethodGet, fmt.Sprintf("/notes/%d", created.ID), token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.status)
}

func TestOwnership(t *testing.T) {
	env := setupTestEnv(t, true)
	_, owner := env.seedUser(t, "owner", models.RoleUser)
	_, other := env.seedUser(t, "other", models.RoleUser)
	_, admin := env.seedUser(t, "admin", models.RoleAdmin)

	resp := env.do(t, fiber.MethodPost, "/notes", owner, map[string]string{"title": "Private"})
	require.Equal(t, fiber.StatusCreated, resp.status)
	var note models.Note
	resp.field(t, "note", &note)

	resp = env.do(t, fiber.MethodPost, "/medications", owner, map[string]string{
		"name": "Metformin", "dosage": "500mg", "frequency": "twice daily", "start_date": "2025-01-01",
	})
	require.Equal(t, fiber.StatusCreated, resp.status, string(resp.raw))
	var med models.Medication
	resp.field(t, "medication", &med)

	resp = env.do(t, fiber.MethodPost, "/feedbacks", owner, map[string]string{"title": "Bug", "message": "Button is tiny"})
	require.Equal(t, fiber.StatusCreated, resp.status)
	var feedback models.Feedback
	resp.field(t, "feedback", &feedback)

	tests := []struct {
		name           string
		token          string
		method         string
		path           string
		body           interface{}
		expectedStatus int
	}{
		{"Other reads note", other, fiber.MethodGet, fmt.Sprintf("/notes/%d", note.ID), nil, fiber.StatusForbidden},
		{"Other updates note", other, fiber.MethodPut, fmt.Sprintf("/notes/%d", note.ID), map[string]string{"title": "Mine"}, fiber.StatusForbidden},
		{"Other deletes note", other, fiber.MethodDelete, fmt.Sprintf("/notes/%d", note.ID), nil, fiber.StatusForbidden},
		{"Missing note", other, fiber.MethodGet, "/notes/9999", nil, fiber.StatusNotFound},
		{"Other reads medication", other, fiber.MethodGet, fmt.Sprintf("/medications/%d", med.ID), nil, fiber.StatusForbidden},
		{"Other deletes medication", other, fiber.MethodDelete, fmt.Sprintf("/medications/%d", med.ID), nil, fiber.StatusForbidden},
		{"Other reads feedback", other, fiber.MethodGet, fmt.Sprintf("/feedbacks/%d", feedback.ID), nil, fiber.StatusForbidden},
		{"Admin reads feedback", admin, fiber.MethodGet, fmt.Sprintf("/feedbacks/%d", feedback.ID), nil, fiber.StatusOK},
		{"Owner reads note", owner, fiber.MethodGet, fmt.Sprintf("/notes/%d", note.ID), nil, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.do(t, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.expectedStatus, resp.status, string(resp.raw))
		})
	}

	t.Run("Feedback listing is scoped", func(t *testing.T) {
		var list []models.Feedback

		resp := env.do(t, fiber.MethodGet, "/feedbacks", other, nil)
		require.Equal(t, fiber.StatusOK, resp.status)
		resp.field(t, "feedbacks", &list)
		assert.Empty(t, list)

		resp = env.do(t, fiber.MethodGet, "/feedbacks?status=new", admin, nil)
		require.Equal(t, fiber.StatusOK, resp.status)
		resp.field(t, "feedbacks", &list)
		assert.Len(t, list, 1)
	})
}

func TestMedicationRoundTrip(t *testing.T) {
	env := setupTestEnv(t, true)
	_, token := env.seedUser(t, "patient", models.RoleUser)

	body := map[string]string{
		"name":         "Amlodipine",
		"dosage":       "5mg",
		"frequency":    "once daily",
		"start_date":   "2025-02-01",
		"end_date":     "2025-08-01",
		"instructions": "Take after breakfast",
	}

	resp := env.do(t, fiber.MethodPost, "/medications", token, body)
	require.Equal(t, fiber.StatusCreated, resp.status, string(resp.raw))
	var created models.Medication
	resp.field(t, "medication", &created)

	resp = env.do(t, fiber.MethodGet, fmt.Sprintf("/medications/%d", created.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.status)
	var fetched models.Medication
	resp.field(t, "medication", &fetched)

	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, body["name"], fetched.Name)
	assert.Equal(t, body["dosage"], fetched.Dosage)
	assert.Equal(t, body["frequency"], fetched.Frequency)
	assert.Equal(t, body["start_date"], fetched.StartDate)
	assert.Equal(t, body["end_date"], fetched.EndDate)
	assert.Equal(t, body["instructions"], fetched.Instructions)

	body["end_date"] = "2024-12-31"
	resp = env.do(t, fiber.MethodPut, fmt.Sprintf("/medications/%d", created.ID), token, body)
	assert.Equal(t, fiber.StatusBadRequest, resp.status, "end date before start date")

	body["start_date"] = "2025-02-30"
	resp = env.do(t, fiber.MethodPost, "/medications", token, body)
	assert.Equal(t, fiber.StatusBadRequest, resp.status, "calendar-invalid date")
}

func TestAppointmentRoundTripAndFilters(t *testing.T) {
	env := setupTestEnv(t, true)
	_, token := env.seedUser(t, "patient", models.RoleUser)

	appointments := []map[string]string{
		{"doctor_name": "Dr Lee", "location": "Clinic A", "appointment_date": "2025-01-01", "appointment_time": "09:30", "purpose": "Checkup"},
		{"doctor_name": "Dr Ong", "location": "Clinic B", "appointment_date": "2025-01-01", "appointment_time": "08:00", "purpose": "Bloods"},
		{"doctor_name": "Dr Lim", "location": "Hospital", "appointment_date": "2025-01-15", "appointment_time": "14:00"},
	}

	var first models.MedAppointment
	for i, body := range appointments {
		resp := env.do(t, fiber.MethodPost, "/med-appointments", token, body)
		require.Equal(t, fiber.StatusCreated, resp.status, string(resp.raw))
		if i == 0 {
			resp.field(t, "appointment", &first)
		}
	}

	resp := env.do(t, fiber.MethodGet, fmt.Sprintf("/med-appointments/%d", first.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.status)
	var fetched models.MedAppointment
	resp.field(t, "appointment", &fetched)
	assert.Equal(t, "Dr Lee", fetched.DoctorName)
	assert.Equal(t, "Clinic A", fetched.Location)
	assert.Equal(t, "2025-01-01", fetched.AppointmentDate)
	assert.Equal(t, "09:30", fetched.AppointmentTime)
	assert.Equal(t, "Checkup", fetched.Purpose)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedDocs   []string
	}{
		{"All ordered by date and time", "/med-appointments", fiber.StatusOK, []string{"Dr Ong", "Dr Lee", "Dr Lim"}},
		{"Single date", "/med-appointments?date=2025-01-01", fiber.StatusOK, []string{"Dr Ong", "Dr Lee"}},
		{"Range", "/med-appointments?from=2025-01-02&to=2025-01-31", fiber.StatusOK, []string{"Dr Lim"}},
		{"Compact date path", "/med-appointments/date/20250115", fiber.StatusOK, []string{"Dr Lim"}},
		{"Bad date", "/med-appointments?date=01-01-2025", fiber.StatusBadRequest, nil},
		{"Date mixed with range", "/med-appointments?date=2025-01-01&from=2025-01-01", fiber.StatusBadRequest, nil},
		{"Inverted range", "/med-appointments?from=2025-02-01&to=2025-01-01", fiber.StatusBadRequest, nil},
		{"Bad compact date", "/med-appointments/date/2025011", fiber.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.do(t, fiber.MethodGet, tt.path, token, nil)
			require.Equal(t, tt.expectedStatus, resp.status, string(resp.raw))
			if tt.expectedDocs == nil {
				return
			}

			var list []models.MedAppointment
			resp.field(t, "appointments", &list)
			var doctors []string
			for _, a := range list {
				doctors = append(doctors, a.DoctorName)
			}
			assert.Equal(t, tt.expectedDocs, doctors)
		})
	}
}

func TestAlertsAndReadStatus(t *testing.T) {
	env := setupTestEnv(t, true)
	admin, adminToken := env.seedUser(t, "admin", models.RoleAdmin)
	_, userToken := env.seedUser(t, "reader", models.RoleUser)

	resp := env.do(t, fiber.MethodPost, "/alerts", adminToken, map[string]string{"title": "Flood warning", "description": "Avoid the underpass"})
	require.Equal(t, fiber.StatusCreated, resp.status, string(resp.raw))
	var created models.Alert
	resp.field(t, "alert", &created)
	assert.Equal(t, "general", created.Category)
	assert.Equal(t, admin.ID, created.CreatedBy)

	resp = env.do(t, fiber.MethodGet, fmt.Sprintf("/alerts/%d", created.ID), userToken, nil)
	require.Equal(t, fiber.StatusOK, resp.status)
	var fetched models.Alert
	resp.field(t, "alert", &fetched)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.Description, fetched.Description)
	assert.Equal(t, created.Category, fetched.Category)
	assert.False(t, fetched.Read)

	var count int
	resp = env.do(t, fiber.MethodGet, "/alerts/unread-count", userToken, nil)
	require.Equal(t, fiber.StatusOK, resp.status)
	resp.field(t, "count", &count)
	assert.Equal(t, 1, count)

	for i := 0; i < 2; i++ {
		resp = env.do(t, fiber.MethodPost, fmt.Sprintf("/alerts/%d/read", created.ID), userToken, nil)
		require.Equal(t, fiber.StatusOK, resp.status, "marking read is idempotent")
	}

	resp = env.do(t, fiber.MethodGet, "/alerts/unread-count", userToken, nil)
	resp.field(t, "count", &count)
	assert.Equal(t, 0, count)

	resp = env.do(t, fiber.MethodGet, "/alerts/unread-count", adminToken, nil)
	resp.field(t, "count", &count)
	assert.Equal(t, 1, count, "read status is per user")

	resp = env.do(t, fiber.MethodPost, "/alerts/9999/read", userToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.status)

	resp = env.do(t, fiber.MethodDelete, fmt.Sprintf("/alerts/%d", created.ID), adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.status)

	resp = env.do(t, fiber.MethodGet, fmt.Sprintf("/alerts/%d", created.ID), userToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.status)
}

func TestFeedbackRoundTrip(t *testing.T) {
	env := setupTestEnv(t, true)
	_, token := env.seedUser(t, "critic", models.RoleUser)
	_, admin := env.seedUser(t, "admin", models.RoleAdmin)

	resp := env.do(t, fiber.MethodPost, "/feedbacks", token, map[string]interface{}{"title": "Font size", "message": "Please make text bigger", "rating": 4})
	require.Equal(t, fiber.StatusCreated, resp.status, string(resp.raw))
	var created models.Feedback
	resp.field(t, "feedback", &created)
	assert.Equal(t, models.FeedbackStatusNew, created.Status)

	resp = env.do(t, fiber.MethodGet, fmt.Sprintf("/feedbacks/%d", created.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.status)
	var fetched models.Feedback
	resp.field(t, "feedback", &fetched)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.Message, fetched.Message)
	require.NotNil(t, fetched.Rating)
	assert.Equal(t, 4, *fetched.Rating)

	resp = env.do(t, fiber.MethodPost, "/feedbacks", token, map[string]interface{}{"title": "x", "message": "y", "rating": 9})
	assert.Equal(t, fiber.StatusBadRequest, resp.status)

	resp = env.do(t, fiber.MethodPut, fmt.Sprintf("/feedbacks/%d/status", created.ID), admin, map[string]string{"status": "resolved"})
	require.Equal(t, fiber.StatusOK, resp.status)
	resp.field(t, "feedback", &fetched)
	assert.Equal(t, models.FeedbackStatusResolved, fetched.Status)

	resp = env.do(t, fiber.MethodDelete, fmt.Sprintf("/feedbacks/%d", created.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.status)
}

func TestRequestValidation(t *testing.T) {
	env := setupTestEnv(t, true)
	_, token := env.seedUser(t, "user", models.RoleUser)

	resp := env.do(t, fiber.MethodPost, "/notes", token, map[string]string{"content": "no title"})
	require.Equal(t, fiber.StatusBadRequest, resp.status)
	assert.Contains(t, string(resp.body["details"]), "title is required")

	resp = env.do(t, fiber.MethodPost, "/med-appointments", token, map[string]string{
		"doctor_name": "Dr Who", "location": "Tardis", "appointment_date": "2025-01-01", "appointment_time": "25:00",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.status)

	resp = env.do(t, fiber.MethodGet, "/notes/0", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.status)
}
