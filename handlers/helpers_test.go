package handlers_test

import (
	"bytes"
	"carehub/app"
	"carehub/config"
	"carehub/config/setup"
	"carehub/database"
	"carehub/models"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// failingLatitude makes the fake forecast API answer with a server error
const failingLatitude = "10.0000"

// failingCategory makes the fake trivia API report no results
const failingCategory = "99"

type testEnv struct {
	app   *app.App
	fiber *fiber.App
}

type response struct {
	status  int
	headers http.Header
	body    map[string]json.RawMessage
	raw     []byte
}

// setupTestEnv wires the real routes against a temporary database and fake upstream APIs
func setupTestEnv(t *testing.T, strict bool) *testEnv {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.New(dbPath)
	require.NoError(t, err, "Failed to initialize test database")
	require.NoError(t, db.Migrate(), "Failed to run migrations")
	t.Cleanup(func() { db.Close() })

	weatherAPI := httptest.NewServer(http.HandlerFunc(fakeWeatherAPI))
	t.Cleanup(weatherAPI.Close)
	triviaAPI := httptest.NewServer(http.HandlerFunc(fakeTriviaAPI))
	t.Cleanup(triviaAPI.Close)

	cfg := &config.Config{
		Env:               "test",
		CORSOrigins:       "*",
		JWTSecret:         "handler-test-secret",
		JWTIssuer:         "carehub",
		JWTTTL:            time.Hour,
		AuthzStrict:       strict,
		WeatherAPIURL:     weatherAPI.URL,
		WeatherDefaultLat: 1.3521,
		WeatherDefaultLon: 103.8198,
		WeatherCacheTTL:   time.Minute,
		TriviaAPIURL:      triviaAPI.URL,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application := app.New(cfg, database.NewRepository(db), nil, logger)

	fiberApp := setup.NewFiberApp(cfg, logger)
	setup.RegisterRoutes(fiberApp, application)

	return &testEnv{app: application, fiber: fiberApp}
}

// seedUser stores a user directly and returns a token for it
func (e *testEnv) seedUser(t *testing.T, username string, role models.Role) (*models.User, string) {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		FullName: "Test " + username,
		Role:     role,
	}
	require.NoError(t, e.app.Repo.CreateUser(context.Background(), user))

	token, _, err := e.app.Tokens.Issue(user)
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return e.send(t, req)
}

func (e *testEnv) send(t *testing.T, req *http.Request) response {
	t.Helper()

	resp, err := e.fiber.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := response{status: resp.StatusCode, headers: resp.Header, raw: raw}
	_ = json.Unmarshal(raw, &out.body)
	return out
}

// field decodes one top-level key of a JSON response
func (r response) field(t *testing.T, key string, out interface{}) {
	t.Helper()
	raw, ok := r.body[key]
	require.True(t, ok, "response has no %q key: %s", key, string(r.raw))
	require.NoError(t, json.Unmarshal(raw, out))
}

func fakeWeatherAPI(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("latitude") == failingLatitude {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{
		"latitude": %s,
		"longitude": %s,
		"timezone": "Asia/Singapore",
		"current": {"time": "2025-01-01T09:00", "temperature_2m": 29.5, "relative_humidity_2m": 78, "wind_speed_10m": 9.4, "weather_code": 61},
		"daily": {
			"time": ["2025-01-01", "2025-01-02"],
			"weather_code": [61, 0],
			"temperature_2m_max": [31.2, 32.0],
			"temperature_2m_min": [25.1, 25.8],
			"precipitation_probability_max": [80, 10]
		}
	}`, r.URL.Query().Get("latitude"), r.URL.Query().Get("longitude"))
}

func fakeTriviaAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.URL.Query().Get("category") == failingCategory {
		fmt.Fprint(w, `{"response_code": 1, "results": []}`)
		return
	}

	fmt.Fprint(w, `{"response_code": 0, "results": [{
		"category": "Science &amp; Nature",
		"type": "multiple",
		"difficulty": "easy",
		"question": "What is H&#039;2&#039;O better known as?",
		"correct_answer": "Water",
		"incorrect_answers": ["Salt", "Sand", "Steam"]
	}]}`)
}
