package app

import (
	"carehub/access"
	"carehub/cache"
	"carehub/config"
	"carehub/database"
	"carehub/pkg/trivia"
	"carehub/pkg/weather"
	"carehub/services"
	"carehub/session"
	"carehub/tokens"
	"carehub/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Config    *config.Config
	Repo      *database.Repository
	Tokens    *tokens.Issuer
	Revoked   *session.Store
	Access    *access.Table
	Cache     cache.Cache
	Validator *validator.Validator
	Logger    *slog.Logger

	Auth         *services.AuthService
	Users        *services.UserService
	Alerts       *services.AlertService
	Chats        *services.ChatService
	Medications  *services.MedicationService
	Appointments *services.AppointmentService
	Notes        *services.NoteService
	Feedbacks    *services.FeedbackService
	Weather      *services.WeatherService
	Trivia       *services.TriviaService
	Dashboard    *services.DashboardService
}

// New creates a new App instance with all dependencies.
// A nil cache falls back to an in-memory cache.
func New(cfg *config.Config, repo *database.Repository, c cache.Cache, logger *slog.Logger) *App {
	if c == nil {
		c = cache.NewMemoryCache()
	}

	issuer := tokens.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	revoked := session.NewStore()

	// Keep the interface nil when sign-in with Google is off
	var google services.GoogleVerifier
	if cfg.GoogleClientID != "" {
		google = services.NewIDTokenVerifier(cfg.GoogleClientID)
	}

	alerts := services.NewAlertService(repo)
	appointments := services.NewAppointmentService(repo)
	medications := services.NewMedicationService(repo)
	notes := services.NewNoteService(repo)

	return &App{
		Config:    cfg,
		Repo:      repo,
		Tokens:    issuer,
		Revoked:   revoked,
		Access:    access.DefaultTable(),
		Cache:     c,
		Validator: validator.New(),
		Logger:    logger,

		Auth:         services.NewAuthService(repo, issuer, revoked, google),
		Users:        services.NewUserService(repo),
		Alerts:       alerts,
		Chats:        services.NewChatService(repo),
		Medications:  medications,
		Appointments: appointments,
		Notes:        notes,
		Feedbacks:    services.NewFeedbackService(repo),
		Weather: services.NewWeatherService(
			weather.New(weather.Config{APIURL: cfg.WeatherAPIURL}),
			c,
			services.WeatherConfig{
				CacheTTL:   cfg.WeatherCacheTTL,
				DefaultLat: cfg.WeatherDefaultLat,
				DefaultLon: cfg.WeatherDefaultLon,
			},
		),
		Trivia:    services.NewTriviaService(trivia.New(trivia.Config{APIURL: cfg.TriviaAPIURL})),
		Dashboard: services.NewDashboardService(alerts, appointments, medications, notes),
	}
}
