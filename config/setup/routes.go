package setup

import (
	"carehub/app"
	"carehub/handlers"
	"carehub/middleware"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes registers all application routes.
// Everything registered after the auth middleware requires a valid token
// and must pass the route authorization table.
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// Public routes
	fiberApp.Get("/", handlers.HomePage)
	fiberApp.Get("/login", handlers.LoginPage(application))
	fiberApp.Get("/health", handlers.Health)

	// Auth routes
	fiberApp.Post("/users/register", handlers.Register(application))
	fiberApp.Post("/users/login", handlers.Login(application))
	fiberApp.Post("/users/login/google", handlers.GoogleLogin(application))
	fiberApp.Post("/users/logout", middleware.OptionalAuth(application.Tokens, application.Revoked), handlers.Logout(application))

	// Pages redirect to the login form instead of answering 401
	fiberApp.Get("/dashboard",
		middleware.PageAuthRequired(application.Tokens, application.Revoked),
		middleware.Authorize(application.Access, application.Config.AuthzStrict),
		handlers.DashboardPage(application),
	)

	// Protected routes
	fiberApp.Use(
		middleware.AuthRequired(application.Tokens, application.Revoked),
		middleware.Authorize(application.Access, application.Config.AuthzStrict),
		limiter.New(limiter.Config{
			Max:        100,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				if userID := middleware.GetUserID(c); userID != 0 {
					return "user:" + strconv.FormatInt(userID, 10)
				}
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded for your account",
				})
			},
		}),
	)

	fiberApp.Get("/users/me", handlers.Me(application))
	fiberApp.Put("/users/me", handlers.UpdateMe(application))
	fiberApp.Put("/users/me/password", handlers.ChangePassword(application))
	fiberApp.Get("/users", handlers.ListUsers(application))
	fiberApp.Post("/users", handlers.CreateUser(application))
	fiberApp.Put("/users/:id/status", handlers.UpdateUserStatus(application))
	fiberApp.Put("/users/:id/role", handlers.UpdateUserRole(application))
	fiberApp.Delete("/users/:id", handlers.DeleteUser(application))

	fiberApp.Get("/alerts", handlers.GetAlerts(application))
	fiberApp.Get("/alerts/unread-count", handlers.GetUnreadAlertCount(application))
	fiberApp.Get("/alerts/:id", handlers.GetAlert(application))
	fiberApp.Post("/alerts", handlers.CreateAlert(application))
	fiberApp.Put("/alerts/:id", handlers.UpdateAlert(application))
	fiberApp.Delete("/alerts/:id", handlers.DeleteAlert(application))
	fiberApp.Post("/alerts/:id/read", handlers.MarkAlertRead(application))

	fiberApp.Get("/chats", handlers.GetChats(application))
	fiberApp.Post("/chats", handlers.CreateChat(application))
	fiberApp.Get("/chats/:id", handlers.GetChat(application))
	fiberApp.Put("/chats/:id/accept", handlers.AcceptChat(application))
	fiberApp.Put("/chats/:id/close", handlers.CloseChat(application))
	fiberApp.Delete("/chats/:id", handlers.DeleteChat(application))
	fiberApp.Get("/chats/:id/messages", handlers.GetChatMessages(application))
	fiberApp.Post("/chats/:id/messages", handlers.SendChatMessage(application))

	fiberApp.Get("/medications", handlers.GetMedications(application))
	fiberApp.Get("/medications/:id", handlers.GetMedication(application))
	fiberApp.Post("/medications", handlers.CreateMedication(application))
	fiberApp.Put("/medications/:id", handlers.UpdateMedication(application))
	fiberApp.Delete("/medications/:id", handlers.DeleteMedication(application))

	fiberApp.Get("/med-appointments", handlers.GetAppointments(application))
	fiberApp.Get("/med-appointments/date/:date", handlers.GetAppointmentsOnDate(application))
	fiberApp.Get("/med-appointments/:id", handlers.GetAppointment(application))
	fiberApp.Post("/med-appointments", handlers.CreateAppointment(application))
	fiberApp.Put("/med-appointments/:id", handlers.UpdateAppointment(application))
	fiberApp.Delete("/med-appointments/:id", handlers.DeleteAppointment(application))

	fiberApp.Get("/notes", handlers.GetNotes(application))
	fiberApp.Get("/notes/:id", handlers.GetNote(application))
	fiberApp.Post("/notes", handlers.CreateNote(application))
	fiberApp.Put("/notes/:id", handlers.UpdateNote(application))
	fiberApp.Delete("/notes/:id", handlers.DeleteNote(application))

	fiberApp.Get("/feedbacks", handlers.GetFeedbacks(application))
	fiberApp.Get("/feedbacks/:id", handlers.GetFeedback(application))
	fiberApp.Post("/feedbacks", handlers.CreateFeedback(application))
	fiberApp.Put("/feedbacks/:id/status", handlers.UpdateFeedbackStatus(application))
	fiberApp.Delete("/feedbacks/:id", handlers.DeleteFeedback(application))

	fiberApp.Get("/weather", handlers.GetWeather(application))
	fiberApp.Get("/trivia", handlers.GetTrivia(application))
}
