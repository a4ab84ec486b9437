package services

import (
	"carehub/models"
	"carehub/pkg/trivia"
	"carehub/pkg/weather"
	"carehub/tokens"
	"context"
	"time"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByGoogleSub(ctx context.Context, sub string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context, role models.Role) ([]models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUserProfile(ctx context.Context, userID int64, email, fullName string) (bool, error)
	UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) (bool, error)
	UpdateUserStatus(ctx context.Context, userID int64, status models.UserStatus) (bool, error)
	UpdateUserRole(ctx context.Context, userID int64, role models.Role) (bool, error)
	LinkGoogleAccount(ctx context.Context, userID int64, sub string) error
	DeleteUser(ctx context.Context, userID int64) (bool, error)
}

// AlertRepository defines the interface for alert data access
type AlertRepository interface {
	ListAlerts(ctx context.Context, userID int64) ([]models.Alert, error)
	GetAlert(ctx context.Context, alertID, userID int64) (*models.Alert, error)
	CreateAlert(ctx context.Context, alert *models.Alert) error
	UpdateAlert(ctx context.Context, alert *models.Alert) (bool, error)
	DeleteAlert(ctx context.Context, alertID int64) (bool, error)
	MarkAlertRead(ctx context.Context, alertID, userID int64) error
	CountUnreadAlerts(ctx context.Context, userID int64) (int, error)
}

// ChatRepository defines the interface for help-desk chat data access
type ChatRepository interface {
	ListChats(ctx context.Context, filter models.ChatFilter) ([]models.Chat, error)
	GetChat(ctx context.Context, chatID int64) (*models.Chat, error)
	CreateChat(ctx context.Context, chat *models.Chat, firstMessage string) error
	AcceptChat(ctx context.Context, chatID, volunteerID int64) (bool, error)
	CloseChat(ctx context.Context, chatID int64) (bool, error)
	DeleteChat(ctx context.Context, chatID int64) (bool, error)
	ListChatMessages(ctx context.Context, chatID, afterID int64) ([]models.ChatMessage, error)
	CreateChatMessage(ctx context.Context, msg *models.ChatMessage) error
}

// MedicationRepository defines the interface for medication data access
type MedicationRepository interface {
	ListMedications(ctx context.Context, userID int64) ([]models.Medication, error)
	GetMedication(ctx context.Context, medID int64) (*models.Medication, error)
	CreateMedication(ctx context.Context, med *models.Medication) error
	UpdateMedication(ctx context.Context, med *models.Medication) (bool, error)
	DeleteMedication(ctx context.Context, medID, userID int64) (bool, error)
}

// AppointmentRepository defines the interface for medical appointment data access
type AppointmentRepository interface {
	ListAppointments(ctx context.Context, userID int64, filter models.AppointmentFilter) ([]models.MedAppointment, error)
	GetAppointment(ctx context.Context, apptID int64) (*models.MedAppointment, error)
	CreateAppointment(ctx context.Context, appt *models.MedAppointment) error
	UpdateAppointment(ctx context.Context, appt *models.MedAppointment) (bool, error)
	DeleteAppointment(ctx context.Context, apptID, userID int64) (bool, error)
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	ListNotes(ctx context.Context, userID int64, query string) ([]models.Note, error)
	GetNote(ctx context.Context, noteID int64) (*models.Note, error)
	CreateNote(ctx context.Context, note *models.Note) error
	UpdateNote(ctx context.Context, note *models.Note) (bool, error)
	DeleteNote(ctx context.Context, noteID, userID int64) (bool, error)
}

// FeedbackRepository defines the interface for feedback data access
type FeedbackRepository interface {
	ListFeedbacks(ctx context.Context, userID int64, status models.FeedbackStatus) ([]models.Feedback, error)
	GetFeedback(ctx context.Context, feedbackID int64) (*models.Feedback, error)
	CreateFeedback(ctx context.Context, fb *models.Feedback) error
	UpdateFeedbackStatus(ctx context.Context, feedbackID int64, status models.FeedbackStatus) (bool, error)
	DeleteFeedback(ctx context.Context, feedbackID int64) (bool, error)
}

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	Issue(user *models.User) (string, *tokens.Claims, error)
}

// TokenRevoker records logged-out token ids until they expire
type TokenRevoker interface {
	Revoke(tokenID string, expiresAt time.Time)
}

// WeatherClient represents the forecast API operations needed by services
type WeatherClient interface {
	Forecast(ctx context.Context, lat, lon float64) (*weather.Forecast, error)
}

// TriviaClient represents the trivia API operations needed by services
type TriviaClient interface {
	Questions(ctx context.Context, q trivia.Query) ([]trivia.Question, error)
}
