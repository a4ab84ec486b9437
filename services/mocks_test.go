package services

import (
	"carehub/models"
	"carehub/pkg/trivia"
	"carehub/pkg/weather"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	passwordCost = bcrypt.MinCost
}

// ==================== MOCKS ====================

// MockUserRepository is a mock implementation of UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

var _ UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) userResult(args mock.Arguments) (*models.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return m.userResult(m.Called(ctx, userID))
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.userResult(m.Called(ctx, username))
}

func (m *MockUserRepository) GetUserByGoogleSub(ctx context.Context, sub string) (*models.User, error) {
	return m.userResult(m.Called(ctx, sub))
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.userResult(m.Called(ctx, email))
}

func (m *MockUserRepository) ListUsers(ctx context.Context, role models.Role) ([]models.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserProfile(ctx context.Context, userID int64, email, fullName string) (bool, error) {
	args := m.Called(ctx, userID, email, fullName)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) (bool, error) {
	args := m.Called(ctx, userID, passwordHash)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUserStatus(ctx context.Context, userID int64, status models.UserStatus) (bool, error) {
	args := m.Called(ctx, userID, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUserRole(ctx context.Context, userID int64, role models.Role) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) LinkGoogleAccount(ctx context.Context, userID int64, sub string) error {
	args := m.Called(ctx, userID, sub)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockRevoker is a mock implementation of TokenRevoker interface
type MockRevoker struct {
	mock.Mock
}

var _ TokenRevoker = (*MockRevoker)(nil)

func (m *MockRevoker) Revoke(tokenID string, expiresAt time.Time) {
	m.Called(tokenID, expiresAt)
}

// MockGoogleVerifier is a mock implementation of GoogleVerifier interface
type MockGoogleVerifier struct {
	mock.Mock
}

var _ GoogleVerifier = (*MockGoogleVerifier)(nil)

func (m *MockGoogleVerifier) Verify(ctx context.Context, rawToken string) (*GoogleIdentity, error) {
	args := m.Called(ctx, rawToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GoogleIdentity), args.Error(1)
}

// MockChatRepository is a mock implementation of ChatRepository interface
type MockChatRepository struct {
	mock.Mock
}

var _ ChatRepository = (*MockChatRepository)(nil)

func (m *MockChatRepository) ListChats(ctx context.Context, filter models.ChatFilter) ([]models.Chat, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Chat), args.Error(1)
}

func (m *MockChatRepository) GetChat(ctx context.Context, chatID int64) (*models.Chat, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chat), args.Error(1)
}

func (m *MockChatRepository) CreateChat(ctx context.Context, chat *models.Chat, firstMessage string) error {
	args := m.Called(ctx, chat, firstMessage)
	return args.Error(0)
}

func (m *MockChatRepository) AcceptChat(ctx context.Context, chatID, volunteerID int64) (bool, error) {
	args := m.Called(ctx, chatID, volunteerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockChatRepository) CloseChat(ctx context.Context, chatID int64) (bool, error) {
	args := m.Called(ctx, chatID)
	return args.Bool(0), args.Error(1)
}

func (m *MockChatRepository) DeleteChat(ctx context.Context, chatID int64) (bool, error) {
	args := m.Called(ctx, chatID)
	return args.Bool(0), args.Error(1)
}

func (m *MockChatRepository) ListChatMessages(ctx context.Context, chatID, afterID int64) ([]models.ChatMessage, error) {
	args := m.Called(ctx, chatID, afterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockChatRepository) CreateChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockMedicationRepository is a mock implementation of MedicationRepository interface
type MockMedicationRepository struct {
	mock.Mock
}

var _ MedicationRepository = (*MockMedicationRepository)(nil)

func (m *MockMedicationRepository) ListMedications(ctx context.Context, userID int64) ([]models.Medication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Medication), args.Error(1)
}

func (m *MockMedicationRepository) GetMedication(ctx context.Context, medID int64) (*models.Medication, error) {
	args := m.Called(ctx, medID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Medication), args.Error(1)
}

func (m *MockMedicationRepository) CreateMedication(ctx context.Context, med *models.Medication) error {
	args := m.Called(ctx, med)
	return args.Error(0)
}

func (m *MockMedicationRepository) UpdateMedication(ctx context.Context, med *models.Medication) (bool, error) {
	args := m.Called(ctx, med)
	return args.Bool(0), args.Error(1)
}

func (m *MockMedicationRepository) DeleteMedication(ctx context.Context, medID, userID int64) (bool, error) {
	args := m.Called(ctx, medID, userID)
	return args.Bool(0), args.Error(1)
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository interface
type MockAppointmentRepository struct {
	mock.Mock
}

var _ AppointmentRepository = (*MockAppointmentRepository)(nil)

func (m *MockAppointmentRepository) ListAppointments(ctx context.Context, userID int64, filter models.AppointmentFilter) ([]models.MedAppointment, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MedAppointment), args.Error(1)
}

func (m *MockAppointmentRepository) GetAppointment(ctx context.Context, apptID int64) (*models.MedAppointment, error) {
	args := m.Called(ctx, apptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedAppointment), args.Error(1)
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appt *models.MedAppointment) error {
	args := m.Called(ctx, appt)
	return args.Error(0)
}

func (m *MockAppointmentRepository) UpdateAppointment(ctx context.Context, appt *models.MedAppointment) (bool, error) {
	args := m.Called(ctx, appt)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) DeleteAppointment(ctx context.Context, apptID, userID int64) (bool, error) {
	args := m.Called(ctx, apptID, userID)
	return args.Bool(0), args.Error(1)
}

// MockNoteRepository is a mock implementation of NoteRepository interface
type MockNoteRepository struct {
	mock.Mock
}

var _ NoteRepository = (*MockNoteRepository)(nil)

func (m *MockNoteRepository) ListNotes(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteRepository) GetNote(ctx context.Context, noteID int64) (*models.Note, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) CreateNote(ctx context.Context, note *models.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) UpdateNote(ctx context.Context, note *models.Note) (bool, error) {
	args := m.Called(ctx, note)
	return args.Bool(0), args.Error(1)
}

func (m *MockNoteRepository) DeleteNote(ctx context.Context, noteID, userID int64) (bool, error) {
	args := m.Called(ctx, noteID, userID)
	return args.Bool(0), args.Error(1)
}

// MockFeedbackRepository is a mock implementation of FeedbackRepository interface
type MockFeedbackRepository struct {
	mock.Mock
}

var _ FeedbackRepository = (*MockFeedbackRepository)(nil)

func (m *MockFeedbackRepository) ListFeedbacks(ctx context.Context, userID int64, status models.FeedbackStatus) ([]models.Feedback, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) GetFeedback(ctx context.Context, feedbackID int64) (*models.Feedback, error) {
	args := m.Called(ctx, feedbackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) CreateFeedback(ctx context.Context, fb *models.Feedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}

func (m *MockFeedbackRepository) UpdateFeedbackStatus(ctx context.Context, feedbackID int64, status models.FeedbackStatus) (bool, error) {
	args := m.Called(ctx, feedbackID, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedbackRepository) DeleteFeedback(ctx context.Context, feedbackID int64) (bool, error) {
	args := m.Called(ctx, feedbackID)
	return args.Bool(0), args.Error(1)
}

// MockWeatherClient is a mock implementation of WeatherClient interface
type MockWeatherClient struct {
	mock.Mock
}

var _ WeatherClient = (*MockWeatherClient)(nil)

func (m *MockWeatherClient) Forecast(ctx context.Context, lat, lon float64) (*weather.Forecast, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weather.Forecast), args.Error(1)
}

// MockTriviaClient is a mock implementation of TriviaClient interface
type MockTriviaClient struct {
	mock.Mock
}

var _ TriviaClient = (*MockTriviaClient)(nil)

func (m *MockTriviaClient) Questions(ctx context.Context, q trivia.Query) ([]trivia.Question, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trivia.Question), args.Error(1)
}
