package services

import "errors"

// Common service-level errors
var (
	// Auth errors
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrAccountSuspended    = errors.New("account is suspended")
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidUserInfo     = errors.New("invalid user information")
	ErrGoogleLoginDisabled = errors.New("google sign-in is not configured")
	ErrForbidden           = errors.New("forbidden")

	// Input errors; wrapped with a description of what was wrong
	ErrInvalidInput = errors.New("invalid input")

	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")

	// Alert errors
	ErrAlertNotFound = errors.New("alert not found")

	// Chat errors
	ErrChatNotFound = errors.New("chat not found")
	ErrChatNotOpen  = errors.New("chat is no longer open")
	ErrChatClosed   = errors.New("chat is closed")

	// Medication and appointment errors
	ErrMedicationNotFound  = errors.New("medication not found")
	ErrAppointmentNotFound = errors.New("appointment not found")

	// Note errors
	ErrNoteNotFound = errors.New("note not found")

	// Feedback errors
	ErrFeedbackNotFound = errors.New("feedback not found")

	// External API errors
	ErrUpstream = errors.New("upstream service unavailable")
)

// IsNotFound reports whether err is one of the not-found errors
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrUserNotFound, ErrAlertNotFound, ErrChatNotFound, ErrMedicationNotFound,
		ErrAppointmentNotFound, ErrNoteNotFound, ErrFeedbackNotFound, ErrGoogleLoginDisabled,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConflict reports whether err signals a state or uniqueness conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrChatNotOpen) || errors.Is(err, ErrChatClosed)
}
