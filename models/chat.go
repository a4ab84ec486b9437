package models

import "time"

type ChatStatus string

const (
	ChatStatusOpen   ChatStatus = "open"
	ChatStatusActive ChatStatus = "active"
	ChatStatusClosed ChatStatus = "closed"
)

type Chat struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	VolunteerID *int64     `json:"volunteer_id"`
	Subject     string     `json:"subject"`
	Status      ChatStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsParticipant reports whether userID is the requester or the assigned volunteer.
func (c *Chat) IsParticipant(userID int64) bool {
	if c.UserID == userID {
		return true
	}
	return c.VolunteerID != nil && *c.VolunteerID == userID
}

type ChatMessage struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chat_id"`
	SenderID  int64     `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateChatRequest struct {
	Subject string `json:"subject" validate:"required,min=1,max=200"`
	Message string `json:"message" validate:"max=4000"`
}

type ChatMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=4000"`
}

// ChatFilter narrows chat listings; zero values mean no restriction.
type ChatFilter struct {
	UserID      int64
	VolunteerID int64
	IncludeOpen bool
	Status      ChatStatus
}
