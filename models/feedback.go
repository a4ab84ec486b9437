package models

import "time"

type FeedbackStatus string

const (
	FeedbackStatusNew      FeedbackStatus = "new"
	FeedbackStatusReviewed FeedbackStatus = "reviewed"
	FeedbackStatusResolved FeedbackStatus = "resolved"
)

type Feedback struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Rating    *int           `json:"rating"`
	Status    FeedbackStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type FeedbackRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
	Rating  *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

type UpdateFeedbackStatusRequest struct {
	Status FeedbackStatus `json:"status" validate:"required,oneof=new reviewed resolved"`
}
