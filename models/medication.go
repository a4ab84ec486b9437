package models

import "time"

type Medication struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage"`
	Frequency    string    `json:"frequency"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date,omitempty"`
	Instructions string    `json:"instructions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MedicationRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Dosage       string `json:"dosage" validate:"required,max=100"`
	Frequency    string `json:"frequency" validate:"required,max=100"`
	StartDate    string `json:"start_date" validate:"required,dateformat"`
	EndDate      string `json:"end_date" validate:"omitempty,dateformat"`
	Instructions string `json:"instructions" validate:"max=1000"`
}
