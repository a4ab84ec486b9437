package models

import "time"

type MedAppointment struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	DoctorName      string    `json:"doctor_name"`
	Location        string    `json:"location"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Purpose         string    `json:"purpose"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type MedAppointmentRequest struct {
	DoctorName      string `json:"doctor_name" validate:"required,min=1,max=100"`
	Location        string `json:"location" validate:"required,max=200"`
	AppointmentDate string `json:"appointment_date" validate:"required,dateformat"`
	AppointmentTime string `json:"appointment_time" validate:"required,timeformat"`
	Purpose         string `json:"purpose" validate:"max=500"`
}

// AppointmentFilter restricts listings to a single date or an inclusive range.
type AppointmentFilter struct {
	Date string
	From string
	To   string
}
