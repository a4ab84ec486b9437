package services

import (
	"carehub/models"
	"context"
	"fmt"
	"time"
)

const (
	dateLayout        = "2006-01-02"
	compactDateLayout = "20060102"
)

// AppointmentService handles a user's medical appointments
type AppointmentService struct {
	repo AppointmentRepository
}

func NewAppointmentService(repo AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

// List returns the caller's appointments ordered by date and time,
// restricted to one day or an inclusive range when the filter says so.
func (as *AppointmentService) List(ctx context.Context, userID int64, filter models.AppointmentFilter) ([]models.MedAppointment, error) {
	for _, f := range []struct{ name, value string }{
		{"date", filter.Date}, {"from", filter.From}, {"to", filter.To},
	} {
		if f.value == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, f.value); err != nil {
			return nil, fmt.Errorf("%w: %s must be a date in YYYY-MM-DD format", ErrInvalidInput, f.name)
		}
	}
	if filter.Date != "" && (filter.From != "" || filter.To != "") {
		return nil, fmt.Errorf("%w: date cannot be combined with from/to", ErrInvalidInput)
	}
	if filter.From != "" && filter.To != "" && filter.To < filter.From {
		return nil, fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	return as.repo.ListAppointments(ctx, userID, filter)
}

// ListOnDate takes a compact YYYYMMDD date as used in path segments
func (as *AppointmentService) ListOnDate(ctx context.Context, userID int64, compactDate string) ([]models.MedAppointment, error) {
	day, err := time.Parse(compactDateLayout, compactDate)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYYMMDD format", ErrInvalidInput)
	}
	return as.repo.ListAppointments(ctx, userID, models.AppointmentFilter{Date: day.Format(dateLayout)})
}

// Upcoming returns appointments from today onwards, at most limit of them
func (as *AppointmentService) Upcoming(ctx context.Context, userID int64, today time.Time, limit int) ([]models.MedAppointment, error) {
	appts, err := as.repo.ListAppointments(ctx, userID, models.AppointmentFilter{From: today.Format(dateLayout)})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(appts) > limit {
		appts = appts[:limit]
	}
	return appts, nil
}

// Get returns the appointment if the caller owns it
func (as *AppointmentService) Get(ctx context.Context, userID, apptID int64) (*models.MedAppointment, error) {
	appt, err := as.repo.GetAppointment(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}
	if appt.UserID != userID {
		return nil, ErrForbidden
	}
	return appt, nil
}

func (as *AppointmentService) Create(ctx context.Context, userID int64, req models.MedAppointmentRequest) (*models.MedAppointment, error) {
	appt := &models.MedAppointment{UserID: userID}
	applyAppointmentRequest(appt, req)
	if err := as.repo.CreateAppointment(ctx, appt); err != nil {
		return nil, err
	}
	return as.Get(ctx, userID, appt.ID)
}

func (as *AppointmentService) Update(ctx context.Context, userID, apptID int64, req models.MedAppointmentRequest) (*models.MedAppointment, error) {
	appt, err := as.Get(ctx, userID, apptID)
	if err != nil {
		return nil, err
	}

	applyAppointmentRequest(appt, req)
	ok, err := as.repo.UpdateAppointment(ctx, appt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return as.Get(ctx, userID, apptID)
}

func (as *AppointmentService) Delete(ctx context.Context, userID, apptID int64) error {
	if _, err := as.Get(ctx, userID, apptID); err != nil {
		return err
	}
	ok, err := as.repo.DeleteAppointment(ctx, apptID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAppointmentNotFound
	}
	return nil
}

func applyAppointmentRequest(appt *models.MedAppointment, req models.MedAppointmentRequest) {
	appt.DoctorName = req.DoctorName
	appt.Location = req.Location
	appt.AppointmentDate = req.AppointmentDate
	appt.AppointmentTime = req.AppointmentTime
	appt.Purpose = req.Purpose
}
