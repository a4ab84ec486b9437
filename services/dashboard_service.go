package services

import (
	"carehub/models"
	"context"
	"time"
)

// Dashboard is the summary rendered on the signed-in home page
type Dashboard struct {
	User                 models.Principal
	UnreadAlerts         int
	UpcomingAppointments []models.MedAppointment
	Medications          []models.Medication
	RecentNotes          []models.Note
}

const dashboardListLimit = 5

// DashboardService assembles the dashboard from the feature services
type DashboardService struct {
	alerts       *AlertService
	appointments *AppointmentService
	medications  *MedicationService
	notes        *NoteService
	now          func() time.Time
}

func NewDashboardService(alerts *AlertService, appointments *AppointmentService, medications *MedicationService, notes *NoteService) *DashboardService {
	return &DashboardService{
		alerts:       alerts,
		appointments: appointments,
		medications:  medications,
		notes:        notes,
		now:          time.Now,
	}
}

// Summary collects the caller's dashboard. Medications and appointments
// belong to the user role only and stay empty for admins and volunteers.
func (ds *DashboardService) Summary(ctx context.Context, caller models.Principal) (*Dashboard, error) {
	d := &Dashboard{User: caller}

	unread, err := ds.alerts.UnreadCount(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	d.UnreadAlerts = unread

	if caller.Role == models.RoleUser {
		d.UpcomingAppointments, err = ds.appointments.Upcoming(ctx, caller.ID, ds.now(), dashboardListLimit)
		if err != nil {
			return nil, err
		}
		d.Medications, err = ds.medications.List(ctx, caller.ID)
		if err != nil {
			return nil, err
		}
	}

	notes, err := ds.notes.List(ctx, caller.ID, "")
	if err != nil {
		return nil, err
	}
	if len(notes) > dashboardListLimit {
		notes = notes[:dashboardListLimit]
	}
	d.RecentNotes = notes

	return d, nil
}
