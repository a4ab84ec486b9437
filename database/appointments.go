package database

import (
	"carehub/models"
	"context"
	"database/sql"
)

// ==================== MEDICAL APPOINTMENT OPERATIONS ====================

const appointmentColumns = `id, user_id, doctor_name, location, appointment_date, appointment_time, purpose, created_at, updated_at`

func scanAppointment(row interface{ Scan(...any) error }) (*models.MedAppointment, error) {
	var appt models.MedAppointment
	if err := row.Scan(
		&appt.ID, &appt.UserID, &appt.DoctorName, &appt.Location, &appt.AppointmentDate,
		&appt.AppointmentTime, &appt.Purpose, &appt.CreatedAt, &appt.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &appt, nil
}

// ListAppointments returns a user's appointments ordered by date then time.
// Dates are stored as YYYY-MM-DD so string comparison orders them correctly.
func (r *Repository) ListAppointments(ctx context.Context, userID int64, filter models.AppointmentFilter) ([]models.MedAppointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM med_appointments WHERE user_id = ?`
	args := []any{userID}

	if filter.Date != "" {
		query += ` AND appointment_date = ?`
		args = append(args, filter.Date)
	}
	if filter.From != "" {
		query += ` AND appointment_date >= ?`
		args = append(args, filter.From)
	}
	if filter.To != "" {
		query += ` AND appointment_date <= ?`
		args = append(args, filter.To)
	}
	query += ` ORDER BY appointment_date ASC, appointment_time ASC, id ASC`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appts := make([]models.MedAppointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, *appt)
	}

	return appts, rows.Err()
}

func (r *Repository) GetAppointment(ctx context.Context, apptID int64) (*models.MedAppointment, error) {
	appt, err := scanAppointment(r.q.QueryRowContext(ctx, `
		SELECT `+appointmentColumns+` FROM med_appointments WHERE id = ?
	`, apptID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return appt, err
}

func (r *Repository) CreateAppointment(ctx context.Context, appt *models.MedAppointment) error {
	ts := now()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO med_appointments (user_id, doctor_name, location, appointment_date, appointment_time, purpose, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		appt.UserID, appt.DoctorName, appt.Location, appt.AppointmentDate, appt.AppointmentTime,
		appt.Purpose, ts, ts,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	appt.ID = id
	appt.CreatedAt = ts
	appt.UpdatedAt = ts
	return nil
}

func (r *Repository) UpdateAppointment(ctx context.Context, appt *models.MedAppointment) (bool, error) {
	ts := now()
	res, err := r.q.ExecContext(ctx, `
		UPDATE med_appointments
		SET doctor_name = ?, location = ?, appointment_date = ?, appointment_time = ?, purpose = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`,
		appt.DoctorName, appt.Location, appt.AppointmentDate, appt.AppointmentTime, appt.Purpose, ts,
		appt.ID, appt.UserID,
	)
	if err != nil {
		return false, err
	}
	appt.UpdatedAt = ts
	return affectedOne(res)
}

func (r *Repository) DeleteAppointment(ctx context.Context, apptID, userID int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM med_appointments WHERE id = ? AND user_id = ?`, apptID, userID)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}
