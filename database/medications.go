package database

import (
	"carehub/models"
	"context"
	"database/sql"
)

// ==================== MEDICATION OPERATIONS ====================

const medicationColumns = `id, user_id, name, dosage, frequency, start_date, end_date, instructions, created_at, updated_at`

func scanMedication(row interface{ Scan(...any) error }) (*models.Medication, error) {
	var med models.Medication
	var endDate sql.NullString

	if err := row.Scan(
		&med.ID, &med.UserID, &med.Name, &med.Dosage, &med.Frequency,
		&med.StartDate, &endDate, &med.Instructions, &med.CreatedAt, &med.UpdatedAt,
	); err != nil {
		return nil, err
	}

	med.EndDate = endDate.String
	return &med, nil
}

// ListMedications returns a user's medications ordered by start date
func (r *Repository) ListMedications(ctx context.Context, userID int64) ([]models.Medication, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		WHERE user_id = ?
		ORDER BY start_date ASC, id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meds := make([]models.Medication, 0)
	for rows.Next() {
		med, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		meds = append(meds, *med)
	}

	return meds, rows.Err()
}

func (r *Repository) GetMedication(ctx context.Context, medID int64) (*models.Medication, error) {
	med, err := scanMedication(r.q.QueryRowContext(ctx, `
		SELECT `+medicationColumns+` FROM medications WHERE id = ?
	`, medID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return med, err
}

func (r *Repository) CreateMedication(ctx context.Context, med *models.Medication) error {
	ts := now()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO medications (user_id, name, dosage, frequency, start_date, end_date, instructions, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		med.UserID, med.Name, med.Dosage, med.Frequency, med.StartDate, nullString(med.EndDate),
		med.Instructions, ts, ts,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	med.ID = id
	med.CreatedAt = ts
	med.UpdatedAt = ts
	return nil
}

func (r *Repository) UpdateMedication(ctx context.Context, med *models.Medication) (bool, error) {
	ts := now()
	res, err := r.q.ExecContext(ctx, `
		UPDATE medications
		SET name = ?, dosage = ?, frequency = ?, start_date = ?, end_date = ?, instructions = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`,
		med.Name, med.Dosage, med.Frequency, med.StartDate, nullString(med.EndDate), med.Instructions, ts,
		med.ID, med.UserID,
	)
	if err != nil {
		return false, err
	}
	med.UpdatedAt = ts
	return affectedOne(res)
}

func (r *Repository) DeleteMedication(ctx context.Context, medID, userID int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM medications WHERE id = ? AND user_id = ?`, medID, userID)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}
