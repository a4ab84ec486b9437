package database

import (
	"carehub/models"
	"context"
	"database/sql"
)

// ==================== ALERT OPERATIONS ====================

func scanAlert(row interface{ Scan(...any) error }) (*models.Alert, error) {
	var alert models.Alert
	var createdBy sql.NullInt64
	var read int

	if err := row.Scan(
		&alert.ID, &alert.Title, &alert.Description, &alert.Category, &createdBy,
		&read, &alert.CreatedAt, &alert.UpdatedAt,
	); err != nil {
		return nil, err
	}

	alert.CreatedBy = createdBy.Int64
	alert.Read = read != 0
	return &alert, nil
}

// Read state is per user, so every alert query joins read_status for the viewer
const alertSelect = `
	SELECT a.id, a.title, a.description, a.category, a.created_by,
	       CASE WHEN rs.alert_id IS NULL THEN 0 ELSE 1 END,
	       a.created_at, a.updated_at
	FROM alerts a
	LEFT JOIN read_status rs ON rs.alert_id = a.id AND rs.user_id = ?
`

// ListAlerts returns every alert, newest first, flagged as read for userID
func (r *Repository) ListAlerts(ctx context.Context, userID int64) ([]models.Alert, error) {
	rows, err := r.q.QueryContext(ctx, alertSelect+` ORDER BY a.created_at DESC, a.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := make([]models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, *alert)
	}

	return alerts, rows.Err()
}

// GetAlert retrieves a single alert with the read flag for userID
func (r *Repository) GetAlert(ctx context.Context, alertID, userID int64) (*models.Alert, error) {
	alert, err := scanAlert(r.q.QueryRowContext(ctx, alertSelect+` WHERE a.id = ?`, userID, alertID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return alert, err
}

func (r *Repository) CreateAlert(ctx context.Context, alert *models.Alert) error {
	ts := now()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO alerts (title, description, category, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, alert.Title, alert.Description, alert.Category, sql.NullInt64{Int64: alert.CreatedBy, Valid: alert.CreatedBy != 0}, ts, ts)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	alert.ID = id
	alert.CreatedAt = ts
	alert.UpdatedAt = ts
	return nil
}

func (r *Repository) UpdateAlert(ctx context.Context, alert *models.Alert) (bool, error) {
	ts := now()
	res, err := r.q.ExecContext(ctx, `
		UPDATE alerts SET title = ?, description = ?, category = ?, updated_at = ?
		WHERE id = ?
	`, alert.Title, alert.Description, alert.Category, ts, alert.ID)
	if err != nil {
		return false, err
	}
	alert.UpdatedAt = ts
	return affectedOne(res)
}

// DeleteAlert removes the alert and its read markers together
func (r *Repository) DeleteAlert(ctx context.Context, alertID int64) (bool, error) {
	var deleted bool
	err := r.WithTx(ctx, func(tx *Repository) error {
		if _, err := tx.q.ExecContext(ctx, `DELETE FROM read_status WHERE alert_id = ?`, alertID); err != nil {
			return err
		}
		res, err := tx.q.ExecContext(ctx, `DELETE FROM alerts WHERE id = ?`, alertID)
		if err != nil {
			return err
		}
		deleted, err = affectedOne(res)
		return err
	})
	return deleted, err
}

// MarkAlertRead records that userID has seen the alert. Repeating it is a no-op.
func (r *Repository) MarkAlertRead(ctx context.Context, alertID, userID int64) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT OR IGNORE INTO read_status (alert_id, user_id, read_at) VALUES (?, ?, ?)
	`, alertID, userID, now())
	return err
}

// CountUnreadAlerts returns how many alerts userID has not marked read
func (r *Repository) CountUnreadAlerts(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM alerts a
		WHERE NOT EXISTS (
			SELECT 1 FROM read_status rs WHERE rs.alert_id = a.id AND rs.user_id = ?
		)
	`, userID).Scan(&count)
	return count, err
}
