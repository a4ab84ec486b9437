package database

import (
	"carehub/models"
	"context"
	"database/sql"
)

// ==================== FEEDBACK OPERATIONS ====================

const feedbackColumns = `id, user_id, title, message, rating, status, created_at, updated_at`

func scanFeedback(row interface{ Scan(...any) error }) (*models.Feedback, error) {
	var fb models.Feedback
	var rating sql.NullInt64
	var status string

	if err := row.Scan(
		&fb.ID, &fb.UserID, &fb.Title, &fb.Message, &rating, &status, &fb.CreatedAt, &fb.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if rating.Valid {
		v := int(rating.Int64)
		fb.Rating = &v
	}
	fb.Status = models.FeedbackStatus(status)
	return &fb, nil
}

// ListFeedbacks returns feedback newest first. userID 0 lists every user's entries.
func (r *Repository) ListFeedbacks(ctx context.Context, userID int64, status models.FeedbackStatus) ([]models.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedbacks WHERE 1 = 1`
	var args []any
	if userID != 0 {
		query += ` AND user_id = ?`
		args = append(args, userID)
	}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedbacks := make([]models.Feedback, 0)
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, *fb)
	}

	return feedbacks, rows.Err()
}

func (r *Repository) GetFeedback(ctx context.Context, feedbackID int64) (*models.Feedback, error) {
	fb, err := scanFeedback(r.q.QueryRowContext(ctx, `
		SELECT `+feedbackColumns+` FROM feedbacks WHERE id = ?
	`, feedbackID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return fb, err
}

func (r *Repository) CreateFeedback(ctx context.Context, fb *models.Feedback) error {
	ts := now()
	if fb.Status == "" {
		fb.Status = models.FeedbackStatusNew
	}

	var rating sql.NullInt64
	if fb.Rating != nil {
		rating = sql.NullInt64{Int64: int64(*fb.Rating), Valid: true}
	}

	res, err := r.q.ExecContext(ctx, `
		INSERT INTO feedbacks (user_id, title, message, rating, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, fb.UserID, fb.Title, fb.Message, rating, string(fb.Status), ts, ts)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	fb.ID = id
	fb.CreatedAt = ts
	fb.UpdatedAt = ts
	return nil
}

func (r *Repository) UpdateFeedbackStatus(ctx context.Context, feedbackID int64, status models.FeedbackStatus) (bool, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE feedbacks SET status = ?, updated_at = ? WHERE id = ?
	`, string(status), now(), feedbackID)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

func (r *Repository) DeleteFeedback(ctx context.Context, feedbackID int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM feedbacks WHERE id = ?`, feedbackID)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}
