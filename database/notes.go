package database

import (
	"carehub/models"
	"context"
	"database/sql"
)

// ==================== NOTE OPERATIONS ====================

func scanNote(row interface{ Scan(...any) error }) (*models.Note, error) {
	var note models.Note
	if err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
		return nil, err
	}
	return &note, nil
}

// ListNotes retrieves a user's notes, most recently updated first.
// A non-empty query matches title or content case-insensitively.
func (r *Repository) ListNotes(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	sqlQuery := `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE user_id = ?
	`
	args := []any{userID}
	if query != "" {
		sqlQuery += ` AND (title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\')`
		pattern := "%" + escapeLike(query) + "%"
		args = append(args, pattern, pattern)
	}
	sqlQuery += ` ORDER BY updated_at DESC, id DESC`

	rows, err := r.q.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}

	return notes, rows.Err()
}

// GetNote retrieves a note by ID regardless of owner
func (r *Repository) GetNote(ctx context.Context, noteID int64) (*models.Note, error) {
	note, err := scanNote(r.q.QueryRowContext(ctx, `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes WHERE id = ?
	`, noteID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return note, err
}

func (r *Repository) CreateNote(ctx context.Context, note *models.Note) error {
	ts := now()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO notes (user_id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, note.UserID, note.Title, note.Content, ts, ts)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	note.ID = id
	note.CreatedAt = ts
	note.UpdatedAt = ts
	return nil
}

func (r *Repository) UpdateNote(ctx context.Context, note *models.Note) (bool, error) {
	ts := now()
	res, err := r.q.ExecContext(ctx, `
		UPDATE notes SET title = ?, content = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`, note.Title, note.Content, ts, note.ID, note.UserID)
	if err != nil {
		return false, err
	}
	note.UpdatedAt = ts
	return affectedOne(res)
}

func (r *Repository) DeleteNote(ctx context.Context, noteID, userID int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM notes WHERE id = ? AND user_id = ?`, noteID, userID)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}
