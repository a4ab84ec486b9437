package database

import (
	"carehub/models"
	"context"
	"database/sql"
)

// ==================== USER OPERATIONS ====================

const userColumns = `id, username, email, full_name, password_hash, google_sub, role, status, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var user models.User
	var googleSub sql.NullString
	var role, status string

	if err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.FullName, &user.PasswordHash,
		&googleSub, &role, &status, &user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	user.GoogleSub = googleSub.String
	user.Role = models.Role(role)
	user.Status = models.UserStatus(status)
	return &user, nil
}

func (r *Repository) getUserWhere(ctx context.Context, where string, arg any) (*models.User, error) {
	user, err := scanUser(r.q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return r.getUserWhere(ctx, "id = ?", userID)
}

// GetUserByUsername retrieves a user by their unique username
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getUserWhere(ctx, "username = ?", username)
}

func (r *Repository) GetUserByGoogleSub(ctx context.Context, sub string) (*models.User, error) {
	return r.getUserWhere(ctx, "google_sub = ?", sub)
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserWhere(ctx, "email = ? AND email <> '' ORDER BY id LIMIT 1", email)
}

// ListUsers returns all users, optionally restricted to one role
func (r *Repository) ListUsers(ctx context.Context, role models.Role) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var args []any
	if role != "" {
		query += ` WHERE role = ?`
		args = append(args, string(role))
	}
	query += ` ORDER BY id ASC`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}

	return users, rows.Err()
}

// CreateUser inserts a user and fills in its generated ID and timestamps
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	ts := now()
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	res, err := r.q.ExecContext(ctx, `
		INSERT INTO users (username, email, full_name, password_hash, google_sub, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		user.Username, user.Email, user.FullName, user.PasswordHash, nullString(user.GoogleSub),
		string(user.Role), string(user.Status), ts, ts,
	)
	if err != nil {
		return translateError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	user.CreatedAt = ts
	user.UpdatedAt = ts
	return nil
}

// UpdateUserProfile updates the user-editable profile fields
func (r *Repository) UpdateUserProfile(ctx context.Context, userID int64, email, fullName string) (bool, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET email = ?, full_name = ?, updated_at = ? WHERE id = ?
	`, email, fullName, now(), userID)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

func (r *Repository) UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) (bool, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?
	`, passwordHash, now(), userID)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

func (r *Repository) UpdateUserStatus(ctx context.Context, userID int64, status models.UserStatus) (bool, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET status = ?, updated_at = ? WHERE id = ?
	`, string(status), now(), userID)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

func (r *Repository) UpdateUserRole(ctx context.Context, userID int64, role models.Role) (bool, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET role = ?, updated_at = ? WHERE id = ?
	`, string(role), now(), userID)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

// LinkGoogleAccount attaches a Google subject to an existing user
func (r *Repository) LinkGoogleAccount(ctx context.Context, userID int64, sub string) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE users SET google_sub = ?, updated_at = ? WHERE id = ?
	`, sub, now(), userID)
	return translateError(err)
}

// DeleteUser removes a user; owned rows go with it through ON DELETE CASCADE
func (r *Repository) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}
