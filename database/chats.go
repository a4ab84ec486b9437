package database

import (
	"carehub/models"
	"context"
	"database/sql"
)

// ==================== CHAT OPERATIONS ====================

const chatColumns = `id, user_id, volunteer_id, subject, status, created_at, updated_at`

func scanChat(row interface{ Scan(...any) error }) (*models.Chat, error) {
	var chat models.Chat
	var volunteerID sql.NullInt64
	var status string

	if err := row.Scan(
		&chat.ID, &chat.UserID, &volunteerID, &chat.Subject, &status, &chat.CreatedAt, &chat.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if volunteerID.Valid {
		id := volunteerID.Int64
		chat.VolunteerID = &id
	}
	chat.Status = models.ChatStatus(status)
	return &chat, nil
}

// ListChats returns chats newest first. UserID restricts to a requester;
// VolunteerID restricts to chats assigned to that volunteer, widened to all
// open chats when IncludeOpen is set.
func (r *Repository) ListChats(ctx context.Context, filter models.ChatFilter) ([]models.Chat, error) {
	query := `SELECT ` + chatColumns + ` FROM chats WHERE 1 = 1`
	var args []any

	if filter.UserID != 0 {
		query += ` AND user_id = ?`
		args = append(args, filter.UserID)
	}
	if filter.VolunteerID != 0 {
		if filter.IncludeOpen {
			query += ` AND (volunteer_id = ? OR status = 'open')`
		} else {
			query += ` AND volunteer_id = ?`
		}
		args = append(args, filter.VolunteerID)
	}
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := make([]models.Chat, 0)
	for rows.Next() {
		chat, err := scanChat(rows)
		if err != nil {
			return nil, err
		}
		chats = append(chats, *chat)
	}

	return chats, rows.Err()
}

func (r *Repository) GetChat(ctx context.Context, chatID int64) (*models.Chat, error) {
	chat, err := scanChat(r.q.QueryRowContext(ctx, `
		SELECT `+chatColumns+` FROM chats WHERE id = ?
	`, chatID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return chat, err
}

// CreateChat opens a chat and, when firstMessage is non-empty, stores it in the same transaction
func (r *Repository) CreateChat(ctx context.Context, chat *models.Chat, firstMessage string) error {
	return r.WithTx(ctx, func(tx *Repository) error {
		ts := now()
		chat.Status = models.ChatStatusOpen
		res, err := tx.q.ExecContext(ctx, `
			INSERT INTO chats (user_id, volunteer_id, subject, status, created_at, updated_at)
			VALUES (?, NULL, ?, ?, ?, ?)
		`, chat.UserID, chat.Subject, string(chat.Status), ts, ts)
		if err != nil {
			return err
		}

		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		chat.ID = id
		chat.VolunteerID = nil
		chat.CreatedAt = ts
		chat.UpdatedAt = ts

		if firstMessage == "" {
			return nil
		}
		return tx.CreateChatMessage(ctx, &models.ChatMessage{
			ChatID:   chat.ID,
			SenderID: chat.UserID,
			Content:  firstMessage,
		})
	})
}

// AcceptChat assigns a volunteer to an open chat. It reports false when the
// chat no longer exists or has left the open state.
func (r *Repository) AcceptChat(ctx context.Context, chatID, volunteerID int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE chats SET volunteer_id = ?, status = 'active', updated_at = ?
		WHERE id = ? AND status = 'open'
	`, volunteerID, now(), chatID)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

// CloseChat reports false when the chat is missing or already closed
func (r *Repository) CloseChat(ctx context.Context, chatID int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE chats SET status = 'closed', updated_at = ?
		WHERE id = ? AND status <> 'closed'
	`, now(), chatID)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

// DeleteChat removes the messages and then the chat in one transaction
func (r *Repository) DeleteChat(ctx context.Context, chatID int64) (bool, error) {
	var deleted bool
	err := r.WithTx(ctx, func(tx *Repository) error {
		if _, err := tx.q.ExecContext(ctx, `DELETE FROM chat_messages WHERE chat_id = ?`, chatID); err != nil {
			return err
		}
		res, err := tx.q.ExecContext(ctx, `DELETE FROM chats WHERE id = ?`, chatID)
		if err != nil {
			return err
		}
		deleted, err = affectedOne(res)
		return err
	})
	return deleted, err
}

// ListChatMessages returns messages with id greater than afterID, oldest first
func (r *Repository) ListChatMessages(ctx context.Context, chatID, afterID int64) ([]models.ChatMessage, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, chat_id, sender_id, content, created_at
		FROM chat_messages
		WHERE chat_id = ? AND id > ?
		ORDER BY id ASC
	`, chatID, afterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0)
	for rows.Next() {
		var msg models.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.ChatID, &msg.SenderID, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

func (r *Repository) CreateChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	ts := now()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO chat_messages (chat_id, sender_id, content, created_at)
		VALUES (?, ?, ?, ?)
	`, msg.ChatID, msg.SenderID, msg.Content, ts)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	msg.ID = id
	msg.CreatedAt = ts

	_, err = r.q.ExecContext(ctx, `UPDATE chats SET updated_at = ? WHERE id = ?`, ts, msg.ChatID)
	return err
}
