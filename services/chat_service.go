package services

import (
	"carehub/models"
	"context"
	"fmt"
)

// ChatService handles help-desk conversations between users and volunteers
type ChatService struct {
	repo ChatRepository
}

func NewChatService(repo ChatRepository) *ChatService {
	return &ChatService{repo: repo}
}

// Create opens a chat for the caller with an optional first message
func (cs *ChatService) Create(ctx context.Context, caller models.Principal, req models.CreateChatRequest) (*models.Chat, error) {
	chat := &models.Chat{
		UserID:  caller.ID,
		Subject: req.Subject,
	}
	if err := cs.repo.CreateChat(ctx, chat, req.Message); err != nil {
		return nil, err
	}
	return cs.load(ctx, chat.ID)
}

// List returns the chats visible to the caller: admins see everything,
// volunteers see open chats plus their own, users see chats they started.
func (cs *ChatService) List(ctx context.Context, caller models.Principal, status models.ChatStatus) ([]models.Chat, error) {
	switch status {
	case "", models.ChatStatusOpen, models.ChatStatusActive, models.ChatStatusClosed:
	default:
		return nil, fmt.Errorf("%w: unknown chat status %q", ErrInvalidInput, status)
	}

	filter := models.ChatFilter{Status: status}
	switch caller.Role {
	case models.RoleAdmin:
	case models.RoleVolunteer:
		filter.VolunteerID = caller.ID
		filter.IncludeOpen = true
	default:
		filter.UserID = caller.ID
	}
	return cs.repo.ListChats(ctx, filter)
}

// Get returns a chat the caller takes part in, or any chat for admins
func (cs *ChatService) Get(ctx context.Context, caller models.Principal, chatID int64) (*models.Chat, error) {
	chat, err := cs.load(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && !chat.IsParticipant(caller.ID) {
		return nil, ErrForbidden
	}
	return chat, nil
}

// Accept assigns the calling volunteer to an open chat
func (cs *ChatService) Accept(ctx context.Context, caller models.Principal, chatID int64) (*models.Chat, error) {
	if caller.Role != models.RoleVolunteer {
		return nil, ErrForbidden
	}

	chat, err := cs.load(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat.Status != models.ChatStatusOpen {
		return nil, ErrChatNotOpen
	}

	// The conditional update loses to a concurrent accept or close
	ok, err := cs.repo.AcceptChat(ctx, chatID, caller.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrChatNotOpen
	}
	return cs.load(ctx, chatID)
}

// Close ends a chat; participants and admins may close it
func (cs *ChatService) Close(ctx context.Context, caller models.Principal, chatID int64) (*models.Chat, error) {
	chat, err := cs.Get(ctx, caller, chatID)
	if err != nil {
		return nil, err
	}
	if chat.Status == models.ChatStatusClosed {
		return nil, ErrChatClosed
	}

	ok, err := cs.repo.CloseChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrChatClosed
	}
	return cs.load(ctx, chatID)
}

// Delete removes a chat and its messages
func (cs *ChatService) Delete(ctx context.Context, chatID int64) error {
	ok, err := cs.repo.DeleteChat(ctx, chatID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrChatNotFound
	}
	return nil
}

// Messages returns messages newer than afterID, oldest first
func (cs *ChatService) Messages(ctx context.Context, caller models.Principal, chatID, afterID int64) ([]models.ChatMessage, error) {
	if afterID < 0 {
		return nil, fmt.Errorf("%w: after must not be negative", ErrInvalidInput)
	}
	if _, err := cs.Get(ctx, caller, chatID); err != nil {
		return nil, err
	}
	return cs.repo.ListChatMessages(ctx, chatID, afterID)
}

// Send posts a message from a participant to a chat that is not closed
func (cs *ChatService) Send(ctx context.Context, caller models.Principal, chatID int64, req models.ChatMessageRequest) (*models.ChatMessage, error) {
	chat, err := cs.load(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.IsParticipant(caller.ID) {
		return nil, ErrForbidden
	}
	if chat.Status == models.ChatStatusClosed {
		return nil, ErrChatClosed
	}

	msg := &models.ChatMessage{
		ChatID:   chatID,
		SenderID: caller.ID,
		Content:  req.Content,
	}
	if err := cs.repo.CreateChatMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (cs *ChatService) load(ctx context.Context, chatID int64) (*models.Chat, error) {
	chat, err := cs.repo.GetChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, ErrChatNotFound
	}
	return chat, nil
}
