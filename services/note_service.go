package services

import (
	"carehub/models"
	"context"
	"strings"
)

// NoteService handles business logic for notes
type NoteService struct {
	repo NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// List retrieves the caller's notes, most recently updated first
func (ns *NoteService) List(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	return ns.repo.ListNotes(ctx, userID, strings.TrimSpace(query))
}

// Get returns the note if the caller owns it
func (ns *NoteService) Get(ctx context.Context, userID, noteID int64) (*models.Note, error) {
	note, err := ns.repo.GetNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	if note.UserID != userID {
		return nil, ErrForbidden
	}
	return note, nil
}

func (ns *NoteService) Create(ctx context.Context, userID int64, req models.NoteRequest) (*models.Note, error) {
	note := &models.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := ns.repo.CreateNote(ctx, note); err != nil {
		return nil, err
	}
	return ns.Get(ctx, userID, note.ID)
}

func (ns *NoteService) Update(ctx context.Context, userID, noteID int64, req models.NoteRequest) (*models.Note, error) {
	note, err := ns.Get(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	note.Title = req.Title
	note.Content = req.Content
	ok, err := ns.repo.UpdateNote(ctx, note)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoteNotFound
	}
	return ns.Get(ctx, userID, noteID)
}

func (ns *NoteService) Delete(ctx context.Context, userID, noteID int64) error {
	if _, err := ns.Get(ctx, userID, noteID); err != nil {
		return err
	}
	ok, err := ns.repo.DeleteNote(ctx, noteID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoteNotFound
	}
	return nil
}
