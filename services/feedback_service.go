package services

import (
	"carehub/models"
	"context"
	"fmt"
)

// FeedbackService handles feedback submitted by users and volunteers
type FeedbackService struct {
	repo FeedbackRepository
}

func NewFeedbackService(repo FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

func (fs *FeedbackService) Create(ctx context.Context, caller models.Principal, req models.FeedbackRequest) (*models.Feedback, error) {
	fb := &models.Feedback{
		UserID:  caller.ID,
		Title:   req.Title,
		Message: req.Message,
		Rating:  req.Rating,
		Status:  models.FeedbackStatusNew,
	}
	if err := fs.repo.CreateFeedback(ctx, fb); err != nil {
		return nil, err
	}
	return fs.Get(ctx, caller, fb.ID)
}

// List returns all feedback for admins and the caller's own otherwise
func (fs *FeedbackService) List(ctx context.Context, caller models.Principal, status models.FeedbackStatus) ([]models.Feedback, error) {
	switch status {
	case "", models.FeedbackStatusNew, models.FeedbackStatusReviewed, models.FeedbackStatusResolved:
	default:
		return nil, fmt.Errorf("%w: unknown feedback status %q", ErrInvalidInput, status)
	}

	var owner int64
	if !caller.IsAdmin() {
		owner = caller.ID
	}
	return fs.repo.ListFeedbacks(ctx, owner, status)
}

// Get returns the feedback to its author or an admin
func (fs *FeedbackService) Get(ctx context.Context, caller models.Principal, feedbackID int64) (*models.Feedback, error) {
	fb, err := fs.repo.GetFeedback(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	if fb == nil {
		return nil, ErrFeedbackNotFound
	}
	if !caller.IsAdmin() && fb.UserID != caller.ID {
		return nil, ErrForbidden
	}
	return fb, nil
}

func (fs *FeedbackService) UpdateStatus(ctx context.Context, caller models.Principal, feedbackID int64, status models.FeedbackStatus) (*models.Feedback, error) {
	ok, err := fs.repo.UpdateFeedbackStatus(ctx, feedbackID, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrFeedbackNotFound
	}
	return fs.Get(ctx, caller, feedbackID)
}

func (fs *FeedbackService) Delete(ctx context.Context, caller models.Principal, feedbackID int64) error {
	if _, err := fs.Get(ctx, caller, feedbackID); err != nil {
		return err
	}
	ok, err := fs.repo.DeleteFeedback(ctx, feedbackID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFeedbackNotFound
	}
	return nil
}
