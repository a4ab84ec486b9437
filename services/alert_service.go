package services

import (
	"carehub/models"
	"context"
)

// AlertService handles community alerts and per-user read state
type AlertService struct {
	repo AlertRepository
}

func NewAlertService(repo AlertRepository) *AlertService {
	return &AlertService{repo: repo}
}

// List returns all alerts, newest first, with the caller's read flags
func (as *AlertService) List(ctx context.Context, userID int64) ([]models.Alert, error) {
	return as.repo.ListAlerts(ctx, userID)
}

func (as *AlertService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return as.repo.CountUnreadAlerts(ctx, userID)
}

func (as *AlertService) Get(ctx context.Context, alertID, userID int64) (*models.Alert, error) {
	alert, err := as.repo.GetAlert(ctx, alertID, userID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, ErrAlertNotFound
	}
	return alert, nil
}

// Create publishes an alert authored by the caller
func (as *AlertService) Create(ctx context.Context, caller models.Principal, req models.AlertRequest) (*models.Alert, error) {
	alert := &models.Alert{
		Title:       req.Title,
		Description: req.Description,
		Category:    categoryOrDefault(req.Category),
		CreatedBy:   caller.ID,
	}
	if err := as.repo.CreateAlert(ctx, alert); err != nil {
		return nil, err
	}
	return as.Get(ctx, alert.ID, caller.ID)
}

func (as *AlertService) Update(ctx context.Context, caller models.Principal, alertID int64, req models.AlertRequest) (*models.Alert, error) {
	alert := &models.Alert{
		ID:          alertID,
		Title:       req.Title,
		Description: req.Description,
		Category:    categoryOrDefault(req.Category),
	}
	ok, err := as.repo.UpdateAlert(ctx, alert)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlertNotFound
	}
	return as.Get(ctx, alertID, caller.ID)
}

func (as *AlertService) Delete(ctx context.Context, alertID int64) error {
	ok, err := as.repo.DeleteAlert(ctx, alertID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlertNotFound
	}
	return nil
}

// MarkRead records that the caller has read the alert; repeating it is harmless
func (as *AlertService) MarkRead(ctx context.Context, alertID, userID int64) error {
	if _, err := as.Get(ctx, alertID, userID); err != nil {
		return err
	}
	return as.repo.MarkAlertRead(ctx, alertID, userID)
}

func categoryOrDefault(category string) string {
	if category == "" {
		return "general"
	}
	return category
}
