package services

import (
	"carehub/models"
	"context"
	"fmt"
)

// MedicationService handles a user's medication schedule
type MedicationService struct {
	repo MedicationRepository
}

func NewMedicationService(repo MedicationRepository) *MedicationService {
	return &MedicationService{repo: repo}
}

func (ms *MedicationService) List(ctx context.Context, userID int64) ([]models.Medication, error) {
	return ms.repo.ListMedications(ctx, userID)
}

// Get returns the medication if the caller owns it
func (ms *MedicationService) Get(ctx context.Context, userID, medID int64) (*models.Medication, error) {
	med, err := ms.repo.GetMedication(ctx, medID)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, ErrMedicationNotFound
	}
	if med.UserID != userID {
		return nil, ErrForbidden
	}
	return med, nil
}

func (ms *MedicationService) Create(ctx context.Context, userID int64, req models.MedicationRequest) (*models.Medication, error) {
	if err := checkDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	med := &models.Medication{UserID: userID}
	applyMedicationRequest(med, req)
	if err := ms.repo.CreateMedication(ctx, med); err != nil {
		return nil, err
	}
	return ms.Get(ctx, userID, med.ID)
}

func (ms *MedicationService) Update(ctx context.Context, userID, medID int64, req models.MedicationRequest) (*models.Medication, error) {
	if err := checkDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	med, err := ms.Get(ctx, userID, medID)
	if err != nil {
		return nil, err
	}

	applyMedicationRequest(med, req)
	ok, err := ms.repo.UpdateMedication(ctx, med)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMedicationNotFound
	}
	return ms.Get(ctx, userID, medID)
}

func (ms *MedicationService) Delete(ctx context.Context, userID, medID int64) error {
	if _, err := ms.Get(ctx, userID, medID); err != nil {
		return err
	}
	ok, err := ms.repo.DeleteMedication(ctx, medID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMedicationNotFound
	}
	return nil
}

func applyMedicationRequest(med *models.Medication, req models.MedicationRequest) {
	med.Name = req.Name
	med.Dosage = req.Dosage
	med.Frequency = req.Frequency
	med.StartDate = req.StartDate
	med.EndDate = req.EndDate
	med.Instructions = req.Instructions
}

// checkDateRange expects YYYY-MM-DD dates, which order correctly as strings
func checkDateRange(start, end string) error {
	if start != "" && end != "" && end < start {
		return fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidInput)
	}
	return nil
}
