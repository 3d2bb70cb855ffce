package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"sort"
)

// RecordService handles personal records (best lift per exercise).
type RecordService interface {
	// GetRecords returns the user's records, heaviest first.
	GetRecords(ctx context.Context, userID string) ([]domain.PersonalRecord, error)
	// GetRecordForExercise returns the record for (user, exercise), or
	// nil if there is none. Absence is not an error.
	GetRecordForExercise(ctx context.Context, userID, exerciseID string) (*domain.PersonalRecord, error)
	// SubmitRecord stores the candidate if no record exists for the
	// exercise yet, or overwrites the existing one only when the
	// candidate's max_weight is strictly higher. Returns whichever
	// record is stored afterwards.
	SubmitRecord(ctx context.Context, userID string, candidate domain.PersonalRecord) (*domain.PersonalRecord, error)
}

// recordService implements the RecordService interface.
type recordService struct {
	recordRepo repository.RecordRepository
}

// NewRecordService creates a new instance of recordService.
func NewRecordService(recordRepo repository.RecordRepository) RecordService {
	return &recordService{recordRepo: recordRepo}
}

func (s *recordService) GetRecords(ctx context.Context, userID string) ([]domain.PersonalRecord, error) {
	records, err := s.recordRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].MaxWeight > records[j].MaxWeight
	})
	return records, nil
}

func (s *recordService) GetRecordForExercise(ctx context.Context, userID, exerciseID string) (*domain.PersonalRecord, error) {
	record, err := s.recordRepo.GetByUserAndExercise(ctx, userID, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

func (s *recordService) SubmitRecord(ctx context.Context, userID string, candidate domain.PersonalRecord) (*domain.PersonalRecord, error) {
	if userID == "" || candidate.ExerciseID == "" {
		return nil, ErrValidationFailed
	}
	if candidate.UserID == "" {
		candidate.UserID = userID
	}
	// The client may send a fully-formed record; fill in whatever it
	// left out, like every other entity gets at creation.
	if candidate.ID == "" {
		candidate.ID = domain.NewID()
	}
	if candidate.CreatedAt == "" {
		candidate.CreatedAt = domain.Now()
	}

	existing, err := s.recordRepo.GetByUserAndExercise(ctx, userID, candidate.ExerciseID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if err := s.recordRepo.Insert(ctx, &candidate); err != nil {
			return nil, err
		}
		return &candidate, nil
	}

	if candidate.MaxWeight > existing.MaxWeight {
		// Full overwrite, candidate id included. The storage key stays
		// with the slot, so stored id and key diverge from here on.
		if err := s.recordRepo.ReplaceByUserAndExercise(ctx, userID, candidate.ExerciseID, candidate); err != nil {
			return nil, err
		}
		return &candidate, nil
	}
	return existing, nil
}
