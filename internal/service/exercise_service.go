package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
)

// ExerciseService handles a user's exercise library.
type ExerciseService interface {
	// GetExercises returns the user's exercises in insertion order.
	GetExercises(ctx context.Context, userID string) ([]domain.Exercise, error)
	// CreateOrGetExercise returns the existing exercise with this
	// (user, name) pair, or creates one.
	CreateOrGetExercise(ctx context.Context, userID, name string) (*domain.Exercise, error)
	// DeleteExercise removes the exercise by id. Workouts, templates
	// and records keep their snapshot of the exercise's id and name.
	DeleteExercise(ctx context.Context, id string) error
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

func (s *exerciseService) GetExercises(ctx context.Context, userID string) ([]domain.Exercise, error) {
	return s.exerciseRepo.ListByUser(ctx, userID)
}

func (s *exerciseService) CreateOrGetExercise(ctx context.Context, userID, name string) (*domain.Exercise, error) {
	if userID == "" || name == "" {
		return nil, ErrValidationFailed
	}

	existing, err := s.exerciseRepo.GetByUserAndName(ctx, userID, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	exercise := &domain.Exercise{UserID: userID, Name: name}
	if err := s.exerciseRepo.Insert(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) DeleteExercise(ctx context.Context, id string) error {
	err := s.exerciseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}
