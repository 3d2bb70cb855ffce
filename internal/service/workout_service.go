package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"sort"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
)

// WorkoutService handles logged workouts and derived exercise stats.
type WorkoutService interface {
	// GetWorkouts returns up to limit workouts, newest date first.
	// Dates sort as plain strings, not as calendar dates.
	GetWorkouts(ctx context.Context, userID string, limit int) ([]domain.Workout, error)
	// GetWorkoutByDate returns the workout logged on that exact date
	// string, or nil if there is none. Absence is not an error.
	GetWorkoutByDate(ctx context.Context, userID, date string) (*domain.Workout, error)
	// LogWorkout creates the workout for (user, date), or replaces the
	// exercises of the existing one wholesale, keeping its id and
	// created_at.
	LogWorkout(ctx context.Context, userID, date string, exercises []domain.WorkoutExercise) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, id string) error
	// GetExerciseStats derives one stat point per workout in which the
	// exercise appears, over a window of the most recent limit
	// workouts, returned in chronological order.
	GetExerciseStats(ctx context.Context, userID, exerciseID string, limit int) ([]domain.ExerciseStats, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

func (s *workoutService) GetWorkouts(ctx context.Context, userID string, limit int) ([]domain.Workout, error) {
	workouts, err := s.workoutRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortWorkoutsByDateDesc(workouts)
	if limit > 0 && len(workouts) > limit {
		workouts = workouts[:limit]
	}
	return workouts, nil
}

func (s *workoutService) GetWorkoutByDate(ctx context.Context, userID, date string) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) LogWorkout(ctx context.Context, userID, date string, exercises []domain.WorkoutExercise) (*domain.Workout, error) {
	if userID == "" || date == "" {
		return nil, ErrValidationFailed
	}
	if exercises == nil {
		exercises = []domain.WorkoutExercise{}
	}

	existing, err := s.workoutRepo.GetByUserAndDate(ctx, userID, date)
	if err == nil {
		return s.workoutRepo.ReplaceExercises(ctx, existing.ID, exercises)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	workout := &domain.Workout{
		UserID:    userID,
		Date:      date,
		Exercises: exercises,
	}
	if err := s.workoutRepo.Insert(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) DeleteWorkout(ctx context.Context, id string) error {
	err := s.workoutRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}

func (s *workoutService) GetExerciseStats(ctx context.Context, userID, exerciseID string, limit int) ([]domain.ExerciseStats, error) {
	workouts, err := s.workoutRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortWorkoutsByDateDesc(workouts)
	if limit > 0 && len(workouts) > limit {
		workouts = workouts[:limit]
	}

	stats := []domain.ExerciseStats{}
	for _, workout := range workouts {
		// A workout contributes at most one point: only the first
		// entry for the exercise counts, and entries without sets are
		// skipped.
		for _, ex := range workout.Exercises {
			if ex.ExerciseID != exerciseID {
				continue
			}
			if len(ex.Sets) > 0 {
				maxWeight := ex.Sets[0].Weight
				totalReps := 0
				for _, set := range ex.Sets {
					if set.Weight > maxWeight {
						maxWeight = set.Weight
					}
					totalReps += set.Reps
				}
				stats = append(stats, domain.ExerciseStats{
					Date:      workout.Date,
					MaxWeight: maxWeight,
					TotalReps: totalReps,
					TotalSets: len(ex.Sets),
				})
			}
			break
		}
	}

	// Collected newest-first; flip to chronological order.
	for i, j := 0, len(stats)-1; i < j; i, j = i+1, j-1 {
		stats[i], stats[j] = stats[j], stats[i]
	}
	return stats, nil
}

func sortWorkoutsByDateDesc(workouts []domain.Workout) {
	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].Date > workouts[j].Date
	})
}
