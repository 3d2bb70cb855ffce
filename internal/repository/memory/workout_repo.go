package memory

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
)

// memoryWorkoutRepository implements repository.WorkoutRepository on
// the in-memory store.
type memoryWorkoutRepository struct {
	table *table[domain.Workout]
}

// NewWorkoutRepository creates a new workout repository backed by the store.
func NewWorkoutRepository(store *Store) repository.WorkoutRepository {
	return &memoryWorkoutRepository{table: store.workouts}
}

// Insert stores a new workout, assigning its id and creation timestamp.
func (r *memoryWorkoutRepository) Insert(ctx context.Context, workout *domain.Workout) error {
	workout.ID = domain.NewID()
	workout.CreatedAt = domain.Now()
	r.table.insert(workout.ID, *workout)
	return nil
}

func (r *memoryWorkoutRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*domain.Workout, error) {
	workout, ok := r.table.find(func(w domain.Workout) bool {
		return w.UserID == userID && w.Date == date
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &workout, nil
}

func (r *memoryWorkoutRepository) ListByUser(ctx context.Context, userID string) ([]domain.Workout, error) {
	workouts := []domain.Workout{}
	for _, w := range r.table.list() {
		if w.UserID == userID {
			workouts = append(workouts, w)
		}
	}
	return workouts, nil
}

// ReplaceExercises swaps the exercises of an existing workout, keeping
// its id and created_at untouched.
func (r *memoryWorkoutRepository) ReplaceExercises(ctx context.Context, id string, exercises []domain.WorkoutExercise) (*domain.Workout, error) {
	workout, ok := r.table.update(id, func(w domain.Workout) domain.Workout {
		w.Exercises = exercises
		return w
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &workout, nil
}

func (r *memoryWorkoutRepository) Delete(ctx context.Context, id string) error {
	if !r.table.delete(id) {
		return repository.ErrNotFound
	}
	return nil
}
