package memory

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
)

// memoryExerciseRepository implements repository.ExerciseRepository on
// the in-memory store.
type memoryExerciseRepository struct {
	table *table[domain.Exercise]
}

// NewExerciseRepository creates a new exercise repository backed by the store.
func NewExerciseRepository(store *Store) repository.ExerciseRepository {
	return &memoryExerciseRepository{table: store.exercises}
}

// Insert stores a new exercise, assigning its id and creation timestamp.
func (r *memoryExerciseRepository) Insert(ctx context.Context, exercise *domain.Exercise) error {
	exercise.ID = domain.NewID()
	exercise.CreatedAt = domain.Now()
	r.table.insert(exercise.ID, *exercise)
	return nil
}

func (r *memoryExerciseRepository) GetByUserAndName(ctx context.Context, userID, name string) (*domain.Exercise, error) {
	exercise, ok := r.table.find(func(e domain.Exercise) bool {
		return e.UserID == userID && e.Name == name
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &exercise, nil
}

func (r *memoryExerciseRepository) ListByUser(ctx context.Context, userID string) ([]domain.Exercise, error) {
	exercises := []domain.Exercise{}
	for _, e := range r.table.list() {
		if e.UserID == userID {
			exercises = append(exercises, e)
		}
	}
	return exercises, nil
}

func (r *memoryExerciseRepository) Delete(ctx context.Context, id string) error {
	if !r.table.delete(id) {
		return repository.ErrNotFound
	}
	return nil
}
