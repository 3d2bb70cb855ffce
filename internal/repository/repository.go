package repository

import (
	"alcyxob/workout-tracker/internal/domain"
	"context"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByName scans all users for an exact name match. Names are not
	// indexed or constrained; the linear scan is the contract.
	GetByName(ctx context.Context, name string) (*domain.User, error)
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Insert(ctx context.Context, exercise *domain.Exercise) error
	// GetByUserAndName scans for an exact (user, name) match.
	GetByUserAndName(ctx context.Context, userID, name string) (*domain.Exercise, error)
	// ListByUser returns the user's exercises in insertion order.
	ListByUser(ctx context.Context, userID string) ([]domain.Exercise, error)
	Delete(ctx context.Context, id string) error
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Insert(ctx context.Context, workout *domain.Workout) error
	// GetByUserAndDate scans for an exact (user, date) match.
	GetByUserAndDate(ctx context.Context, userID, date string) (*domain.Workout, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Workout, error)
	// ReplaceExercises swaps out the exercises of an existing workout
	// wholesale, keeping its id and created_at.
	ReplaceExercises(ctx context.Context, id string, exercises []domain.WorkoutExercise) (*domain.Workout, error)
	Delete(ctx context.Context, id string) error
}

// TemplateRepository defines the interface for interacting with workout templates.
type TemplateRepository interface {
	Insert(ctx context.Context, template *domain.WorkoutTemplate) error
	ListByUser(ctx context.Context, userID string) ([]domain.WorkoutTemplate, error)
	// Update replaces name and exercises of an existing template,
	// keeping its id and created_at.
	Update(ctx context.Context, id, name string, exercises []domain.TemplateExercise) (*domain.WorkoutTemplate, error)
	Delete(ctx context.Context, id string) error
}

// RecordRepository defines the interface for interacting with personal records.
type RecordRepository interface {
	// Insert stores the record exactly as given. Unlike the other
	// repositories the caller supplies the id; the record endpoint
	// accepts a fully-formed record from the client.
	Insert(ctx context.Context, record *domain.PersonalRecord) error
	// GetByUserAndExercise scans for an exact (user, exercise) match.
	GetByUserAndExercise(ctx context.Context, userID, exerciseID string) (*domain.PersonalRecord, error)
	ListByUser(ctx context.Context, userID string) ([]domain.PersonalRecord, error)
	// ReplaceByUserAndExercise overwrites the stored value for the
	// (user, exercise) slot with the given record. The storage key of
	// the slot is kept even though the new value carries its own id.
	ReplaceByUserAndExercise(ctx context.Context, userID, exerciseID string, record domain.PersonalRecord) error
}
