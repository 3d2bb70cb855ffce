package service

import (
	"context"
	"testing"

	"alcyxob/workout-tracker/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExerciseService() ExerciseService {
	return NewExerciseService(memory.NewExerciseRepository(memory.NewStore()))
}

func TestCreateOrGetExercise_Idempotent(t *testing.T) {
	svc := newExerciseService()
	ctx := context.Background()

	first, err := svc.CreateOrGetExercise(ctx, "u1", "Squat")
	require.NoError(t, err)
	second, err := svc.CreateOrGetExercise(ctx, "u1", "Squat")
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
}

func TestCreateOrGetExercise_PerUser(t *testing.T) {
	svc := newExerciseService()
	ctx := context.Background()

	// Same name for a different user is a different exercise.
	mine, err := svc.CreateOrGetExercise(ctx, "u1", "Squat")
	require.NoError(t, err)
	theirs, err := svc.CreateOrGetExercise(ctx, "u2", "Squat")
	require.NoError(t, err)

	assert.NotEqual(t, mine.ID, theirs.ID)
}

func TestCreateOrGetExercise_Validation(t *testing.T) {
	svc := newExerciseService()
	ctx := context.Background()

	_, err := svc.CreateOrGetExercise(ctx, "u1", "")
	assert.ErrorIs(t, err, ErrValidationFailed)
	_, err = svc.CreateOrGetExercise(ctx, "", "Squat")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestGetExercises_InsertionOrder(t *testing.T) {
	svc := newExerciseService()
	ctx := context.Background()

	names := []string{"Squat", "Bench", "Deadlift"}
	for _, name := range names {
		_, err := svc.CreateOrGetExercise(ctx, "u1", name)
		require.NoError(t, err)
	}

	exercises, err := svc.GetExercises(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, exercises, 3)
	for i, name := range names {
		assert.Equal(t, name, exercises[i].Name)
	}
}

func TestDeleteExercise_NotFound(t *testing.T) {
	svc := newExerciseService()

	err := svc.DeleteExercise(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestDeleteExercise(t *testing.T) {
	svc := newExerciseService()
	ctx := context.Background()

	exercise, err := svc.CreateOrGetExercise(ctx, "u1", "Squat")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExercise(ctx, exercise.ID))

	exercises, err := svc.GetExercises(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, exercises)
}
