package service

import (
	"context"
	"testing"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkoutService() WorkoutService {
	return NewWorkoutService(memory.NewWorkoutRepository(memory.NewStore()))
}

func sets(pairs ...domain.SetData) []domain.SetData { return pairs }

func entry(exerciseID string, s []domain.SetData) domain.WorkoutExercise {
	return domain.WorkoutExercise{ExerciseID: exerciseID, ExerciseName: exerciseID, Sets: s}
}

func TestLogWorkout_CreatesNew(t *testing.T) {
	svc := newWorkoutService()
	ctx := context.Background()

	workout, err := svc.LogWorkout(ctx, "u1", "2024-01-01", []domain.WorkoutExercise{
		entry("e1", sets(domain.SetData{Weight: 100, Reps: 5})),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, workout.ID)
	assert.NotEmpty(t, workout.CreatedAt)
	assert.Equal(t, "2024-01-01", workout.Date)
}

func TestLogWorkout_SameDateReplacesExercises(t *testing.T) {
	svc := newWorkoutService()
	ctx := context.Background()

	first, err := svc.LogWorkout(ctx, "u1", "2024-01-01", []domain.WorkoutExercise{
		entry("e1", sets(domain.SetData{Weight: 100, Reps: 5})),
	})
	require.NoError(t, err)

	second, err := svc.LogWorkout(ctx, "u1", "2024-01-01", []domain.WorkoutExercise{
		entry("e2", sets(domain.SetData{Weight: 60, Reps: 10})),
		entry("e3", sets(domain.SetData{Weight: 40, Reps: 12})),
	})
	require.NoError(t, err)

	// Replacement is wholesale, not a merge; id and created_at survive.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	require.Len(t, second.Exercises, 2)
	assert.Equal(t, "e2", second.Exercises[0].ExerciseID)

	workouts, err := svc.GetWorkouts(ctx, "u1", 50)
	require.NoError(t, err)
	assert.Len(t, workouts, 1)
}

func TestGetWorkouts_SortedByDateDescending(t *testing.T) {
	svc := newWorkoutService()
	ctx := context.Background()

	for _, date := range []string{"2024-01-02", "2024-01-10", "2024-01-01"} {
		_, err := svc.LogWorkout(ctx, "u1", date, nil)
		require.NoError(t, err)
	}

	workouts, err := svc.GetWorkouts(ctx, "u1", 50)
	require.NoError(t, err)
	require.Len(t, workouts, 3)
	assert.Equal(t, "2024-01-10", workouts[0].Date)
	assert.Equal(t, "2024-01-02", workouts[1].Date)
	assert.Equal(t, "2024-01-01", workouts[2].Date)
}

func TestGetWorkouts_StringSortNotCalendarSort(t *testing.T) {
	svc := newWorkoutService()
	ctx := context.Background()

	for _, date := range []string{"2024-10-01", "2024-09-01"} {
		_, err := svc.LogWorkout(ctx, "u1", date, nil)
		require.NoError(t, err)
	}

	// Dates are compared as plain strings: "2024-09-01" > "2024-10-01"
	// because '9' > '1', so it comes first in descending order even
	// though it is the earlier calendar date.
	workouts, err := svc.GetWorkouts(ctx, "u1", 50)
	require.NoError(t, err)
	require.Len(t, workouts, 2)
	assert.Equal(t, "2024-09-01", workouts[0].Date)
	assert.Equal(t, "2024-10-01", workouts[1].Date)
}

func TestGetWorkouts_Limit(t *testing.T) {
	svc := newWorkoutService()
	ctx := context.Background()

	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		_, err := svc.LogWorkout(ctx, "u1", date, nil)
		require.NoError(t, err)
	}

	workouts, err := svc.GetWorkouts(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, workouts, 2)
	assert.Equal(t, "2024-01-03", workouts[0].Date)
	assert.Equal(t, "2024-01-02", workouts[1].Date)
}

func TestGetWorkoutByDate_NilWhenAbsent(t *testing.T) {
	svc := newWorkoutService()
	ctx := context.Background()

	workout, err := svc.GetWorkoutByDate(ctx, "u1", "2024-01-01")
	require.NoError(t, err)
	assert.Nil(t, workout)

	_, err = svc.LogWorkout(ctx, "u1", "2024-01-01", nil)
	require.NoError(t, err)

	workout, err = svc.GetWorkoutByDate(ctx, "u1", "2024-01-01")
	require.NoError(t, err)
	require.NotNil(t, workout)
	assert.Equal(t, "2024-01-01", workout.Date)
}

func TestDeleteWorkout_NotFound(t *testing.T) {
	svc := newWorkoutService()

	err := svc.DeleteWorkout(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestGetExerciseStats_SingleWorkout(t *testing.T) {
	svc := newWorkoutService()
	ctx := context.Background()

	_, err := svc.LogWorkout(ctx, "u1", "2024-01-01", []domain.WorkoutExercise{
		entry("e1", sets(domain.SetData{Weight: 100, Reps: 5}, domain.SetData{Weight: 90, Reps: 8})),
	})
	require.NoError(t, err)

	stats, err := svc.GetExerciseStats(ctx, "u1", "e1", 30)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "2024-01-01", stats[0].Date)
	assert.Equal(t, 100.0, stats[0].MaxWeight)
	assert.Equal(t, 13, stats[0].TotalReps)
	assert.Equal(t, 2, stats[0].TotalSets)
}

func TestGetExerciseStats_ChronologicalAscending(t *testing.T) {
	svc := newWorkoutService()
	ctx := context.Background()

	for i, date := range []string{"2024-01-03", "2024-01-01", "2024-01-02"} {
		_, err := svc.LogWorkout(ctx, "u1", date, []domain.WorkoutExercise{
			entry("e1", sets(domain.SetData{Weight: float64(100 + i), Reps: 5})),
		})
		require.NoError(t, err)
	}

	stats, err := svc.GetExerciseStats(ctx, "u1", "e1", 30)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, "2024-01-01", stats[0].Date)
	assert.Equal(t, "2024-01-02", stats[1].Date)
	assert.Equal(t, "2024-01-03", stats[2].Date)
}

func TestGetExerciseStats_FirstEntryPerWorkoutOnly(t *testing.T) {
	svc := newWorkoutService()
	ctx := context.Background()

	// The exercise appears twice in one workout; only the first entry
	// counts.
	_, err := svc.LogWorkout(ctx, "u1", "2024-01-01", []domain.WorkoutExercise{
		entry("e1", sets(domain.SetData{Weight: 100, Reps: 5})),
		entry("e1", sets(domain.SetData{Weight: 200, Reps: 1})),
	})
	require.NoError(t, err)

	stats, err := svc.GetExerciseStats(ctx, "u1", "e1", 30)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 100.0, stats[0].MaxWeight)
	assert.Equal(t, 1, stats[0].TotalSets)
}

func TestGetExerciseStats_SkipsEmptySetsAndOtherExercises(t *testing.T) {
	svc := newWorkoutService()
	ctx := context.Background()

	_, err := svc.LogWorkout(ctx, "u1", "2024-01-01", []domain.WorkoutExercise{
		entry("e1", nil),
	})
	require.NoError(t, err)
	_, err = svc.LogWorkout(ctx, "u1", "2024-01-02", []domain.WorkoutExercise{
		entry("e2", sets(domain.SetData{Weight: 50, Reps: 10})),
	})
	require.NoError(t, err)

	stats, err := svc.GetExerciseStats(ctx, "u1", "e1", 30)
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestGetExerciseStats_WindowAppliesBeforeMatching(t *testing.T) {
	svc := newWorkoutService()
	ctx := context.Background()

	// The limit truncates the newest-first workout list before the
	// exercise filter runs, so the oldest workout falls outside the
	// window even though it contains the exercise.
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	for _, date := range dates {
		_, err := svc.LogWorkout(ctx, "u1", date, []domain.WorkoutExercise{
			entry("e1", sets(domain.SetData{Weight: 100, Reps: 5})),
		})
		require.NoError(t, err)
	}

	stats, err := svc.GetExerciseStats(ctx, "u1", "e1", 2)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "2024-01-02", stats[0].Date)
	assert.Equal(t, "2024-01-03", stats[1].Date)
}
