package domain

// SetData is one performed set: how much weight for how many reps.
type SetData struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// WorkoutExercise is one exercise entry inside a logged workout.
// ExerciseName is a snapshot taken at write time, not a live reference.
type WorkoutExercise struct {
	ExerciseID   string    `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name"`
	Sets         []SetData `json:"sets"`
}

// Workout is one logged training session. A user has at most one
// workout per date string; logging again for the same date replaces
// the exercises wholesale.
type Workout struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Date      string            `json:"date"`
	Exercises []WorkoutExercise `json:"exercises"`
	CreatedAt string            `json:"created_at"`
}

// ExerciseStats is one derived data point for an exercise on a given
// date: the heaviest set plus rep/set totals for that workout.
type ExerciseStats struct {
	Date      string  `json:"date"`
	MaxWeight float64 `json:"max_weight"`
	TotalReps int     `json:"total_reps"`
	TotalSets int     `json:"total_sets"`
}
