package domain

// TemplateExercise is one exercise slot in a workout template.
// The target_* fields are legacy: older clients sent per-exercise
// targets and may still include them, so they are decoded and echoed
// back, but nothing reads them.
type TemplateExercise struct {
	ExerciseID   string   `json:"exercise_id"`
	ExerciseName string   `json:"exercise_name"`
	TargetSets   *int     `json:"target_sets,omitempty"`
	TargetReps   *int     `json:"target_reps,omitempty"`
	TargetWeight *float64 `json:"target_weight,omitempty"`
}

// WorkoutTemplate is a reusable workout plan ("Push day", "Leg day").
// Unlike workouts there is no dedup: every create call makes a new one.
type WorkoutTemplate struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Name      string             `json:"name"`
	Exercises []TemplateExercise `json:"exercises"`
	CreatedAt string             `json:"created_at"`
}
