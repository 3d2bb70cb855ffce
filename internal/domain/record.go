package domain

// PersonalRecord is the best lift a user has logged for one exercise.
// One logical record exists per (user, exercise) pair; the pair is
// enforced by the update operation, not by the store.
type PersonalRecord struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	ExerciseID   string  `json:"exercise_id"`
	ExerciseName string  `json:"exercise_name"`
	MaxWeight    float64 `json:"max_weight"`
	Reps         int     `json:"reps"`
	Date         string  `json:"date"`
	CreatedAt    string  `json:"created_at"`
}
