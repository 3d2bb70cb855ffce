package domain

// Exercise is a named movement owned by a single user, e.g. "Squat".
// Workouts, templates and records embed its id and name as snapshots;
// deleting an Exercise does not touch those copies.
type Exercise struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}
