package domain

// User is an account in the tracker. There is no authentication;
// a user is looked up (or created) by name alone.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}
