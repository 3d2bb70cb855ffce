package memory

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
)

// memoryUserRepository implements repository.UserRepository on the
// in-memory store.
type memoryUserRepository struct {
	table *table[domain.User]
}

// NewUserRepository creates a new user repository backed by the store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &memoryUserRepository{table: store.users}
}

// Insert stores a new user, assigning its id and creation timestamp.
func (r *memoryUserRepository) Insert(ctx context.Context, user *domain.User) error {
	user.ID = domain.NewID()
	user.CreatedAt = domain.Now()
	r.table.insert(user.ID, *user)
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := r.table.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	user, ok := r.table.find(func(u domain.User) bool { return u.Name == name })
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}
