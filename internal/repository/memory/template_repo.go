package memory

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
)

// memoryTemplateRepository implements repository.TemplateRepository on
// the in-memory store.
type memoryTemplateRepository struct {
	table *table[domain.WorkoutTemplate]
}

// NewTemplateRepository creates a new template repository backed by the store.
func NewTemplateRepository(store *Store) repository.TemplateRepository {
	return &memoryTemplateRepository{table: store.templates}
}

// Insert stores a new template, assigning its id and creation timestamp.
func (r *memoryTemplateRepository) Insert(ctx context.Context, template *domain.WorkoutTemplate) error {
	template.ID = domain.NewID()
	template.CreatedAt = domain.Now()
	r.table.insert(template.ID, *template)
	return nil
}

func (r *memoryTemplateRepository) ListByUser(ctx context.Context, userID string) ([]domain.WorkoutTemplate, error) {
	templates := []domain.WorkoutTemplate{}
	for _, t := range r.table.list() {
		if t.UserID == userID {
			templates = append(templates, t)
		}
	}
	return templates, nil
}

// Update replaces name and exercises of an existing template, keeping
// its id and created_at untouched.
func (r *memoryTemplateRepository) Update(ctx context.Context, id, name string, exercises []domain.TemplateExercise) (*domain.WorkoutTemplate, error) {
	template, ok := r.table.update(id, func(t domain.WorkoutTemplate) domain.WorkoutTemplate {
		t.Name = name
		t.Exercises = exercises
		return t
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &template, nil
}

func (r *memoryTemplateRepository) Delete(ctx context.Context, id string) error {
	if !r.table.delete(id) {
		return repository.ErrNotFound
	}
	return nil
}
