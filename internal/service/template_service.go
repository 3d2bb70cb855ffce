package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"sort"
)

// --- Error Definitions ---
var (
	ErrTemplateNotFound = errors.New("template not found")
)

// TemplateService handles reusable workout templates.
type TemplateService interface {
	// GetTemplates returns the user's templates, newest created first.
	GetTemplates(ctx context.Context, userID string) ([]domain.WorkoutTemplate, error)
	// CreateTemplate always creates a new template; names are not
	// deduplicated.
	CreateTemplate(ctx context.Context, userID, name string, exercises []domain.TemplateExercise) (*domain.WorkoutTemplate, error)
	// UpdateTemplate replaces name and exercises, keeping id and
	// created_at.
	UpdateTemplate(ctx context.Context, id, name string, exercises []domain.TemplateExercise) (*domain.WorkoutTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error
}

// templateService implements the TemplateService interface.
type templateService struct {
	templateRepo repository.TemplateRepository
}

// NewTemplateService creates a new instance of templateService.
func NewTemplateService(templateRepo repository.TemplateRepository) TemplateService {
	return &templateService{templateRepo: templateRepo}
}

func (s *templateService) GetTemplates(ctx context.Context, userID string) ([]domain.WorkoutTemplate, error) {
	templates, err := s.templateRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(templates, func(i, j int) bool {
		return templates[i].CreatedAt > templates[j].CreatedAt
	})
	return templates, nil
}

func (s *templateService) CreateTemplate(ctx context.Context, userID, name string, exercises []domain.TemplateExercise) (*domain.WorkoutTemplate, error) {
	if userID == "" || name == "" {
		return nil, ErrValidationFailed
	}
	if exercises == nil {
		exercises = []domain.TemplateExercise{}
	}

	template := &domain.WorkoutTemplate{
		UserID:    userID,
		Name:      name,
		Exercises: exercises,
	}
	if err := s.templateRepo.Insert(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *templateService) UpdateTemplate(ctx context.Context, id, name string, exercises []domain.TemplateExercise) (*domain.WorkoutTemplate, error) {
	if name == "" {
		return nil, ErrValidationFailed
	}
	if exercises == nil {
		exercises = []domain.TemplateExercise{}
	}

	template, err := s.templateRepo.Update(ctx, id, name, exercises)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

func (s *templateService) DeleteTemplate(ctx context.Context, id string) error {
	err := s.templateRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}
	return nil
}
