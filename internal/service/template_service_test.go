package service

import (
	"context"
	"testing"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTemplateService() TemplateService {
	return NewTemplateService(memory.NewTemplateRepository(memory.NewStore()))
}

func TestCreateTemplate_NoDedupByName(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	first, err := svc.CreateTemplate(ctx, "u1", "Push day", nil)
	require.NoError(t, err)
	second, err := svc.CreateTemplate(ctx, "u1", "Push day", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	templates, err := svc.GetTemplates(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, templates, 2)
}

func TestGetTemplates_NewestCreatedFirst(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	older, err := svc.CreateTemplate(ctx, "u1", "Push day", nil)
	require.NoError(t, err)
	newer, err := svc.CreateTemplate(ctx, "u1", "Pull day", nil)
	require.NoError(t, err)

	templates, err := svc.GetTemplates(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, newer.ID, templates[0].ID)
	assert.Equal(t, older.ID, templates[1].ID)
}

func TestUpdateTemplate_ReplacesNameAndExercises(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	created, err := svc.CreateTemplate(ctx, "u1", "Push day", []domain.TemplateExercise{
		{ExerciseID: "e1", ExerciseName: "Bench"},
	})
	require.NoError(t, err)

	exercises := []domain.TemplateExercise{
		{ExerciseID: "e2", ExerciseName: "Row"},
		{ExerciseID: "e3", ExerciseName: "Curl"},
	}
	updated, err := svc.UpdateTemplate(ctx, created.ID, "Pull day", exercises)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Pull day", updated.Name)
	assert.Equal(t, exercises, updated.Exercises)
}

func TestUpdateTemplate_NotFound(t *testing.T) {
	svc := newTemplateService()

	_, err := svc.UpdateTemplate(context.Background(), "missing", "X", nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestDeleteTemplate(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	created, err := svc.CreateTemplate(ctx, "u1", "Push day", nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTemplate(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteTemplate(ctx, created.ID), ErrTemplateNotFound)
}

func TestTemplateLegacyTargetFieldsPassThrough(t *testing.T) {
	svc := newTemplateService()
	ctx := context.Background()

	targetSets := 3
	targetWeight := 80.5
	created, err := svc.CreateTemplate(ctx, "u1", "Legacy", []domain.TemplateExercise{
		{ExerciseID: "e1", ExerciseName: "Bench", TargetSets: &targetSets, TargetWeight: &targetWeight},
	})
	require.NoError(t, err)

	templates, err := svc.GetTemplates(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, templates, 1)
	require.Len(t, templates[0].Exercises, 1)
	assert.Equal(t, created.Exercises, templates[0].Exercises)
	require.NotNil(t, templates[0].Exercises[0].TargetSets)
	assert.Equal(t, 3, *templates[0].Exercises[0].TargetSets)
}
