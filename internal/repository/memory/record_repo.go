package memory

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
)

// memoryRecordRepository implements repository.RecordRepository on the
// in-memory store.
type memoryRecordRepository struct {
	table *table[domain.PersonalRecord]
}

// NewRecordRepository creates a new record repository backed by the store.
func NewRecordRepository(store *Store) repository.RecordRepository {
	return &memoryRecordRepository{table: store.records}
}

// Insert stores the record as given. The record endpoint accepts a
// fully-formed record, so the id is the caller's, not a generated one.
func (r *memoryRecordRepository) Insert(ctx context.Context, record *domain.PersonalRecord) error {
	r.table.insert(record.ID, *record)
	return nil
}

func (r *memoryRecordRepository) GetByUserAndExercise(ctx context.Context, userID, exerciseID string) (*domain.PersonalRecord, error) {
	record, ok := r.table.find(func(rec domain.PersonalRecord) bool {
		return rec.UserID == userID && rec.ExerciseID == exerciseID
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &record, nil
}

func (r *memoryRecordRepository) ListByUser(ctx context.Context, userID string) ([]domain.PersonalRecord, error) {
	records := []domain.PersonalRecord{}
	for _, rec := range r.table.list() {
		if rec.UserID == userID {
			records = append(records, rec)
		}
	}
	return records, nil
}

// ReplaceByUserAndExercise overwrites the stored value for the matching
// (user, exercise) slot. The slot keeps its storage key; the new value
// carries whatever id the caller supplied.
func (r *memoryRecordRepository) ReplaceByUserAndExercise(ctx context.Context, userID, exerciseID string, record domain.PersonalRecord) error {
	ok := r.table.replaceWhere(func(rec domain.PersonalRecord) bool {
		return rec.UserID == userID && rec.ExerciseID == exerciseID
	}, record)
	if !ok {
		return repository.ErrNotFound
	}
	return nil
}
