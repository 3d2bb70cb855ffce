// Package memory implements the repository interfaces on top of plain
// in-process tables. Nothing is persisted: the whole store is discarded
// when the process exits.
package memory

import (
	"sync"

	"alcyxob/workout-tracker/internal/domain"
)

// Store owns one table per entity type. It is handed to the repository
// constructors; there is no ambient global state.
type Store struct {
	users     *table[domain.User]
	exercises *table[domain.Exercise]
	workouts  *table[domain.Workout]
	templates *table[domain.WorkoutTemplate]
	records   *table[domain.PersonalRecord]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:     newTable[domain.User](),
		exercises: newTable[domain.Exercise](),
		workouts:  newTable[domain.Workout](),
		templates: newTable[domain.WorkoutTemplate](),
		records:   newTable[domain.PersonalRecord](),
	}
}

// table is a mutex-guarded map keyed by entity id, plus an
// insertion-order index so list results are stable across reads
// between mutations. Secondary lookups are linear scans; no field
// other than the id is indexed or constrained.
type table[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{items: make(map[string]T)}
}

func (t *table[T]) insert(id string, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.items[id]; !exists {
		t.order = append(t.order, id)
	}
	t.items[id] = v
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.items[id]
	return v, ok
}

func (t *table[T]) delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.items[id]; !ok {
		return false
	}
	delete(t.items, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// list returns all values in insertion order.
func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.items[id])
	}
	return out
}

// find returns the first value (in insertion order) matching the
// predicate.
func (t *table[T]) find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		if v := t.items[id]; match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// update applies fn to the value stored under id and stores the result
// back under the same key, all within one critical section.
func (t *table[T]) update(id string, fn func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	v = fn(v)
	t.items[id] = v
	return v, true
}

// replaceWhere overwrites the first value matching the predicate with v,
// keeping the storage key of the matched slot.
func (t *table[T]) replaceWhere(match func(T) bool, v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range t.order {
		if match(t.items[id]) {
			t.items[id] = v
			return true
		}
	}
	return false
}
