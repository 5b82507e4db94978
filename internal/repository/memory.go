package repository

import (
	"context"
	"sync"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

// UniqueKey declares a field that must not repeat across live records.
// Key returns ok=false when the record does not participate in the index.
type UniqueKey[T any] struct {
	Field string
	Key   func(record T) (key string, ok bool)
}

// MemoryRepository keeps records in insertion order behind a single lock.
type MemoryRepository[T domain.Record[T]] struct {
	mu      sync.Mutex
	records []T
	nextID  int64
	unique  []UniqueKey[T]
}

func NewMemoryRepository[T domain.Record[T]](unique ...UniqueKey[T]) *MemoryRepository[T] {
	return &MemoryRepository[T]{unique: unique}
}

func (r *MemoryRepository[T]) Create(ctx context.Context, record T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUnique(record, -1); err != nil {
		var zero T
		return zero, err
	}

	r.nextID++
	record = record.WithIdentity(r.nextID)
	r.records = append(r.records, record)
	return record, nil
}

func (r *MemoryRepository[T]) Get(ctx context.Context, id int64) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, domain.NewNotFound(zero.Entity(), id)
	}
	return r.records[idx], nil
}

func (r *MemoryRepository[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start, end := window(len(r.records), skip, limit)
	out := make([]T, end-start)
	copy(out, r.records[start:end])
	return out, nil
}

// Update builds a new value from the stored one and swaps it in place.
// The identifier is never taken from the patch.
func (r *MemoryRepository[T]) Update(ctx context.Context, id int64, patch Patch[T]) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	idx := r.indexOf(id)
	if idx < 0 {
		return zero, domain.NewNotFound(zero.Entity(), id)
	}

	next := r.records[idx]
	if patch != nil {
		patch.Apply(&next)
	}
	next = next.WithIdentity(id)

	if err := r.checkUnique(next, idx); err != nil {
		return zero, err
	}
	r.records[idx] = next
	return next, nil
}

func (r *MemoryRepository[T]) Delete(ctx context.Context, id int64) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, domain.NewNotFound(zero.Entity(), id)
	}
	removed := r.records[idx]
	r.records = append(r.records[:idx], r.records[idx+1:]...)
	return removed, nil
}

func (r *MemoryRepository[T]) indexOf(id int64) int {
	for i, rec := range r.records {
		if rec.Identity() == id {
			return i
		}
	}
	return -1
}

// checkUnique must be called with mu held. skip is the index of the record
// being replaced, or -1 on insert.
func (r *MemoryRepository[T]) checkUnique(candidate T, skip int) error {
	for _, u := range r.unique {
		key, ok := u.Key(candidate)
		if !ok {
			continue
		}
		for i, rec := range r.records {
			if i == skip {
				continue
			}
			if other, ok := u.Key(rec); ok && other == key {
				return domain.NewValidationError(u.Field, "already exists")
			}
		}
	}
	return nil
}

var _ Repository[domain.User] = (*MemoryRepository[domain.User])(nil)
