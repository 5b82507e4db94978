package repository

import (
	"context"
)

const DefaultLimit = 100

// Patch overlays the fields supplied in a partial update onto a stored record.
type Patch[T any] interface {
	Apply(record *T)
}

// PatchFunc adapts a plain function to Patch.
type PatchFunc[T any] func(record *T)

func (f PatchFunc[T]) Apply(record *T) { f(record) }

// Repository is the persistence contract shared by every entity.
type Repository[T any] interface {
	Create(ctx context.Context, record T) (T, error)
	Get(ctx context.Context, id int64) (T, error)
	List(ctx context.Context, skip, limit int) ([]T, error)
	Update(ctx context.Context, id int64, patch Patch[T]) (T, error)
	Delete(ctx context.Context, id int64) (T, error)
}

// window clamps an offset/limit pair to a collection of size total.
func window(total, skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total || end < skip {
		end = total
	}
	return skip, end
}
