package cache

import (
	"context"
	"log/slog"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/repository"
)

// Cache stores records under versioned keys. Invalidate bumps the version
// reported for a key.
type Cache interface {
	Version(ctx context.Context, key string) (int64, error)
	Load(ctx context.Context, key string, dest any) (bool, error)
	Store(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, key string) error
}

// CachedRepository serves Get from the cache and bumps the record's version on
// every write. A Get racing a write may store the old record, but only under the
// superseded version. Cache failures are logged and fall through to the
// wrapped repository.
type CachedRepository[T domain.Record[T]] struct {
	next  repository.Repository[T]
	cache Cache
	log   *slog.Logger
}

func NewCachedRepository[T domain.Record[T]](next repository.Repository[T], cache Cache, log *slog.Logger) *CachedRepository[T] {
	return &CachedRepository[T]{next: next, cache: cache, log: log}
}

func (r *CachedRepository[T]) Create(ctx context.Context, record T) (T, error) {
	return r.next.Create(ctx, record)
}

func (r *CachedRepository[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	base := recordKey(zero.Entity(), id)
	version, err := r.cache.Version(ctx, base)
	if err != nil {
		r.log.Warn("cache version lookup failed", "key", base, "error", err)
		return r.next.Get(ctx, id)
	}
	key := versionedKey(base, version)

	var cached T
	hit, err := r.cache.Load(ctx, key, &cached)
	if err != nil {
		r.log.Warn("cache load failed", "key", key, "error", err)
	} else if hit {
		return cached, nil
	}

	rec, err := r.next.Get(ctx, id)
	if err != nil {
		return rec, err
	}
	if err := r.cache.Store(ctx, key, rec); err != nil {
		r.log.Warn("cache store failed", "key", key, "error", err)
	}
	return rec, nil
}

func (r *CachedRepository[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	return r.next.List(ctx, skip, limit)
}

func (r *CachedRepository[T]) Update(ctx context.Context, id int64, patch repository.Patch[T]) (T, error) {
	rec, err := r.next.Update(ctx, id, patch)
	if err != nil {
		return rec, err
	}
	r.invalidate(ctx, rec.Entity(), id)
	return rec, nil
}

func (r *CachedRepository[T]) Delete(ctx context.Context, id int64) (T, error) {
	rec, err := r.next.Delete(ctx, id)
	if err != nil {
		return rec, err
	}
	r.invalidate(ctx, rec.Entity(), id)
	return rec, nil
}

func (r *CachedRepository[T]) invalidate(ctx context.Context, entity string, id int64) {
	key := recordKey(entity, id)
	if err := r.cache.Invalidate(ctx, key); err != nil {
		r.log.Warn("cache invalidate failed", "key", key, "error", err)
	}
}

var _ repository.Repository[domain.Hotel] = (*CachedRepository[domain.Hotel])(nil)
