package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/dto"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const materiaCachePrefix = "materia:"

// materiaCacheRepo is a read-through Redis cache in front of another store.
// Materias are never updated or deleted, so a cached entry cannot go stale;
// the TTL only bounds memory.
type materiaCacheRepo struct {
	inner MateriaRepository
	rdb   *redis.Client
	ttl   time.Duration
}

func NewMateriaCacheRepository(inner MateriaRepository, rdb *redis.Client, ttl time.Duration) MateriaRepository {
	return &materiaCacheRepo{inner: inner, rdb: rdb, ttl: ttl}
}

func (r *materiaCacheRepo) Create(ctx context.Context, m *model.Materia) error {
	if err := r.inner.Create(ctx, m); err != nil {
		return err
	}
	r.store(ctx, m)
	return nil
}

func (r *materiaCacheRepo) FindByID(ctx context.Context, id string) (*model.Materia, error) {
	// 1. Try Redis cache
	if cached, err := r.rdb.Get(ctx, materiaCachePrefix+id).Bytes(); err == nil {
		var m model.Materia
		if jsonErr := json.Unmarshal(cached, &m); jsonErr == nil {
			return &m, nil
		}
	} else if err != redis.Nil {
		log.Debug().Err(err).Str("id", id).Msg("materia cache read failed")
	}

	// 2. Cache miss — query the store
	m, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. Populate cache — best effort
	r.store(ctx, m)
	return m, nil
}

func (r *materiaCacheRepo) List(ctx context.Context, filter dto.MateriaFilter) ([]model.Materia, error) {
	return r.inner.List(ctx, filter)
}

// Ping reports the backing store only; an unreachable cache degrades to
// direct store reads and is surfaced through PingCache.
func (r *materiaCacheRepo) Ping(ctx context.Context) error {
	return r.inner.Ping(ctx)
}

func (r *materiaCacheRepo) PingCache(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *materiaCacheRepo) store(ctx context.Context, m *model.Materia) {
	b, err := json.Marshal(m)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, materiaCachePrefix+m.ID, b, r.ttl).Err(); err != nil {
		log.Debug().Err(err).Str("id", m.ID).Msg("materia cache write failed")
	}
}
