package repository

import (
	"context"
	"errors"

	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/dto"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/model"
)

var (
	ErrNotFound     = errors.New("materia not found")
	ErrDuplicateKey = errors.New("materia id already exists")
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// MateriaRepository defines the data access contract for materias.
// Services depend on this interface, not on a concrete store, so the Mongo and
// Postgres implementations (and the Redis decorator) are interchangeable.
type MateriaRepository interface {
	Create(ctx context.Context, m *model.Materia) error
	FindByID(ctx context.Context, id string) (*model.Materia, error)
	List(ctx context.Context, filter dto.MateriaFilter) ([]model.Materia, error)
	Ping(ctx context.Context) error
}

// CachePinger is implemented by stores fronted by a cache, so health checks can
// report the cache separately from the store.
type CachePinger interface {
	PingCache(ctx context.Context) error
}

// NormalizarPaginacion clamps limit to [1, MaxLimit] (0 selects DefaultLimit) and skip to >= 0.
func NormalizarPaginacion(f dto.MateriaFilter) (limit, skip int64) {
	switch {
	case f.Limit == 0:
		limit = DefaultLimit
	case f.Limit < 1:
		limit = 1
	case f.Limit > MaxLimit:
		limit = MaxLimit
	default:
		limit = int64(f.Limit)
	}
	if f.Skip > 0 {
		skip = int64(f.Skip)
	}
	return limit, skip
}
