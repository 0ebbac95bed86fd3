package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/dto"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Counting in-memory MateriaRepository stub ────────────────────────────────

type stubMateriaRepo struct {
	materias  map[string]*model.Materia
	findCalls int
	pingErr   error
}

func newStubMateriaRepo() *stubMateriaRepo {
	return &stubMateriaRepo{materias: make(map[string]*model.Materia)}
}

func (r *stubMateriaRepo) Create(_ context.Context, m *model.Materia) error {
	if _, ok := r.materias[m.ID]; ok {
		return ErrDuplicateKey
	}
	m.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	cp := *m
	r.materias[m.ID] = &cp
	return nil
}

func (r *stubMateriaRepo) FindByID(_ context.Context, id string) (*model.Materia, error) {
	r.findCalls++
	m, ok := r.materias[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *stubMateriaRepo) List(_ context.Context, _ dto.MateriaFilter) ([]model.Materia, error) {
	list := make([]model.Materia, 0, len(r.materias))
	for _, m := range r.materias {
		list = append(list, *m)
	}
	return list, nil
}

func (r *stubMateriaRepo) Ping(context.Context) error { return r.pingErr }

var _ MateriaRepository = (*stubMateriaRepo)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

func buildCacheRepo(t *testing.T) (MateriaRepository, *stubMateriaRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	inner := newStubMateriaRepo()
	return NewMateriaCacheRepository(inner, rdb, 5*time.Minute), inner, mr
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCache_FindByID_SegundaLecturaDesdeRedis(t *testing.T) {
	repo, inner, mr := buildCacheRepo(t)
	ctx := context.Background()
	inner.materias["mat101"] = &model.Materia{ID: "mat101", Nombre: "Matematica I", Categoria: "Matematicas"}

	first, err := repo.FindByID(ctx, "mat101")
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, "mat101")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.findCalls)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists("materia:mat101"))
	assert.Equal(t, 5*time.Minute, mr.TTL("materia:mat101"))
}

func TestCache_FindByID_NoEncontradaNoSeCachea(t *testing.T) {
	repo, inner, mr := buildCacheRepo(t)

	_, err := repo.FindByID(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, inner.findCalls)
	assert.False(t, mr.Exists("materia:nope"))
}

func TestCache_FindByID_ExpiraTrasTTL(t *testing.T) {
	repo, inner, mr := buildCacheRepo(t)
	ctx := context.Background()
	inner.materias["fis1"] = &model.Materia{ID: "fis1", Nombre: "Fisica I", Categoria: "Fisica"}

	_, err := repo.FindByID(ctx, "fis1")
	require.NoError(t, err)
	mr.FastForward(6 * time.Minute)
	_, err = repo.FindByID(ctx, "fis1")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.findCalls)
}

func TestCache_Create_PueblaCache(t *testing.T) {
	repo, inner, mr := buildCacheRepo(t)
	ctx := context.Background()
	m := &model.Materia{ID: "qui1", Nombre: "Quimica", Categoria: "Ciencias"}

	require.NoError(t, repo.Create(ctx, m))
	assert.True(t, mr.Exists("materia:qui1"))

	got, err := repo.FindByID(ctx, "qui1")
	require.NoError(t, err)
	assert.Equal(t, 0, inner.findCalls)
	assert.Equal(t, "Quimica", got.Nombre)
	assert.True(t, m.CreatedAt.Equal(got.CreatedAt))
}

func TestCache_Create_DuplicadaNoTocaCache(t *testing.T) {
	repo, inner, mr := buildCacheRepo(t)
	inner.materias["qui1"] = &model.Materia{ID: "qui1", Nombre: "Original", Categoria: "Ciencias"}

	err := repo.Create(context.Background(), &model.Materia{ID: "qui1", Nombre: "Otra", Categoria: "X"})

	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.False(t, mr.Exists("materia:qui1"))
}

func TestCache_RedisCaido_CaeAlStore(t *testing.T) {
	repo, inner, mr := buildCacheRepo(t)
	inner.materias["mat101"] = &model.Materia{ID: "mat101", Nombre: "Matematica I", Categoria: "Matematicas"}
	mr.Close()

	got, err := repo.FindByID(context.Background(), "mat101")

	require.NoError(t, err)
	assert.Equal(t, "Matematica I", got.Nombre)
}

func TestCache_Ping(t *testing.T) {
	repo, inner, _ := buildCacheRepo(t)
	require.NoError(t, repo.Ping(context.Background()))

	inner.pingErr = errors.New("store down")
	assert.Error(t, repo.Ping(context.Background()))
}

func TestCache_RedisCaido_PingSoloReportaCache(t *testing.T) {
	repo, _, mr := buildCacheRepo(t)
	mr.Close()

	assert.NoError(t, repo.Ping(context.Background()))
	pinger, ok := repo.(CachePinger)
	require.True(t, ok)
	assert.Error(t, pinger.PingCache(context.Background()))
}
