package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/dto"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/model"

	"gorm.io/gorm"
)

type materiaGormRepo struct {
	db  *gorm.DB
	now func() time.Time
}

// NewMateriaGormRepository backs materias with a single Postgres table.
// The *gorm.DB must be opened with TranslateError so key collisions surface
// as gorm.ErrDuplicatedKey.
func NewMateriaGormRepository(db *gorm.DB) MateriaRepository {
	return &materiaGormRepo{db: db, now: time.Now}
}

func (r *materiaGormRepo) Create(ctx context.Context, m *model.Materia) error {
	m.CreatedAt = r.now().UTC().Truncate(time.Millisecond)
	err := r.db.WithContext(ctx).Create(m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (r *materiaGormRepo) FindByID(ctx context.Context, id string) (*model.Materia, error) {
	var m model.Materia
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *materiaGormRepo) List(ctx context.Context, filter dto.MateriaFilter) ([]model.Materia, error) {
	limit, skip := NormalizarPaginacion(filter)

	q := r.db.WithContext(ctx).Model(&model.Materia{})
	if filter.Categoria != "" {
		q = q.Where("categoria = ?", filter.Categoria)
	}
	if filter.Q != "" {
		pattern := "%" + escapeLike(filter.Q) + "%"
		q = q.Where("(nombre ILIKE ? OR descripcion ILIKE ?)", pattern, pattern)
	}

	list := make([]model.Materia, 0)
	err := q.Order("created_at desc").
		Limit(int(limit)).
		Offset(int(skip)).
		Find(&list).Error
	return list, err
}

func (r *materiaGormRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralises LIKE wildcards; backslash is Postgres' default escape.
func escapeLike(s string) string { return likeEscaper.Replace(s) }
