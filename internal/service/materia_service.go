package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/dto"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/model"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/repository"
)

var (
	ErrCamposObligatorios  = errors.New("missing required fields: id, nombre, categoria")
	ErrMateriaDuplicada    = errors.New("materia id already exists")
	ErrMateriaNoEncontrada = errors.New("materia not found")
)

// MateriaService defines business operations for materias.
type MateriaService interface {
	Crear(ctx context.Context, req dto.CrearMateriaRequest) (dto.MateriaResponse, error)
	Listar(ctx context.Context, filter dto.MateriaFilter) (dto.ListaMateriasResponse, error)
	ObtenerPorID(ctx context.Context, id string) (dto.MateriaResponse, error)
}

type materiaService struct {
	repo repository.MateriaRepository
}

func NewMateriaService(repo repository.MateriaRepository) MateriaService {
	return &materiaService{repo: repo}
}

// mapMateria converts a stored record to its public shape: the primary key is
// exposed as id and nothing else is added.
func mapMateria(m model.Materia) dto.MateriaResponse {
	return dto.MateriaResponse{
		ID:          m.ID,
		Nombre:      m.Nombre,
		Categoria:   m.Categoria,
		Descripcion: m.Descripcion,
		CreatedAt:   m.CreatedAt,
	}
}

func (s *materiaService) Crear(ctx context.Context, req dto.CrearMateriaRequest) (dto.MateriaResponse, error) {
	req.Normalizar()
	if req.ID == "" || req.Nombre == "" || req.Categoria == "" {
		return dto.MateriaResponse{}, ErrCamposObligatorios
	}

	existing, err := s.repo.FindByID(ctx, req.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return dto.MateriaResponse{}, fmt.Errorf("buscar materia %q: %w", req.ID, err)
	}
	if existing != nil {
		return dto.MateriaResponse{}, ErrMateriaDuplicada
	}

	m := &model.Materia{
		ID:          req.ID,
		Nombre:      req.Nombre,
		Categoria:   req.Categoria,
		Descripcion: req.Descripcion,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		// Another request won the race between the lookup and the insert.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return dto.MateriaResponse{}, ErrMateriaDuplicada
		}
		return dto.MateriaResponse{}, fmt.Errorf("crear materia %q: %w", req.ID, err)
	}
	return mapMateria(*m), nil
}

func (s *materiaService) Listar(ctx context.Context, filter dto.MateriaFilter) (dto.ListaMateriasResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.ListaMateriasResponse{}, fmt.Errorf("listar materias: %w", err)
	}
	result := make([]dto.MateriaResponse, 0, len(list))
	for _, m := range list {
		result = append(result, mapMateria(m))
	}
	return dto.ListaMateriasResponse{Count: len(result), Materias: result}, nil
}

func (s *materiaService) ObtenerPorID(ctx context.Context, id string) (dto.MateriaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.MateriaResponse{}, ErrMateriaNoEncontrada
		}
		return dto.MateriaResponse{}, fmt.Errorf("obtener materia %q: %w", id, err)
	}
	return mapMateria(*m), nil
}
