package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearMateriaRequest struct {
	ID          string `json:"id"          validate:"required"`
	Nombre      string `json:"nombre"      validate:"required"`
	Categoria   string `json:"categoria"   validate:"required"`
	Descripcion string `json:"descripcion"`
}

var errCampoNoEscalar = errors.New("materia field must be a string, number or boolean")

// UnmarshalJSON accepts any scalar for each field. Falsy values (null, false,
// 0, "") decode as empty, so the required check reports them as missing;
// other numbers and true are kept in their textual form.
func (r *CrearMateriaRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          json.RawMessage `json:"id"`
		Nombre      json.RawMessage `json:"nombre"`
		Categoria   json.RawMessage `json:"categoria"`
		Descripcion json.RawMessage `json:"descripcion"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	if r.ID, err = campoTexto(raw.ID); err != nil {
		return err
	}
	if r.Nombre, err = campoTexto(raw.Nombre); err != nil {
		return err
	}
	if r.Categoria, err = campoTexto(raw.Categoria); err != nil {
		return err
	}
	r.Descripcion, err = campoTexto(raw.Descripcion)
	return err
}

func campoTexto(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", nil
	}
	switch raw[0] {
	case 'n', 'f':
		return "", nil
	case 't':
		return "true", nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", errCampoNoEscalar
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return "", err
	}
	if f == 0 {
		return "", nil
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// Normalizar trims every field in place. Required checks run afterwards, so a
// whitespace-only value counts as missing.
func (r *CrearMateriaRequest) Normalizar() {
	r.ID = strings.TrimSpace(r.ID)
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Categoria = strings.TrimSpace(r.Categoria)
	r.Descripcion = strings.TrimSpace(r.Descripcion)
}

// MateriaFilter carries the GET /materias query. Limit and Skip are raw values;
// the repository clamps them.
type MateriaFilter struct {
	Categoria string
	Q         string
	Limit     int
	Skip      int
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type MateriaResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Categoria   string    `json:"categoria"`
	Descripcion string    `json:"descripcion"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ListaMateriasResponse struct {
	Count    int               `json:"count"`
	Materias []MateriaResponse `json:"materias"`
}

type CrearMateriaResponse struct {
	Message string          `json:"message"`
	Materia MateriaResponse `json:"materia"`
}

type ObtenerMateriaResponse struct {
	Materia MateriaResponse `json:"materia"`
}
