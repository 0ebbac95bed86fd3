// cmd/seedmaterias/main.go — Carga materias de demo en el store configurado.
// Uso: go run ./cmd/seedmaterias [materias.json]
//
// The optional file holds a JSON array of {id, nombre, categoria, descripcion}.
// Existing ids are skipped, so the command can be re-run safely.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/config"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/dto"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/infra"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var demo = []dto.CrearMateriaRequest{
	{ID: "mat101", Nombre: "Matematica I", Categoria: "Matematicas", Descripcion: "Algebra basica"},
	{ID: "mat102", Nombre: "Matematica II", Categoria: "Matematicas", Descripcion: "Calculo diferencial"},
	{ID: "fis101", Nombre: "Fisica I", Categoria: "Fisica", Descripcion: "Mecanica clasica"},
	{ID: "qui101", Nombre: "Quimica General", Categoria: "Quimica"},
	{ID: "prg101", Nombre: "Programacion I", Categoria: "Informatica", Descripcion: "Introduccion a la programacion"},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	materias := demo
	if len(os.Args) > 1 {
		materias, err = readFile(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read seed file")
		}
	}

	ctx := context.Background()
	repo, closeStore, err := infra.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to connect to store")
	}
	defer closeStore()

	svc := service.NewMateriaService(repo)
	created, skipped := 0, 0
	for _, req := range materias {
		_, err := svc.Crear(ctx, req)
		switch {
		case err == nil:
			created++
		case errors.Is(err, service.ErrMateriaDuplicada):
			skipped++
		default:
			log.Error().Err(err).Str("id", req.ID).Msg("seed failed")
		}
	}
	fmt.Printf("✅ %d materias creadas, %d ya existian\n", created, skipped)
}

func readFile(path string) ([]dto.CrearMateriaRequest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []dto.CrearMateriaRequest
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}
