package router

import (
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/config"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/handler"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/metrics"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/middleware"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/repository"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/service"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Mongo/Postgres (+ Redis)
func New(cfg *config.Config, repo repository.MateriaRepository) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())
	// Recovery sits inside Logger and Metrics so recovered panics are logged and counted as 500s.
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())

	materiaSvc := service.NewMateriaService(repo)
	materiasH := handler.NewMateriasHandler(materiaSvc)

	r.GET("/", handler.Status)
	r.GET("/health", handler.Health(repo))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	materias := r.Group("/materias")
	{
		materias.GET("", materiasH.Listar)
		materias.POST("", materiasH.Crear)
		materias.GET("/:id", materiasH.ObtenerPorID)
	}

	return r
}
