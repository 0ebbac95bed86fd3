package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/repository"

	"github.com/gin-gonic/gin"
)

// Status answers GET / without touching any dependency.
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "materias"})
}

// Health pings the backing store; never exposes credentials or internals.
// When a cache is wired its state is reported under "cache" but does not
// affect the status code, since lookups fall back to the store.
func Health(repo repository.MateriaRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storeStatus := "connected"
		status := http.StatusOK
		if repo.Ping(ctx) != nil {
			storeStatus = "error"
			status = http.StatusServiceUnavailable
		}

		body := gin.H{
			"ok":    status == http.StatusOK,
			"store": storeStatus,
		}
		if cp, ok := repo.(repository.CachePinger); ok {
			body["cache"] = "connected"
			if cp.PingCache(ctx) != nil {
				body["cache"] = "error"
			}
		}
		c.JSON(status, body)
	}
}
