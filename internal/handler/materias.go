package handler

import (
	"errors"
	"net/http"

	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/apierror"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/dto"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/metrics"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/repository"
	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/service"

	"github.com/gin-gonic/gin"
)

type MateriasHandler struct{ svc service.MateriaService }

func NewMateriasHandler(svc service.MateriaService) *MateriasHandler {
	return &MateriasHandler{svc: svc}
}

// Listar GET /materias?categoria=&q=&limit=&skip=
// Malformed numbers fall back to the defaults; this endpoint never answers 400.
func (h *MateriasHandler) Listar(c *gin.Context) {
	filter := dto.MateriaFilter{
		Categoria: c.Query("categoria"),
		Q:         c.Query("q"),
		Limit:     queryInt(c, "limit", repository.DefaultLimit),
		Skip:      queryInt(c, "skip", 0),
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /materias
func (h *MateriasHandler) Crear(c *gin.Context) {
	var req dto.CrearMateriaRequest
	if !bindAndValidate(c, &req, apierror.MsgCamposObligatorios) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	switch {
	case err == nil:
		metrics.MateriasCreadas.Inc()
		c.JSON(http.StatusCreated, dto.CrearMateriaResponse{Message: "Materia created", Materia: resp})
	case errors.Is(err, service.ErrCamposObligatorios):
		c.JSON(http.StatusBadRequest, apierror.New(apierror.MsgCamposObligatorios))
	case errors.Is(err, service.ErrMateriaDuplicada):
		c.JSON(http.StatusConflict, apierror.New(apierror.MsgMateriaDuplicada))
	default:
		_ = c.Error(err)
	}
}

// ObtenerPorID GET /materias/:id
// The path id is used as-is, without trimming.
func (h *MateriasHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMateriaNoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(apierror.MsgMateriaNoEncontrada))
			return
		}
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ObtenerMateriaResponse{Materia: resp})
}
