package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/DiegoLadrondeGuevara/Materias-Api/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// normalizable requests clean their own fields between binding and validation.
type normalizable interface {
	Normalizar()
}

// bindAndValidate binds the JSON body, normalizes it and runs go-playground/validator
// tags. A missing body binds as an empty object. Any validation failure is
// answered with 400 and invalidMsg. Returns false when a response was written.
func bindAndValidate(c *gin.Context, req interface{}, invalidMsg string) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, apierror.New(apierror.MsgJSONInvalido))
		return false
	}
	if n, ok := req.(normalizable); ok {
		n.Normalizar()
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(invalidMsg))
		return false
	}
	return true
}

// queryInt parses an integer query parameter, returning def when the value is
// absent or not a number.
func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
