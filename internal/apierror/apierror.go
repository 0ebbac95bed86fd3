// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// Client-facing messages.
const (
	MsgCamposObligatorios  = "missing required fields: id, nombre, categoria"
	MsgMateriaDuplicada    = "a Materia with that id already exists"
	MsgMateriaNoEncontrada = "Materia not found"
	MsgJSONInvalido        = "invalid JSON body"
	MsgErrorInterno        = "internal server error"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}
