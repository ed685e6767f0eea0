package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/careervault/careervault-server/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps registry failures to HTTP status codes. Unknown
// errors, ledger transport failures included, stay opaque 500s.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
		message = "record not found"
	case errors.Is(err, model.ErrNotOwner):
		status = http.StatusForbidden
		message = "actor does not own record"
	case errors.Is(err, model.ErrInvalidState):
		status = http.StatusConflict
		message = "record is not pending"
	case errors.Is(err, model.ErrRecommendationFailed):
		status = http.StatusBadGateway
		message = "recommendation generation failed"
	}

	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
