package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizdeck/quizdeck/internal/genai"
	"github.com/quizdeck/quizdeck/internal/quiz"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the domain error taxonomy onto HTTP statuses. Generation
// failures include the raw model text so the caller can see what came back.
func writeError(w http.ResponseWriter, err error) {
	var genErr *genai.GenerationError
	switch {
	case errors.As(err, &genErr):
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"message": "generation failed: " + genErr.Reason,
			"raw":     genErr.Raw,
		})
	case errors.Is(err, quiz.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
	case errors.Is(err, quiz.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": err.Error()})
	case errors.Is(err, quiz.ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"message": err.Error()})
	case errors.Is(err, quiz.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal error"})
	}
}
