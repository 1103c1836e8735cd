package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizdeck/quizdeck/internal/auth"
)

// SubmitAttemptHandler scores a submission and returns the receipt. The
// attempt row is durably stored before this responds, so the returned id is
// immediately fetchable.
func SubmitAttemptHandler(svc QuizService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answers []string `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		receipt, err := svc.SubmitAttempt(r.Context(), auth.ActorFromContext(r.Context()), chi.URLParam(r, "quizID"), req.Answers)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, receipt)
	}
}

// GetResultHandler requires authentication but deliberately performs no
// ownership re-check on the result id.
func GetResultHandler(svc QuizService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.GetAttempt(r.Context(), auth.ActorFromContext(r.Context()), chi.URLParam(r, "resultID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func ListResultsHandler(svc QuizService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.ListAttemptsForActor(r.Context(), auth.ActorFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}
