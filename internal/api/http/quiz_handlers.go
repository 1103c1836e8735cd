package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quizdeck/quizdeck/internal/auth"
	"github.com/quizdeck/quizdeck/internal/quiz"
)

// QuizService is the slice of the core service the handlers depend on.
type QuizService interface {
	CreateQuiz(ctx context.Context, actor quiz.Actor, title, topic string, questions []quiz.Question) (quiz.Quiz, error)
	GenerateQuiz(ctx context.Context, actor quiz.Actor, topic string, numQuestions int) (quiz.Quiz, error)
	GetQuiz(ctx context.Context, id string) (quiz.Quiz, error)
	ListQuizzes(ctx context.Context, opts quiz.ListOpts) ([]quiz.QuizSummary, error)
	EditQuiz(ctx context.Context, actor quiz.Actor, id string, patch quiz.QuizPatch) (quiz.Quiz, error)
	DeleteQuiz(ctx context.Context, actor quiz.Actor, id string) error
	SubmitAttempt(ctx context.Context, actor quiz.Actor, quizID string, responses []string) (quiz.SubmitReceipt, error)
	GetAttempt(ctx context.Context, actor quiz.Actor, id string) (quiz.ResultView, error)
	ListAttemptsForActor(ctx context.Context, actor quiz.Actor) ([]quiz.ResultView, error)
}

func CreateQuizHandler(svc QuizService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title     string          `json:"title"`
			Topic     string          `json:"topic"`
			Questions []quiz.Question `json:"questions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		q, err := svc.CreateQuiz(r.Context(), auth.ActorFromContext(r.Context()), req.Title, req.Topic, req.Questions)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, q)
	}
}

func GenerateQuizHandler(svc QuizService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Topic        string `json:"topic"`
			NumQuestions int    `json:"numQuestions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		q, err := svc.GenerateQuiz(r.Context(), auth.ActorFromContext(r.Context()), req.Topic, req.NumQuestions)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, q)
	}
}

// ListQuizzesHandler serves the public catalog. With ?mine=1 it filters to
// the caller's quizzes, which needs a valid credential.
func ListQuizzesHandler(svc QuizService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := quiz.ListOpts{}
		if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
			opts.Limit = limit
		}
		if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset > 0 {
			opts.Offset = offset
		}
		if r.URL.Query().Get("mine") == "1" {
			actor := auth.ActorFromContext(r.Context())
			if actor.ID == "" {
				writeError(w, quiz.ErrUnauthenticated)
				return
			}
			opts.OwnerID = actor.ID
		}
		out, err := svc.ListQuizzes(r.Context(), opts)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func GetQuizHandler(svc QuizService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := svc.GetQuiz(r.Context(), chi.URLParam(r, "quizID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}

func UpdateQuizHandler(svc QuizService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch quiz.QuizPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		q, err := svc.EditQuiz(r.Context(), auth.ActorFromContext(r.Context()), chi.URLParam(r, "quizID"), patch)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}

func DeleteQuizHandler(svc QuizService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteQuiz(r.Context(), auth.ActorFromContext(r.Context()), chi.URLParam(r, "quizID")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "quiz deleted"})
	}
}
