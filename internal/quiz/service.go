package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck/internal/genai"
	syncx "github.com/quizdeck/quizdeck/internal/sync"
)

// Generator is the external text-generation collaborator used by GenerateQuiz.
type Generator interface {
	GenerateQuestions(ctx context.Context, topic string, count int) ([]genai.GeneratedQuestion, error)
}

// EventAppender records audit events for stored attempts.
type EventAppender interface {
	Append(ctx context.Context, e syncx.Event) error
}

// Service implements the core operations over a Store. The actor is passed
// explicitly on every call; there is no ambient auth state.
type Service struct {
	store     Store
	generator Generator
	events    EventAppender

	now   func() time.Time
	newID func() string
}

func NewService(store Store, generator Generator, events EventAppender) *Service {
	return &Service{
		store:     store,
		generator: generator,
		events:    events,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// SubmitReceipt is handed back from SubmitAttempt so the client can fetch the
// stored result immediately.
type SubmitReceipt struct {
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	AttemptID string `json:"attempt_id"`
}

// ResultView is a stored attempt joined against the live quiz definition.
// Title/Topic are blank and Explanations empty when the quiz no longer
// resolves; the attempt's own fields are always populated.
type ResultView struct {
	Attempt      Attempt       `json:"attempt"`
	QuizTitle    string        `json:"quiz_title,omitempty"`
	QuizTopic    string        `json:"quiz_topic,omitempty"`
	Total        int           `json:"total"`
	Explanations []Explanation `json:"explanations"`
}

func (s *Service) CreateQuiz(ctx context.Context, actor Actor, title, topic string, questions []Question) (Quiz, error) {
	if actor.ID == "" {
		return Quiz{}, ErrUnauthenticated
	}
	if err := validateQuizInput(title, topic, questions); err != nil {
		return Quiz{}, err
	}
	now := s.now().Unix()
	q := Quiz{
		ID:        s.newID(),
		Title:     strings.TrimSpace(title),
		Topic:     strings.TrimSpace(topic),
		OwnerID:   actor.ID,
		Questions: questions,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.PutQuiz(ctx, q); err != nil {
		return Quiz{}, err
	}
	return q, nil
}

// GenerateQuiz builds a quiz from the text-generation collaborator and
// persists it under the caller. Upstream failures propagate as
// *genai.GenerationError and nothing is stored.
func (s *Service) GenerateQuiz(ctx context.Context, actor Actor, topic string, numQuestions int) (Quiz, error) {
	if actor.ID == "" {
		return Quiz{}, ErrUnauthenticated
	}
	if strings.TrimSpace(topic) == "" || numQuestions <= 0 {
		return Quiz{}, fmt.Errorf("topic and numQuestions required: %w", ErrInvalidInput)
	}
	generated, err := s.generator.GenerateQuestions(ctx, topic, numQuestions)
	if err != nil {
		return Quiz{}, err
	}
	questions := make([]Question, 0, len(generated))
	for _, g := range generated {
		questions = append(questions, Question{
			Text:          g.Question,
			Options:       g.Options,
			CorrectAnswer: g.CorrectAnswer,
			Explanation:   g.Explanation,
		})
	}
	return s.CreateQuiz(ctx, actor, topic+" Quiz", topic, questions)
}

func (s *Service) GetQuiz(ctx context.Context, id string) (Quiz, error) {
	return s.store.GetQuiz(ctx, id)
}

func (s *Service) ListQuizzes(ctx context.Context, opts ListOpts) ([]QuizSummary, error) {
	return s.store.ListQuizzes(ctx, opts)
}

// QuizPatch carries the mutable fields of EditQuiz; nil means keep current.
type QuizPatch struct {
	Title     *string    `json:"title"`
	Topic     *string    `json:"topic"`
	Questions []Question `json:"questions"`
}

func (s *Service) EditQuiz(ctx context.Context, actor Actor, id string, patch QuizPatch) (Quiz, error) {
	if actor.ID == "" {
		return Quiz{}, ErrUnauthenticated
	}
	q, err := s.store.GetQuiz(ctx, id)
	if err != nil {
		return Quiz{}, err
	}
	if !CanMutate(actor, q) {
		return Quiz{}, fmt.Errorf("edit quiz %s: %w", id, ErrForbidden)
	}
	if patch.Title != nil {
		q.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Topic != nil {
		q.Topic = strings.TrimSpace(*patch.Topic)
	}
	if patch.Questions != nil {
		q.Questions = patch.Questions
	}
	if err := validateQuizInput(q.Title, q.Topic, q.Questions); err != nil {
		return Quiz{}, err
	}
	q.UpdatedAt = s.now().Unix()
	if err := s.store.PutQuiz(ctx, q); err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *Service) DeleteQuiz(ctx context.Context, actor Actor, id string) error {
	if actor.ID == "" {
		return ErrUnauthenticated
	}
	q, err := s.store.GetQuiz(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutate(actor, q) {
		return fmt.Errorf("delete quiz %s: %w", id, ErrForbidden)
	}
	// No cascade: existing results keep their weak quiz reference and the
	// review view degrades at read time.
	return s.store.DeleteQuiz(ctx, id)
}

// SubmitAttempt scores the responses against the quiz and durably stores the
// attempt before returning, so the receipt id is immediately readable. The
// raw responses are persisted exactly as submitted.
func (s *Service) SubmitAttempt(ctx context.Context, actor Actor, quizID string, responses []string) (SubmitReceipt, error) {
	if actor.ID == "" {
		return SubmitReceipt{}, ErrUnauthenticated
	}
	q, err := s.store.GetQuiz(ctx, quizID)
	if err != nil {
		return SubmitReceipt{}, err
	}
	score, total := Score(q, responses)
	a := Attempt{
		ID:        s.newID(),
		QuizID:    q.ID,
		UserID:    actor.ID,
		Score:     score,
		Responses: append([]string{}, responses...),
		CreatedAt: s.now().Unix(),
	}
	if err := s.store.CreateResult(ctx, a); err != nil {
		return SubmitReceipt{}, err
	}
	if s.events != nil {
		// Audit only; a failed append must not undo a stored attempt.
		_ = s.events.Append(ctx, syncx.AttemptSubmitted(a.ID, a.QuizID, a.UserID, score, total))
	}
	return SubmitReceipt{Score: score, Total: total, AttemptID: a.ID}, nil
}

// GetAttempt returns a stored attempt with its review view rebuilt against
// the current quiz definition. A dangling quiz reference degrades softly:
// the attempt is still served, with empty explanations.
func (s *Service) GetAttempt(ctx context.Context, actor Actor, id string) (ResultView, error) {
	if actor.ID == "" {
		return ResultView{}, ErrUnauthenticated
	}
	a, err := s.store.GetResult(ctx, id)
	if err != nil {
		return ResultView{}, err
	}
	return s.resultView(ctx, a)
}

// ListAttemptsForActor returns the caller's own attempts, most recent first,
// each joined against its quiz where that still resolves.
func (s *Service) ListAttemptsForActor(ctx context.Context, actor Actor) ([]ResultView, error) {
	if actor.ID == "" {
		return nil, ErrUnauthenticated
	}
	attempts, err := s.store.ListResultsByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	out := make([]ResultView, 0, len(attempts))
	for _, a := range attempts {
		view, err := s.resultView(ctx, a)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *Service) resultView(ctx context.Context, a Attempt) (ResultView, error) {
	view := ResultView{Attempt: a, Total: len(a.Responses), Explanations: []Explanation{}}
	q, err := s.store.GetQuiz(ctx, a.QuizID)
	switch {
	case err == nil:
		view.QuizTitle = q.Title
		view.QuizTopic = q.Topic
		view.Total = len(q.Questions)
		view.Explanations = Explain(a, &q)
	case errors.Is(err, ErrNotFound):
		// Quiz deleted after the attempt: serve the attempt's own fields.
	default:
		return ResultView{}, err
	}
	return view, nil
}

func validateQuizInput(title, topic string, questions []Question) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(topic) == "" || len(questions) == 0 {
		return fmt.Errorf("title, topic and questions required: %w", ErrInvalidInput)
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("question %d: text required: %w", i, ErrInvalidInput)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d: need at least 2 options: %w", i, ErrInvalidInput)
		}
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			return fmt.Errorf("question %d: correctAnswer required: %w", i, ErrInvalidInput)
		}
	}
	return nil
}
