package quiz

import "context"

// ListOpts filters catalog listings.
type ListOpts struct {
	OwnerID string // restrict to one creator ("my quizzes")
	Limit   int
	Offset  int
}

// Store is the durable backend for quizzes and attempt results. Results are
// append-only: no update or delete is exposed for them.
type Store interface {
	PutQuiz(ctx context.Context, q Quiz) error
	GetQuiz(ctx context.Context, id string) (Quiz, error)
	DeleteQuiz(ctx context.Context, id string) error
	ListQuizzes(ctx context.Context, opts ListOpts) ([]QuizSummary, error)

	CreateResult(ctx context.Context, a Attempt) error
	GetResult(ctx context.Context, id string) (Attempt, error)
	// ListResultsByUser returns the user's attempts, most recent first.
	ListResultsByUser(ctx context.Context, userID string) ([]Attempt, error)
}
