package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SQLStore persists quizzes and results through database/sql. Question and
// response sequences live in JSON columns so positional order survives
// round-trips on both sqlite and postgres. $N placeholders work on both
// drivers this app ships with.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) PutQuiz(ctx context.Context, q Quiz) error {
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quizzes (id,title,topic,created_by,questions_json,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, topic=EXCLUDED.topic, questions_json=EXCLUDED.questions_json, updated_at=EXCLUDED.updated_at`,
		q.ID, q.Title, q.Topic, q.OwnerID, string(qj), q.CreatedAt, q.UpdatedAt)
	return err
}

func (s *SQLStore) GetQuiz(ctx context.Context, id string) (Quiz, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,title,topic,created_by,questions_json,created_at,updated_at FROM quizzes WHERE id=$1`, id)
	var q Quiz
	var qjson string
	if err := row.Scan(&q.ID, &q.Title, &q.Topic, &q.OwnerID, &qjson, &q.CreatedAt, &q.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Quiz{}, fmt.Errorf("quiz %s: %w", id, ErrNotFound)
		}
		return Quiz{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
		return Quiz{}, fmt.Errorf("unmarshal questions: %w", err)
	}
	return q, nil
}

func (s *SQLStore) DeleteQuiz(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("quiz %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQLStore) ListQuizzes(ctx context.Context, opts ListOpts) ([]QuizSummary, error) {
	query := `SELECT id,title,topic,created_by,questions_json,created_at FROM quizzes`
	args := []any{}
	if opts.OwnerID != "" {
		query += ` WHERE created_by=$1`
		args = append(args, opts.OwnerID)
	}
	query += ` ORDER BY created_at DESC, id`
	if opts.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, opts.Limit, opts.Offset)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []QuizSummary{}
	for rows.Next() {
		var sum QuizSummary
		var qjson string
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.Topic, &sum.OwnerID, &qjson, &sum.CreatedAt); err != nil {
			return nil, err
		}
		var questions []Question
		if err := json.Unmarshal([]byte(qjson), &questions); err == nil {
			sum.QuestionCount = len(questions)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *SQLStore) CreateResult(ctx context.Context, a Attempt) error {
	rj, err := json.Marshal(a.Responses)
	if err != nil {
		return fmt.Errorf("marshal responses: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO results (id,user_id,quiz_id,score,responses_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.UserID, a.QuizID, a.Score, string(rj), a.CreatedAt)
	return err
}

func (s *SQLStore) GetResult(ctx context.Context, id string) (Attempt, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,user_id,quiz_id,score,responses_json,created_at FROM results WHERE id=$1`, id)
	a, err := scanResult(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Attempt{}, fmt.Errorf("result %s: %w", id, ErrNotFound)
		}
		return Attempt{}, err
	}
	return a, nil
}

func (s *SQLStore) ListResultsByUser(ctx context.Context, userID string) ([]Attempt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,user_id,quiz_id,score,responses_json,created_at FROM results
		 WHERE user_id=$1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Attempt{}
	for rows.Next() {
		a, err := scanResult(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanResult(scan func(...any) error) (Attempt, error) {
	var a Attempt
	var rjson string
	if err := scan(&a.ID, &a.UserID, &a.QuizID, &a.Score, &rjson, &a.CreatedAt); err != nil {
		return Attempt{}, err
	}
	if err := json.Unmarshal([]byte(rjson), &a.Responses); err != nil {
		a.Responses = []string{}
	}
	return a, nil
}
