package syncx

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// TypeAttemptSubmitted is appended once per stored attempt.
const TypeAttemptSubmitted = "attempt_submitted"

type Event struct {
	Offset    int64
	SiteID    string
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

// AttemptSubmitted builds the audit event for a scored attempt. Key is the
// attempt id so a replayed append can be deduplicated on it.
func AttemptSubmitted(attemptID, quizID, userID string, score, total int) Event {
	data, _ := json.Marshal(map[string]any{
		"quiz_id": quizID,
		"user_id": userID,
		"score":   score,
		"total":   total,
	})
	return Event{Type: TypeAttemptSubmitted, Key: attemptID, DataJSON: string(data)}
}

// EventRepo appends to the append-only event_log table.
type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	site := e.SiteID
	if site == "" {
		site = "local"
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		site, e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}
