package quiz

// Question is one multiple-choice item. Options are ordered; their position is
// what the A-D letter answers index into.
type Question struct {
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Quiz is the full definition including question bodies and answer keys.
// Question order is significant: submitted answers align positionally.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Topic     string     `json:"topic"`
	OwnerID   string     `json:"created_by"`
	Questions []Question `json:"questions"`
	CreatedAt int64      `json:"created_at"`
	UpdatedAt int64      `json:"updated_at"`
}

// QuizSummary is the catalog-listing shape: no question bodies, no answer keys.
type QuizSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Topic         string `json:"topic"`
	OwnerID       string `json:"created_by"`
	QuestionCount int    `json:"question_count"`
	CreatedAt     int64  `json:"created_at"`
}

// Attempt is one immutable scoring record. Responses are stored exactly as
// submitted, unnormalized, so the review view can always be rebuilt from them.
type Attempt struct {
	ID        string   `json:"id"`
	QuizID    string   `json:"quiz_id"`
	UserID    string   `json:"user_id"`
	Score     int      `json:"score"`
	Responses []string `json:"responses"`
	CreatedAt int64    `json:"created_at"`
}

// Actor is the authenticated caller as seen by the core operations.
type Actor struct {
	ID       string
	Username string
	Role     string
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
