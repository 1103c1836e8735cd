package quiz

// NoExplanation is substituted when a question carries no author explanation.
const NoExplanation = "No explanation provided."

// Explanation is one row of the per-question review view.
type Explanation struct {
	Question      string   `json:"question"`
	UserAnswer    string   `json:"userAnswer"`
	CorrectAnswer string   `json:"correctAnswer"`
	Options       []string `json:"options"`
	Correct       bool     `json:"correct"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Explain re-derives the review view for a stored attempt against the current
// quiz definition. Correctness is recomputed here, not read from the attempt:
// editing a quiz after an attempt changes what this view marks correct while
// the stored score stays frozen. That asymmetry is intentional.
//
// A nil quiz (deleted since the attempt) yields an empty list; the attempt's
// own fields remain servable. Responses shorter than the question list are
// treated as unanswered. Explanation text is populated only for wrong or
// unanswered questions.
func Explain(a Attempt, q *Quiz) []Explanation {
	if q == nil {
		return []Explanation{}
	}
	out := make([]Explanation, 0, len(q.Questions))
	for i, question := range q.Questions {
		var raw string
		if i < len(a.Responses) {
			raw = a.Responses[i]
		}
		row := Explanation{
			Question:      question.Text,
			UserAnswer:    raw,
			CorrectAnswer: question.CorrectAnswer,
			Options:       question.Options,
			Correct:       answeredCorrectly(question, raw),
		}
		if !row.Correct {
			row.Explanation = question.Explanation
			if row.Explanation == "" {
				row.Explanation = NoExplanation
			}
		}
		out = append(out, row)
	}
	return out
}
