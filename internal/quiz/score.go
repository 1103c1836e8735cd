package quiz

// Score tallies correct responses against the quiz's questions. The question
// list is authoritative for total: responses shorter than the quiz count as
// unanswered, extra trailing entries are ignored. Scoring is total — it cannot
// fail for any response slice.
func Score(q Quiz, responses []string) (score, total int) {
	total = len(q.Questions)
	for i, question := range q.Questions {
		var raw string
		if i < len(responses) {
			raw = responses[i]
		}
		if answeredCorrectly(question, raw) {
			score++
		}
	}
	return score, total
}

// answeredCorrectly runs both sides through NormalizeAnswer so letter answers
// stay comparable with full-text answers. An answer that normalizes to the
// empty string is never correct, even against a blank answer key.
func answeredCorrectly(q Question, raw string) bool {
	got := NormalizeAnswer(raw, q.Options)
	if got == "" {
		return false
	}
	return got == NormalizeAnswer(q.CorrectAnswer, q.Options)
}
