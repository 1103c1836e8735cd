package quiz

import "testing"

func capitalsQuiz() Quiz {
	return Quiz{
		ID:    "q1",
		Title: "Capitals",
		Topic: "Geography",
		Questions: []Question{
			{
				Text:          "Capital of France?",
				Options:       []string{"Berlin", "Paris", "Madrid", "Rome"},
				CorrectAnswer: "Paris",
				Explanation:   "Paris has been the capital since 987.",
			},
			{
				Text:          "Pick the second option.",
				Options:       []string{"A", "B", "C", "D"},
				CorrectAnswer: "B",
			},
		},
	}
}

func TestScoreFullMarks(t *testing.T) {
	q := capitalsQuiz()
	score, total := Score(q, []string{"paris", "B"})
	if score != 2 || total != 2 {
		t.Fatalf("Score = (%d, %d), want (2, 2)", score, total)
	}
}

func TestScoreMissingResponsesAreUnanswered(t *testing.T) {
	q := capitalsQuiz()
	score, total := Score(q, []string{"London"})
	if score != 0 || total != 2 {
		t.Fatalf("Score = (%d, %d), want (0, 2)", score, total)
	}
}

func TestScoreExtraResponsesIgnored(t *testing.T) {
	q := capitalsQuiz()
	score, total := Score(q, []string{"Paris", "B", "bonus", "more"})
	if score != 2 || total != 2 {
		t.Fatalf("Score = (%d, %d), want (2, 2)", score, total)
	}
}

func TestScoreTotalIsQuestionCount(t *testing.T) {
	q := capitalsQuiz()
	for _, responses := range [][]string{nil, {}, {"x"}, {"x", "y", "z", "w", "v"}} {
		score, total := Score(q, responses)
		if total != len(q.Questions) {
			t.Fatalf("total = %d for %d responses, want %d", total, len(responses), len(q.Questions))
		}
		if score < 0 || score > total {
			t.Fatalf("score %d out of bounds [0,%d]", score, total)
		}
	}
}

func TestScoreLetterAnswerAgainstTextKey(t *testing.T) {
	q := Quiz{Questions: []Question{{
		Text:          "Capital of France?",
		Options:       []string{"Berlin", "Paris", "Madrid", "Rome"},
		CorrectAnswer: "Paris",
	}}}
	score, _ := Score(q, []string{"B"})
	if score != 1 {
		t.Fatalf("letter submission against text key scored %d, want 1", score)
	}
}

func TestScoreBlankAnswerKeyNeverMatches(t *testing.T) {
	// A quiz whose answer key is blank must not credit blank submissions.
	q := Quiz{Questions: []Question{{
		Text:          "broken question",
		Options:       []string{"x", "y"},
		CorrectAnswer: "  ",
	}}}
	score, total := Score(q, []string{""})
	if score != 0 || total != 1 {
		t.Fatalf("Score = (%d, %d), want (0, 1)", score, total)
	}
}
