package quiz

import (
	"reflect"
	"testing"
)

func TestExplainNilQuizDegrades(t *testing.T) {
	a := Attempt{ID: "a1", QuizID: "gone", Responses: []string{"x"}}
	got := Explain(a, nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("Explain with nil quiz = %#v, want empty non-nil slice", got)
	}
}

func TestExplainOnlyMistakesCarryExplanations(t *testing.T) {
	q := capitalsQuiz()
	a := Attempt{Responses: []string{"Paris", "C"}}
	rows := Explain(a, &q)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if !rows[0].Correct || rows[0].Explanation != "" {
		t.Fatalf("correct answer must omit explanation, got %+v", rows[0])
	}
	if rows[1].Correct {
		t.Fatalf("wrong answer marked correct: %+v", rows[1])
	}
	if rows[1].Explanation != NoExplanation {
		t.Fatalf("missing explanation = %q, want placeholder %q", rows[1].Explanation, NoExplanation)
	}
}

func TestExplainUnansweredQuestion(t *testing.T) {
	q := capitalsQuiz()
	a := Attempt{Responses: []string{"London"}}
	rows := Explain(a, &q)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1].UserAnswer != "" || rows[1].Correct {
		t.Fatalf("unanswered row = %+v, want empty incorrect answer", rows[1])
	}
	if rows[0].Explanation != "Paris has been the capital since 987." {
		t.Fatalf("wrong answer should carry the author explanation, got %q", rows[0].Explanation)
	}
}

func TestExplainShowsRawUserAnswer(t *testing.T) {
	q := capitalsQuiz()
	a := Attempt{Responses: []string{" PARIS  ", "B"}}
	rows := Explain(a, &q)
	if rows[0].UserAnswer != " PARIS  " {
		t.Fatalf("user answer must stay raw for display, got %q", rows[0].UserAnswer)
	}
	if !rows[0].Correct {
		t.Fatalf("raw answer should still compare correct after normalization")
	}
}

func TestExplainIdempotent(t *testing.T) {
	q := capitalsQuiz()
	a := Attempt{Responses: []string{"paris"}}
	first := Explain(a, &q)
	second := Explain(a, &q)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Explain is not idempotent:\nfirst  %#v\nsecond %#v", first, second)
	}
}

func TestExplainRecomputesAgainstEditedQuiz(t *testing.T) {
	q := capitalsQuiz()
	a := Attempt{Score: 1, Responses: []string{"Paris", ""}}

	before := Explain(a, &q)
	if !before[0].Correct {
		t.Fatalf("answer should be correct before the edit")
	}

	// Edit the answer key after the attempt: the display verdict flips while
	// the stored score on the attempt is untouched.
	q.Questions[0].CorrectAnswer = "Berlin"
	after := Explain(a, &q)
	if after[0].Correct {
		t.Fatalf("display verdict should flip after the key edit")
	}
	if a.Score != 1 {
		t.Fatalf("stored score changed: %d", a.Score)
	}
}
