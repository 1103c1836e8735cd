package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func modelServer(t *testing.T, modelText string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			t.Errorf("request missing api key")
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": modelText}}}},
			},
		})
	}))
}

func TestGenerateQuestionsStripsFences(t *testing.T) {
	srv := modelServer(t, "```json\n[{\"question\":\"2+2?\",\"options\":[\"3\",\"4\",\"5\",\"6\"],\"correctAnswer\":\"4\"}]\n```", http.StatusOK)
	defer srv.Close()

	c := NewClient("test-key", srv.URL)
	got, err := c.GenerateQuestions(context.Background(), "math", 1)
	if err != nil {
		t.Fatalf("GenerateQuestions: %v", err)
	}
	if len(got) != 1 || got[0].CorrectAnswer != "4" {
		t.Fatalf("parsed questions = %+v", got)
	}
}

func TestGenerateQuestionsMalformedJSON(t *testing.T) {
	srv := modelServer(t, "sorry, I can't do that", http.StatusOK)
	defer srv.Close()

	c := NewClient("test-key", srv.URL)
	_, err := c.GenerateQuestions(context.Background(), "math", 1)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("err = %v, want *GenerationError", err)
	}
	if genErr.Raw != "sorry, I can't do that" {
		t.Fatalf("raw text not preserved for diagnosis: %+v", genErr)
	}
}

func TestGenerateQuestionsRejectsInvalidShape(t *testing.T) {
	srv := modelServer(t, `[{"question":"only one option","options":["x"],"correctAnswer":"x"}]`, http.StatusOK)
	defer srv.Close()

	c := NewClient("test-key", srv.URL)
	_, err := c.GenerateQuestions(context.Background(), "math", 1)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("err = %v, want *GenerationError", err)
	}
}

func TestGenerateQuestionsUpstreamStatus(t *testing.T) {
	srv := modelServer(t, "irrelevant", http.StatusTooManyRequests)
	defer srv.Close()

	c := NewClient("test-key", srv.URL)
	_, err := c.GenerateQuestions(context.Background(), "math", 1)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("err = %v, want *GenerationError", err)
	}
}

func TestGenerateQuestionsUnconfigured(t *testing.T) {
	c := NewClient("", "")
	if c.Available() {
		t.Fatalf("client without key reports available")
	}
	if _, err := c.GenerateQuestions(context.Background(), "math", 1); err == nil {
		t.Fatalf("expected error without api key")
	}
}
