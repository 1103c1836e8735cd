// Package genai calls a Gemini-style text-generation endpoint to produce quiz
// questions. The model is untrusted: its output is fence-stripped, parsed and
// validated before anything reaches the catalog.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultAPIURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// GeneratedQuestion mirrors the JSON shape the model is instructed to return.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// GenerationError reports an upstream failure with the raw offending text so
// callers can surface it for diagnosis instead of fabricating a quiz.
type GenerationError struct {
	Reason string
	Raw    string
}

func (e *GenerationError) Error() string {
	if e.Raw == "" {
		return "generation failed: " + e.Reason
	}
	return fmt.Sprintf("generation failed: %s: %q", e.Reason, e.Raw)
}

type Client struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
}

func NewClient(apiKey, apiURL string) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     apiKey,
		apiURL:     apiURL,
	}
}

func (c *Client) Available() bool { return c.apiKey != "" }

// request/response shapes for the generateContent API.
type genRequest struct {
	Contents []genContent `json:"contents"`
}
type genContent struct {
	Parts []genPart `json:"parts"`
}
type genPart struct {
	Text string `json:"text"`
}
type genResponse struct {
	Candidates []struct {
		Content struct {
			Parts []genPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateQuestions asks the model for count multiple-choice questions on
// topic and returns them validated. Every failure path is a *GenerationError
// carrying whatever text the model produced.
func (c *Client) GenerateQuestions(ctx context.Context, topic string, count int) ([]GeneratedQuestion, error) {
	if !c.Available() {
		return nil, &GenerationError{Reason: "generation is not configured"}
	}

	prompt := fmt.Sprintf(`Generate %d multiple-choice questions on %s.
Each question must have exactly 4 options and one correctAnswer.
Return ONLY valid JSON (no markdown, no explanation) in this format:
[
  { "question": "....", "options": ["A","B","C","D"], "correctAnswer": "B" }
]`, count, topic)

	body, err := json.Marshal(genRequest{Contents: []genContent{{Parts: []genPart{{Text: prompt}}}}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"?key="+c.apiKey, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &GenerationError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GenerationError{Reason: "read response: " + err.Error()}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &GenerationError{Reason: fmt.Sprintf("upstream status %d", resp.StatusCode), Raw: string(raw)}
	}

	var gr genResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return nil, &GenerationError{Reason: "unparseable response envelope", Raw: string(raw)}
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, &GenerationError{Reason: "empty candidate", Raw: string(raw)}
	}

	text := stripFences(gr.Candidates[0].Content.Parts[0].Text)
	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(text), &questions); err != nil {
		return nil, &GenerationError{Reason: "model returned invalid JSON", Raw: text}
	}
	if err := validate(questions); err != nil {
		return nil, &GenerationError{Reason: err.Error(), Raw: text}
	}
	return questions, nil
}

// stripFences removes markdown code-fence markers the model adds despite
// being told not to.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func validate(questions []GeneratedQuestion) error {
	if len(questions) == 0 {
		return fmt.Errorf("model returned no questions")
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("question %d has empty text", i)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d has %d options, need at least 2", i, len(q.Options))
		}
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			return fmt.Errorf("question %d has empty correctAnswer", i)
		}
	}
	return nil
}
