// Package llm talks to the Gemini generateContent API for article selection
// and persona summaries.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"news_curator/internal/domain"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel   = "gemini-2.0-flash"

	candidateSummaryLimit = 100
)

var ErrEmptyResponse = errors.New("empty response from Gemini API")

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

const apiKeyHeader = "x-goog-api-key"

// Client is a single-shot Gemini client. It never retries.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		apiKey:     cfg.APIKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With("component", "llm", "model", model),
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends one prompt and returns the text of the first candidate.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	// Transport errors quote the URL, so the key must stay out of it.
	url := fmt.Sprintf("%s/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API returned status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("gemini call finished", "duration", time.Since(start))
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

type promptCandidate struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Tags    []domain.Category `json:"tags"`
	Summary string            `json:"summary"`
}

// SelectArticles asks the model to pick count ids out of candidates. The
// returned ids are unvalidated; callers match them against their window.
func (c *Client) SelectArticles(ctx context.Context, candidates []domain.Article, persona string, interests []domain.Category, count int) ([]string, error) {
	prompt, err := selectionPrompt(candidates, persona, interests, count)
	if err != nil {
		return nil, err
	}

	text, err := c.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &ids); err != nil {
		c.logger.Warn("unparseable selection response", "error", err, "text", truncate(text, 200))
		return nil, fmt.Errorf("decode selected ids: %w", err)
	}
	return ids, nil
}

func selectionPrompt(candidates []domain.Article, persona string, interests []domain.Category, count int) (string, error) {
	simple := make([]promptCandidate, 0, len(candidates))
	for _, a := range candidates {
		simple = append(simple, promptCandidate{
			ID:      a.ID,
			Title:   a.Title,
			Tags:    a.Tags,
			Summary: truncate(a.Summary, candidateSummaryLimit),
		})
	}
	encoded, err := json.Marshal(simple)
	if err != nil {
		return "", fmt.Errorf("marshal candidates: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a tech article recommender. Select the best %d articles from the CANDIDATES list for this reader.\n\n", count)
	b.WriteString("USER_INTERESTS: ")
	if len(interests) == 0 {
		b.WriteString("(none)")
	} else {
		for i, t := range interests {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(string(t))
		}
	}
	b.WriteString("\n\nUSER_PERSONA: ")
	if strings.TrimSpace(persona) == "" {
		b.WriteString("(unknown)")
	} else {
		b.WriteString(persona)
	}
	b.WriteString("\n\nCANDIDATES (JSON):\n")
	b.Write(encoded)
	fmt.Fprintf(&b, "\n\nRespond ONLY with a JSON array of the IDs of the %d selected articles. Example: [\"id1\", \"id2\"]", count)
	return b.String(), nil
}

// DescribePersona summarizes the reader from recent feedback. An empty
// answer is an error so the caller keeps the previous description.
func (c *Client) DescribePersona(ctx context.Context, current string, history []domain.Feedback) (string, error) {
	text, err := c.Generate(ctx, personaPrompt(current, history))
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(stripCodeFence(text))
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func personaPrompt(current string, history []domain.Feedback) string {
	var b strings.Builder
	b.WriteString("You maintain a short profile of a software developer's reading taste.\n\n")
	b.WriteString("CURRENT_PERSONA: ")
	if strings.TrimSpace(current) == "" {
		b.WriteString("(none yet)")
	} else {
		b.WriteString(current)
	}
	b.WriteString("\n\nRECENT_FEEDBACK:\n")
	for _, f := range history {
		fmt.Fprintf(&b, "- Helpful: %t, Reason: %s\n", f.IsHelpful, f.Reason)
	}
	b.WriteString("\nRewrite the persona in 2-3 sentences describing what this reader finds valuable and what they want to avoid. Respond with the persona text only.")
	return b.String()
}

// stripCodeFence removes a markdown code fence around the model output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
