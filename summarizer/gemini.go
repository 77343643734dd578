package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adityav-123/reddit-persona-generator/enums"
	"github.com/adityav-123/reddit-persona-generator/models"
)

const (
	defaultModel   = "gemini-1.5-flash-latest"
	defaultBaseURL = "https://generativelanguage.googleapis.com"

	requestTimeout = 30 * time.Second
	corpusLimit    = 4000

	promptTemplate = "Based on the following collection of a person's Reddit comments and posts, " +
		"please write a brief, insightful 2-3 sentence user persona summary. " +
		"Your goal is to capture their personality, tone, and primary interests " +
		"based *only* on the text provided.\n\n---\n\n%s"
)

// Placeholder texts substituted when no summary can be produced. Callers that
// need the cause branch on Outcome.Reason, not on these strings.
const (
	PlaceholderNoAPIKey   = "Can't generate an AI summary because the GOOGLE_API_KEY is missing from the .env file."
	PlaceholderTransport  = "Couldn't reach the AI. There might be a network issue."
	PlaceholderMalformed  = "The AI responded, but I couldn't find a summary in its answer."
	PlaceholderUnexpected = "An unexpected error occurred while talking to the AI."
)

// Outcome is the summarizer's error-to-value result: real model output with
// DegradationNone, or a placeholder tagged with why it degraded.
type Outcome struct {
	Text   string
	Reason enums.Degradation
}

type Summarizer struct {
	logger     *slog.Logger
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Summarizer)

func WithModel(model string) Option {
	return func(s *Summarizer) {
		s.model = model
	}
}

func WithBaseURL(url string) Option {
	return func(s *Summarizer) {
		s.baseURL = url
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *Summarizer) {
		s.httpClient = client
	}
}

func NewSummarizer(logger *slog.Logger, apiKey string, opts ...Option) *Summarizer {
	s := &Summarizer{
		logger:     logger,
		apiKey:     apiKey,
		model:      defaultModel,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize sends the first 4000 characters of the corpus to Gemini and
// returns the persona summary. Failures never propagate; they degrade to a
// tagged placeholder. One attempt, no retry.
func (s *Summarizer) Summarize(ctx context.Context, corpus string) Outcome {
	if s.apiKey == "" {
		return s.degrade(enums.DegradationNoAPIKey, PlaceholderNoAPIKey, nil)
	}

	// Character-based cap; slicing bytes could split a multibyte rune.
	if utf8.RuneCountInString(corpus) > corpusLimit {
		corpus = string([]rune(corpus)[:corpusLimit])
	}
	prompt := fmt.Sprintf(promptTemplate, corpus)

	reqBody := models.GeminiRequest{
		Contents: []models.GeminiContent{
			{Parts: []models.GeminiPart{{Text: prompt}}},
		},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return s.degrade(enums.DegradationUnexpected, PlaceholderUnexpected, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return s.degrade(enums.DegradationUnexpected, PlaceholderUnexpected, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return s.degrade(enums.DegradationTransport, PlaceholderTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return s.degrade(enums.DegradationTransport, PlaceholderTransport, fmt.Errorf("status %d", resp.StatusCode))
	}

	var geminiResp models.GeminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return s.degrade(enums.DegradationUnexpected, PlaceholderUnexpected, err)
	}

	text := extractText(geminiResp)
	if text == "" {
		return s.degrade(enums.DegradationMalformed, PlaceholderMalformed, nil)
	}

	return Outcome{Text: text, Reason: enums.DegradationNone}
}

func extractText(resp models.GeminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parts[0].Text)
}

func (s *Summarizer) degrade(reason enums.Degradation, placeholder string, err error) Outcome {
	if err != nil {
		s.logger.Warn("ai summary degraded", "reason", string(reason), "error", truncateError(err))
	} else {
		s.logger.Warn("ai summary degraded", "reason", string(reason))
	}
	return Outcome{Text: placeholder, Reason: reason}
}

func truncateError(err error) error {
	msg := err.Error()
	if len(msg) > 300 {
		return fmt.Errorf("%s...", msg[:300])
	}
	return err
}
