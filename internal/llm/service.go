package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"

	"cv-intake/internal/cv"
	pkghttp "cv-intake/pkg/http"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
	ProviderGroq   Provider = "groq"
	ProviderGemini Provider = "gemini"
	ProviderNone   Provider = "none"
)

var ErrNotConfigured = errors.New("LLM provider not configured")

var defaultEndpoints = map[Provider]string{
	ProviderOpenAI: "https://api.openai.com/v1/chat/completions",
	ProviderGroq:   "https://api.groq.com/openai/v1/chat/completions",
	ProviderOllama: "http://localhost:11434",
}

type Options struct {
	Provider string
	APIKey   string
	Model    string
	// Endpoint overrides the provider URL; for Ollama it is the server root.
	Endpoint string
	Timeout  time.Duration
	// CacheTTL bounds how long entities are reused for an identical
	// snippet; zero means one hour.
	CacheTTL time.Duration
	// RequestsPerMinute caps provider calls; zero means unlimited.
	RequestsPerMinute int
}

// Service sends prompts to the configured provider. It implements
// cv.EntityRecognizer for the name extractor.
type Service struct {
	provider Provider
	apiKey   string
	model    string
	endpoint string
	client   *pkghttp.Client
	gemini   *genai.Client
	cache    *EntityCache
	limiter  *rate.Limiter
	logger   *slog.Logger
}

func NewService(ctx context.Context, opts Options) (*Service, error) {
	provider := Provider(strings.ToLower(opts.Provider))
	if provider == "" {
		provider = ProviderNone
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	s := &Service{
		provider: provider,
		apiKey:   opts.APIKey,
		model:    opts.Model,
		endpoint: opts.Endpoint,
		client:   pkghttp.NewClient(timeout),
		cache:    NewEntityCache(opts.CacheTTL),
		limiter:  rate.NewLimiter(rate.Inf, 1),
		logger:   slog.Default().With("component", "llm", "provider", string(provider)),
	}
	if s.endpoint == "" {
		s.endpoint = defaultEndpoints[provider]
	}
	if opts.RequestsPerMinute > 0 {
		s.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RequestsPerMinute)), 1)
	}

	switch provider {
	case ProviderNone, ProviderOpenAI, ProviderGroq, ProviderOllama:
	case ProviderGemini:
		client, err := newGeminiClient(ctx, opts.APIKey)
		if err != nil {
			return nil, err
		}
		s.gemini = client
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
	return s, nil
}

func (s *Service) Enabled() bool {
	return s != nil && s.provider != ProviderNone
}

// Generate sends a prompt expecting a JSON answer and returns the raw text.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	if !s.Enabled() {
		return "", ErrNotConfigured
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	start := time.Now()
	var (
		out string
		err error
	)
	switch s.provider {
	case ProviderOpenAI, ProviderGroq:
		out, err = s.callChatCompletions(ctx, prompt)
	case ProviderOllama:
		out, err = s.callOllama(ctx, prompt)
	case ProviderGemini:
		out, err = s.callGemini(ctx, prompt)
	default:
		return "", fmt.Errorf("unknown provider: %s", s.provider)
	}
	s.logger.DebugContext(ctx, "llm call finished",
		"model", s.model, "duration_ms", time.Since(start).Milliseconds(), "error", err)
	if err != nil {
		return "", fmt.Errorf("%s: %w", s.provider, err)
	}
	return cleanJSONBlock(out), nil
}

// RecognizeEntities asks the model for PERSON and place entities in a
// resume snippet.
func (s *Service) RecognizeEntities(ctx context.Context, snippet string) ([]cv.Entity, error) {
	if cached, ok := s.cache.Get(snippet); ok {
		s.logger.DebugContext(ctx, "entity cache hit")
		return cached, nil
	}

	raw, err := s.Generate(ctx, buildEntityPrompt(snippet))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Entities []cv.Entity `json:"entities"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	out := parsed.Entities[:0]
	for _, e := range parsed.Entities {
		e.Label = strings.ToUpper(strings.TrimSpace(e.Label))
		e.Text = strings.TrimSpace(e.Text)
		if e.Label != "" && e.Text != "" {
			out = append(out, e)
		}
	}
	s.cache.Set(snippet, out)
	return out, nil
}

func (s *Service) Close() error {
	if s.gemini != nil {
		return s.gemini.Close()
	}
	return nil
}

func buildEntityPrompt(snippet string) string {
	return fmt.Sprintf(`Find named entities in the beginning of this resume.

Resume text:
"""
%s
"""

Return ONLY valid JSON (no markdown, no explanation) with this exact structure:
{"entities": [{"label": "PERSON", "text": "Full Name"}]}

Rules:
- Use label PERSON for people's names and GPE for cities, states and countries.
- Copy the text exactly as it appears.
- List entities in the order they appear.
- Return {"entities": []} if there are none.`, snippet)
}

// cleanJSONBlock removes markdown code block wrappers from JSON
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
