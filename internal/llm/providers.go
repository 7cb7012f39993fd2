package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// callChatCompletions talks to OpenAI-compatible APIs (OpenAI, Groq).
func (s *Service) callChatCompletions(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]any{
		"model": s.model,
		"messages": []chatMessage{
			{Role: "system", Content: "You extract entities from resumes. Return only valid JSON."},
			{Role: "user", Content: prompt},
		},
		"temperature":     0.1,
		"response_format": map[string]string{"type": "json_object"},
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	headers := map[string]string{"Authorization": "Bearer " + s.apiKey}
	if err := s.client.PostJSON(ctx, s.endpoint, headers, reqBody, &result); err != nil {
		return "", err
	}

	if result.Error.Message != "" {
		return "", errors.New(result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return result.Choices[0].Message.Content, nil
}

func (s *Service) callOllama(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]any{
		"model":  s.model,
		"prompt": prompt,
		"stream": false,
		"format": "json",
	}

	var result struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}
	url := strings.TrimRight(s.endpoint, "/") + "/api/generate"
	if err := s.client.PostJSON(ctx, url, nil, reqBody, &result); err != nil {
		return "", fmt.Errorf("connection failed (is Ollama running?): %w", err)
	}
	if result.Error != "" {
		return "", errors.New(result.Error)
	}
	return result.Response, nil
}

func newGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

func (s *Service) callGemini(ctx context.Context, prompt string) (string, error) {
	model := s.gemini.GenerativeModel(s.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return textFromResponse(resp)
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in response")
	}
	c := resp.Candidates[0]
	if c.Content == nil || len(c.Content.Parts) == 0 {
		return "", errors.New("no content in response")
	}

	var b strings.Builder
	for _, part := range c.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", errors.New("no text parts in response")
	}
	return b.String(), nil
}
