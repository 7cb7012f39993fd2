package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-intake/internal/cv"
)

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Model    string        `json:"model"`
			Messages []chatMessage `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o-mini", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Contains(t, body.Messages[1].Content, "Jane Doe")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": content}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRecognizeEntitiesOpenAI(t *testing.T) {
	srv := chatServer(t, "```json\n{\"entities\":[{\"label\":\"person\",\"text\":\" Jane Doe \"},{\"label\":\"GPE\",\"text\":\"Kochi\"},{\"label\":\"\",\"text\":\"x\"}]}\n```")

	svc, err := NewService(context.Background(), Options{
		Provider: "openai", APIKey: "test-key", Model: "gpt-4o-mini", Endpoint: srv.URL,
	})
	require.NoError(t, err)

	got, err := svc.RecognizeEntities(context.Background(), "Jane Doe\nKochi, Kerala")
	require.NoError(t, err)
	assert.Equal(t, []cv.Entity{
		{Label: cv.EntityPerson, Text: "Jane Doe"},
		{Label: "GPE", Text: "Kochi"},
	}, got)
}

func TestRecognizeEntitiesOllama(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"response": `{"entities":[{"label":"PERSON","text":"Arjun Nair"}]}`,
		})
	}))
	defer srv.Close()

	svc, err := NewService(context.Background(), Options{Provider: "ollama", Model: "llama3.1", Endpoint: srv.URL + "/"})
	require.NoError(t, err)

	got, err := svc.RecognizeEntities(context.Background(), "Arjun Nair")
	require.NoError(t, err)
	assert.Equal(t, []cv.Entity{{Label: "PERSON", Text: "Arjun Nair"}}, got)
}

func TestRecognizeEntitiesErrors(t *testing.T) {
	ctx := context.Background()

	none, err := NewService(ctx, Options{})
	require.NoError(t, err)
	assert.False(t, none.Enabled())
	_, err = none.RecognizeEntities(ctx, "Jane")
	assert.ErrorIs(t, err, ErrNotConfigured)

	srv := chatServer(t, "not json")
	svc, err := NewService(ctx, Options{Provider: "openai", APIKey: "test-key", Model: "gpt-4o-mini", Endpoint: srv.URL})
	require.NoError(t, err)
	_, err = svc.RecognizeEntities(ctx, "Jane Doe")
	assert.ErrorContains(t, err, "failed to parse LLM response")

	_, err = NewService(ctx, Options{Provider: "bard"})
	assert.Error(t, err)

	_, err = NewService(ctx, Options{Provider: "gemini"})
	assert.ErrorContains(t, err, "API key is required")
}

func TestTextFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"entities":`), genai.Text(`[]}`)}},
	}}}
	got, err := textFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"entities":[]}`, got)

	_, err = textFromResponse(&genai.GenerateContentResponse{})
	assert.Error(t, err)
}

func TestServiceSatisfiesRecognizer(t *testing.T) {
	var _ cv.EntityRecognizer = (*Service)(nil)
}
