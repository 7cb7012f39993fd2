package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-intake/internal/cv"
)

func TestEntityCacheExpiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	c := NewEntityCache(time.Minute)
	c.now = func() time.Time { return now }

	c.Set("Jane Doe", []cv.Entity{{Label: cv.EntityPerson, Text: "Jane Doe"}})
	got, ok := c.Get("Jane Doe")
	require.True(t, ok)
	assert.Len(t, got, 1)

	_, ok = c.Get("John Roe")
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("Jane Doe")
	assert.False(t, ok)
	assert.Equal(t, 1, c.CleanExpired())
	assert.Zero(t, c.Len())
}

func TestRecognizeEntitiesUsesCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"response": `{"entities":[{"label":"PERSON","text":"Arjun Nair"}]}`,
		})
	}))
	t.Cleanup(srv.Close)

	svc, err := NewService(context.Background(), Options{Provider: "ollama", Endpoint: srv.URL})
	require.NoError(t, err)

	for range 3 {
		got, err := svc.RecognizeEntities(context.Background(), "Arjun Nair\nKochi")
		require.NoError(t, err)
		assert.Equal(t, "Arjun Nair", got[0].Text)
	}
	assert.Equal(t, int32(1), calls.Load())

	_, err = svc.RecognizeEntities(context.Background(), "Someone Else")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGenerateHonorsRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"response": `{"entities":[]}`})
	}))
	t.Cleanup(srv.Close)

	svc, err := NewService(context.Background(), Options{Provider: "ollama", Endpoint: srv.URL, RequestsPerMinute: 1})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = svc.Generate(ctx, "second")
	assert.ErrorContains(t, err, "rate limit")
}
