package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func statuses(updates []Update) []string {
	out := make([]string, 0, len(updates))
	for _, u := range updates {
		out = append(out, u.Status)
	}
	return out
}

func TestProcess(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		handlerErr error
		wantOK     bool
		want       []string
		wantCalled bool
	}{
		{"success", `{"candidate_id": 7}`, nil, true, []string{"processing", "completed"}, true},
		{"handler failure", `{"candidate_id": 7}`, errors.New("no resume"), false, []string{"processing", "failed"}, true},
		{"bad json", `{candidate`, nil, false, []string{"failed"}, false},
		{"missing id", `{}`, nil, false, []string{"failed"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			c := NewConsumer("amqp://unused", "resume_parse", func(_ context.Context, req Request) error {
				called = true
				assert.Equal(t, int64(7), req.CandidateID)
				return tt.handlerErr
			})
			c.now = func() time.Time { return fixed }

			var published []Update
			ok := c.process(context.Background(), []byte(tt.body), func(u Update) { published = append(published, u) })

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.want, statuses(published))
			for _, u := range published {
				assert.Equal(t, fixed, u.Timestamp)
			}
		})
	}
}
