package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		job       string
		candidate []string
		want      Result
	}{
		{
			name:      "partial overlap",
			job:       "Python, Go, SQL",
			candidate: []string{"python", "Docker"},
			want:      Result{Score: 33.33, Matched: []string{"python"}, Missing: []string{"go", "sql"}},
		},
		{
			name:      "superset candidate",
			job:       "python,go",
			candidate: []string{"Go", "Python", "Rust"},
			want:      Result{Score: 100, Matched: []string{"go", "python"}, Missing: []string{}},
		},
		{
			name:      "no overlap",
			job:       "Java",
			candidate: []string{"Go"},
			want:      Result{Score: 0, Matched: []string{}, Missing: []string{"java"}},
		},
		{
			name:      "empty job",
			job:       " , ,",
			candidate: []string{"Go"},
			want:      Result{Score: 0, Matched: []string{}, Missing: []string{}},
		},
		{
			name:      "duplicate job skills count once",
			job:       "Go, go , SQL",
			candidate: []string{"sql"},
			want:      Result{Score: 50, Matched: []string{"sql"}, Missing: []string{"go"}},
		},
		{
			name:      "two thirds rounds to two places",
			job:       "a1,b2,c3",
			candidate: []string{"A1", "B2"},
			want:      Result{Score: 66.67, Matched: []string{"a1", "b2"}, Missing: []string{"c3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.job, tt.candidate))
		})
	}
}

func TestScoreMissingIsJobMinusCandidate(t *testing.T) {
	jobs := []string{"", "go", "go,sql", "python, react, node.js, aws", "Excel,Word"}
	candidates := [][]string{nil, {"go"}, {"SQL", "rust"}, {"react", "aws", "kubernetes"}}

	for _, job := range jobs {
		for _, cand := range candidates {
			res := Score(job, cand)
			required := ParseJobSkills(job)
			have := NewSkillSet(cand)

			for _, m := range res.Missing {
				assert.True(t, required.Has(m), "missing %q not required by %q", m, job)
				assert.False(t, have.Has(m))
			}
			assert.Equal(t, len(required), len(res.Matched)+len(res.Missing))
			if len(required) == 0 {
				assert.Zero(t, res.Score)
				assert.Empty(t, res.Matched)
				assert.Empty(t, res.Missing)
				continue
			}
			assert.Equal(t, len(res.Matched) == 0, res.Score == 0)
			assert.Equal(t, len(res.Missing) == 0, res.Score == 100)
		}
	}
}

func TestAllMatched(t *testing.T) {
	assert.True(t, Score("go", []string{"Go"}).AllMatched())
	assert.False(t, Score("go,sql", []string{"Go"}).AllMatched())
	assert.False(t, Score("", []string{"Go"}).AllMatched())
}

type fakeJobs map[int64]string

func (f fakeJobs) GetJobSkills(_ context.Context, id int64) (string, error) {
	s, ok := f[id]
	if !ok {
		return "", errors.New("job not found")
	}
	return s, nil
}

type fakeSkills map[int64][]string

func (f fakeSkills) CandidateSkills(_ context.Context, id int64) ([]string, error) {
	return f[id], nil
}

func TestServiceMatch(t *testing.T) {
	svc := NewService(fakeJobs{7: "Python, Go"}, fakeSkills{1: {"go"}})

	res, err := svc.Match(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.Score)
	assert.Equal(t, []string{"python"}, res.Missing)

	_, err = svc.Match(context.Background(), 1, 99)
	assert.Error(t, err)
}
