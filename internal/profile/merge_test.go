package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cv-intake/internal/cv"
	"cv-intake/internal/storage"
)

func ptr(s string) *string { return &s }

func TestMergeNamePriority(t *testing.T) {
	tests := []struct {
		name   string
		stored *storage.CandidateProfile
		parsed *cv.ParsedProfile
		basic  storage.Candidate
		want   string
	}{
		{
			name:   "stored wins",
			stored: &storage.CandidateProfile{Name: "Alice"},
			parsed: &cv.ParsedProfile{Name: "Bob"},
			basic:  storage.Candidate{Name: "Carol"},
			want:   "Alice",
		},
		{
			name:   "stored not found falls to parsed",
			stored: &storage.CandidateProfile{Name: "not found"},
			parsed: &cv.ParsedProfile{Name: "Bob"},
			want:   "Bob",
		},
		{
			name:   "no stored profile",
			parsed: &cv.ParsedProfile{Name: "Bob"},
			want:   "Bob",
		},
		{
			name:   "basic account last",
			stored: &storage.CandidateProfile{Name: "  "},
			parsed: &cv.ParsedProfile{Name: cv.NameNotFound},
			basic:  storage.Candidate{Name: "Carol"},
			want:   "Carol",
		},
		{
			name: "nothing anywhere",
			want: NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.stored, tt.parsed, tt.basic).Name)
		})
	}
}

func TestMergeFields(t *testing.T) {
	stored := &storage.CandidateProfile{Gender: "Female", Summary: "Not Found"}
	parsed := &cv.ParsedProfile{
		Name:    "Jane Doe",
		Email:   ptr("jane@example.com"),
		Gender:  ptr("Male"),
		Summary: ptr("Analyst"),
		GitHub:  ptr("https://github.com/jane"),
	}
	basic := storage.Candidate{Email: "account@example.com", Phone: "9876543210"}

	got := Merge(stored, parsed, basic)
	assert.Equal(t, DisplayProfile{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "9876543210",
		Gender:      "Female",
		Nationality: NotFound,
		Address:     NotFound,
		Summary:     "Analyst",
		Education:   NotFound,
		Experience:  NotFound,
		LinkedIn:    NotFound,
		GitHub:      "https://github.com/jane",
	}, got)
}

func TestApplyParsedKeepsStoredWhenMissing(t *testing.T) {
	dst := &storage.CandidateProfile{Name: "Manual Name", Nationality: "Indian", Summary: "old"}
	applyParsed(dst, &cv.ParsedProfile{Name: cv.NameNotFound, Summary: ptr("new"), Nationality: nil})

	assert.Equal(t, "Manual Name", dst.Name)
	assert.Equal(t, "Indian", dst.Nationality)
	assert.Equal(t, "new", dst.Summary)
}

func TestFormatPoints(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"empty", "", []string{}},
		{"not found", "Not found", []string{}},
		{"comma list on one line", "Go, SQL , go,", []string{"Go", "SQL"}},
		{"lines with bullets", "• Built APIs\r- Led team\n\n  - built apis", []string{"Built APIs", "Led team"}},
		{"commas inside lines are kept", "B.Tech, CSE\nM.Tech", []string{"B.Tech, CSE", "M.Tech"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPoints(tt.value))
		})
	}
}

func TestFormatPointsCap(t *testing.T) {
	var lines []byte
	for i := 0; i < 80; i++ {
		lines = append(lines, []byte("point "+string(rune('A'+i%26))+string(rune('a'+i/26))+"\n")...)
	}
	assert.Len(t, FormatPoints(string(lines)), maxPoints)
}
