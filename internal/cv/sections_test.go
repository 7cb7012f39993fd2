package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSectionsAssignsLinesUntilNextHeading(t *testing.T) {
	text := `Jane Doe
EDUCATION
B.Tech Computer Science
ABC College of Engineering
2018 - 2022
PROJECTS
Portfolio site built with Go`

	got := SplitSections(text)
	assert.Equal(t, Sections{
		Education: "B.Tech Computer Science\nABC College of Engineering\n2018 - 2022",
	}, got)
}

func TestSplitSections(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Sections
	}{
		{
			name:     "revisited section appends",
			text:     "SKILLS\nPython, Go\nEXPERIENCE\nBackend developer at Acme\nTECHNICAL SKILLS\nDocker, Kubernetes",
			expected: Sections{Skills: "Python, Go\nDocker, Kubernetes", Experience: "Backend developer at Acme"},
		},
		{
			name:     "short section dropped",
			text:     "SUMMARY\nHi there",
			expected: Sections{},
		},
		{
			name:     "non-target heading closes section",
			text:     "SKILLS\nPython, Django, React\nHOBBIES\nChess and football",
			expected: Sections{Skills: "Python, Django, React"},
		},
		{
			name:     "punctuated heading",
			text:     "Work Experience:\nDeveloped billing service\n\nCareer Objective -\nTo build reliable systems",
			expected: Sections{Experience: "Developed billing service", Summary: "To build reliable systems"},
		},
		{
			name:     "long line is content not heading",
			text:     "EDUCATION\nEducation and training in computer science\nMaster of Science",
			expected: Sections{Education: "Education and training in computer science\nMaster of Science"},
		},
		{
			name:     "text before first heading ignored",
			text:     "Jane Doe\njane@example.com\nsome skills listed here",
			expected: Sections{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitSections(tt.text))
		})
	}
}

func TestLooksLikeHeading(t *testing.T) {
	assert.True(t, looksLikeHeading("PERSONAL DETAILS"))
	assert.True(t, looksLikeHeading("  Declaration: "))
	assert.False(t, looksLikeHeading("Developed REST APIs"))
	assert.False(t, looksLikeHeading("2019"))
}
