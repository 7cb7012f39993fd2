package cv

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type SectionKind string

const (
	SectionSummary    SectionKind = "summary"
	SectionEducation  SectionKind = "education"
	SectionExperience SectionKind = "experience"
	SectionSkills     SectionKind = "skills"
)

// minSectionLength drops sections too short to carry content, such as a
// stray heading followed by a date.
const minSectionLength = 10

var knownHeadings = setOf(
	"summary", "objective", "profile", "about", "career objective", "professional summary",
	"education", "educational qualification", "academic", "academics", "qualification", "qualifications", "academic details",
	"experience", "work experience", "employment", "internship", "internships", "professional experience",
	"projects", "project", "certifications", "certification", "courses", "training", "achievements",
	"skills", "technical skills", "skill set", "technologies", "tools", "technology stack",
	"personal details", "personal information", "contact", "contact details",
	"languages", "hobbies", "interests", "declaration", "references", "computer knowledge",
)

// targetHeadings is checked in order; the first kind whose aliases contain
// the heading wins.
var targetHeadings = []struct {
	kind    SectionKind
	aliases map[string]struct{}
}{
	{SectionSummary, setOf("summary", "objective", "profile", "about", "career objective", "professional summary")},
	{SectionEducation, setOf("education", "educational qualification", "academic", "academics", "qualification", "qualifications", "academic details", "training", "courses")},
	{SectionExperience, setOf("experience", "work experience", "employment", "internship", "internships", "professional experience")},
	{SectionSkills, setOf("skills", "technical skills", "skill set", "technologies", "tools", "technology stack", "computer knowledge")},
}

var reNonLetters = regexp.MustCompile(`[^a-zA-Z ]`)

// Sections holds the raw text of each recognized section; a missing or
// too-short section is empty.
type Sections struct {
	Summary    string
	Education  string
	Experience string
	Skills     string
}

func (s *Sections) get(kind SectionKind) *string {
	switch kind {
	case SectionSummary:
		return &s.Summary
	case SectionEducation:
		return &s.Education
	case SectionExperience:
		return &s.Experience
	case SectionSkills:
		return &s.Skills
	}
	return nil
}

func normalizeHeading(line string) string {
	return collapseSpaces(strings.ToLower(reNonLetters.ReplaceAllString(line, "")))
}

func looksLikeHeading(line string) bool {
	h := normalizeHeading(line)
	if h == "" || len(strings.Fields(h)) > 4 {
		return false
	}
	_, ok := knownHeadings[h]
	return ok
}

func targetKind(line string) (SectionKind, bool) {
	h := normalizeHeading(line)
	if h == "" || len(strings.Fields(h)) > 4 {
		return "", false
	}
	for _, t := range targetHeadings {
		if _, ok := t.aliases[h]; ok {
			return t.kind, true
		}
	}
	return "", false
}

// segmenter is the NoSection / InSection(kind) state machine. current is
// empty while outside any target section.
type segmenter struct {
	out     Sections
	current SectionKind
	buf     []string
}

func (sg *segmenter) flush() {
	if sg.current != "" && len(sg.buf) > 0 {
		dst := sg.out.get(sg.current)
		add := strings.TrimSpace(strings.Join(sg.buf, "\n"))
		if *dst != "" {
			*dst = strings.TrimSpace(*dst + "\n" + add)
		} else {
			*dst = add
		}
	}
	sg.buf = sg.buf[:0]
}

func (sg *segmenter) feed(line string) {
	if kind, ok := targetKind(line); ok {
		sg.flush()
		sg.current = kind
		return
	}
	if sg.current == "" {
		return
	}
	if looksLikeHeading(line) {
		sg.flush()
		sg.current = ""
		return
	}
	sg.buf = append(sg.buf, line)
}

// SplitSections assigns every line of text to the section opened by the
// nearest preceding heading. Lines under unrecognized headings, or before
// the first heading, are discarded. A heading seen twice appends.
func SplitSections(text string) Sections {
	var sg segmenter
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			sg.feed(ln)
		}
	}
	sg.flush()

	for _, t := range targetHeadings {
		dst := sg.out.get(t.kind)
		*dst = strings.TrimSpace(*dst)
		if utf8.RuneCountInString(*dst) < minSectionLength {
			*dst = ""
		}
	}
	return sg.out
}

func setOf(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}
