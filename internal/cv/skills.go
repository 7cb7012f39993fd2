package cv

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxSkills         = 50
	minSkillLength    = 2
	maxSkillLength    = 40
	longSkillRunLimit = 35
)

var (
	reSkillsFallback = regexp.MustCompile(`(?i)\bskills\b[:\s]*([\s\S]{0,800})`)
	reSkillSplit     = regexp.MustCompile(`[,;\n]+|\s{2,}`)
	reLeadingBullet  = regexp.MustCompile(`^\s*[-•]+\s*`)
	reSkillLabel     = regexp.MustCompile(`^([A-Za-z][A-Za-z &]{1,24}):\s*(.+)$`)
	reSkillShape     = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+#.\- ]{1,30}$`)

	skillSeparators = strings.NewReplacer("•", "\n", "|", ",", " / ", ",")
	skillSynonyms   = strings.NewReplacer("reactjs", "react", "nodejs", "node.js", "nextjs", "next.js")

	skillStopwords = setOf(
		"skills", "technical", "technologies", "tools", "languages", "and", "or", "with",
		"software", "programming", "area of interest", "interests",
	)

	commonSkills = setOf(
		"python", "java", "c", "c++", "c#", "go", "javascript", "typescript", "html", "css",
		"react", "react.js", "next", "next.js", "node", "node.js", "express", "django", "flask",
		"spring", "spring boot",
		"sql", "mysql", "postgresql", "mongodb", "sqlite", "git", "github",
		"vscode", "visual studio code", "eclipse",
		"machine learning", "deep learning", "nlp", "power bi", "dax",
		"ms office", "latex", "google workspace",
	)
)

// NormalizeSkills turns a free-form skills section into a bounded list of
// skill tokens, unique case-insensitively, keeping the first spelling seen.
// When section is empty a "skills" span of fullText is used instead.
func NormalizeSkills(section, fullText string) []string {
	text := strings.TrimSpace(section)
	if text == "" {
		if m := reSkillsFallback.FindStringSubmatch(fullText); m != nil {
			text = strings.TrimSpace(m[1])
		}
	}
	if text == "" {
		return []string{}
	}

	text = skillSeparators.Replace(text)
	text = reMultiGap.ReplaceAllString(text, " ")

	var parts []string
	for _, p := range reSkillSplit.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// A long comma-free run like "JavaScript TypeScript React.js" is a
		// space-separated list.
		if utf8.RuneCountInString(p) > longSkillRunLimit && strings.Contains(p, " ") {
			parts = append(parts, strings.Fields(p)...)
			continue
		}
		parts = append(parts, p)
	}

	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		s, key, ok := normalizeSkill(p)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
		if len(out) == maxSkills {
			break
		}
	}
	return out
}

// normalizeSkill cleans one candidate token and returns it with its
// dedupe key.
func normalizeSkill(p string) (skill, key string, ok bool) {
	s := strings.TrimSpace(strings.Trim(p, " -\t"))
	if m := reSkillLabel.FindStringSubmatch(s); m != nil && len(strings.Fields(m[1])) <= 3 {
		s = m[2]
	}
	s = reLeadingBullet.ReplaceAllString(s, "")
	s = collapseSpaces(s)

	n := utf8.RuneCountInString(s)
	if n < minSkillLength || n > maxSkillLength {
		return "", "", false
	}

	low := strings.ToLower(s)
	if _, stop := skillStopwords[low]; stop {
		return "", "", false
	}
	low = strings.TrimSpace(skillSynonyms.Replace(low))

	_, known := commonSkills[low]
	if !known && !reSkillShape.MatchString(s) {
		return "", "", false
	}
	return s, low, true
}
