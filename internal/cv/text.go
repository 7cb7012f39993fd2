package cv

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	reSpaces    = regexp.MustCompile(`\s+`)
	reMultiGap  = regexp.MustCompile(`\s{2,}`)
	tokenSplits = ",;:()[]/|–—"
)

// lines splits text into trimmed, non-empty lines with bullet glyphs
// rewritten as "-".
func lines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "•", "-")

	var out []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			out = append(out, ln)
		}
	}
	return out
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// titleCase upper-cases the first letter of every word and lower-cases the
// rest. A Caser is stateful, so one is built per call.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// tokens lower-cases a line and splits it into words for whole-token
// keyword matching. Dots and plus signs survive so "b.tech" and "+2" stay
// intact; surrounding punctuation is stripped.
func tokens(line string) []string {
	fields := strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return r == ' ' || r == '\t' || strings.ContainsRune(tokenSplits, r)
	})
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".-'\"*")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// keywordSet matches single-word keywords by token and multi-word ones as
// a phrase over the token sequence.
type keywordSet struct {
	words   map[string]struct{}
	phrases []string
}

func newKeywordSet(keywords ...string) keywordSet {
	ks := keywordSet{words: make(map[string]struct{}, len(keywords))}
	for _, k := range keywords {
		if strings.Contains(k, " ") {
			ks.phrases = append(ks.phrases, " "+k+" ")
			continue
		}
		ks.words[k] = struct{}{}
	}
	return ks
}

func (ks keywordSet) matchTokens(toks []string) bool {
	for _, t := range toks {
		if _, ok := ks.words[t]; ok {
			return true
		}
	}
	if len(ks.phrases) == 0 {
		return false
	}
	joined := " " + strings.Join(toks, " ") + " "
	for _, p := range ks.phrases {
		if strings.Contains(joined, p) {
			return true
		}
	}
	return false
}

func (ks keywordSet) match(line string) bool {
	return ks.matchTokens(tokens(line))
}
