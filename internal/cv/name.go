package cv

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NameNotFound is returned when no tier of the name heuristic succeeds.
const NameNotFound = "Not Found"

const nameEntityWindow = 1800

var (
	reSpacedCaps      = regexp.MustCompile(`^([A-Z]\s+){2,}[A-Z]$`)
	reDocumentHeading = regexp.MustCompile(`(?i)\b(curriculum|resume|cv)\b`)
	rePlaceName       = regexp.MustCompile(`(?i)\b(kerala|india|tamil nadu|karnataka|malappuram|kochi|bangalore|bengaluru|chennai)\b`)
	emailHandleSpaces = strings.NewReplacer(".", " ", "_", " ")
)

// collapseSpacedCaps joins letter-spaced capitals such as "K I S H A N  D A S"
// into "KISHANDAS". Other lines are returned unchanged.
func collapseSpacedCaps(line string) string {
	trimmed := strings.TrimSpace(line)
	if reSpacedCaps.MatchString(trimmed) {
		return reSpaces.ReplaceAllString(trimmed, "")
	}
	return line
}

// plausibleName reports whether s could be a person's name: one to five
// words, no "@", at least three characters.
func plausibleName(s string) bool {
	words := len(strings.Fields(s))
	return words >= 1 && words <= 5 && !strings.Contains(s, "@") && utf8.RuneCountInString(s) >= 3
}

// ExtractName picks the candidate's name from, in order: the first line of
// the resume, a PERSON entity from the recognizer, the email handle. It
// returns NameNotFound when all of them fail. recognizer may be nil.
func ExtractName(ctx context.Context, text string, email *string, recognizer EntityRecognizer) string {
	if first := firstLine(text); first != "" {
		first = strings.TrimSpace(collapseSpacedCaps(first))
		if !reDocumentHeading.MatchString(first) && plausibleName(first) {
			return titleCase(first)
		}
	}

	if recognizer != nil {
		entities, err := recognizer.RecognizeEntities(ctx, truncateRunes(text, nameEntityWindow))
		if err != nil {
			slog.Debug("entity recognition failed", "error", err)
		}
		for _, e := range entities {
			if e.Label != EntityPerson {
				continue
			}
			name := strings.TrimSpace(e.Text)
			words := len(strings.Fields(name))
			if words < 1 || words > 5 || rePlaceName.MatchString(name) {
				continue
			}
			return titleCase(name)
		}
	}

	if email != nil {
		handle, _, _ := strings.Cut(*email, "@")
		if handle = strings.TrimSpace(emailHandleSpaces.Replace(handle)); handle != "" {
			return titleCase(handle)
		}
	}
	return NameNotFound
}

func firstLine(text string) string {
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			return ln
		}
	}
	return ""
}
