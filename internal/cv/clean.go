package cv

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxEducationEntries  = 25
	maxExperienceEntries = 50
	minEntryLength       = 4
)

var (
	degreeKeywords = newKeywordSet(
		"btech", "b.tech", "b.e", "be", "bsc", "b.sc", "bca", "bcom", "b.com",
		"mtech", "m.tech", "m.e", "me", "msc", "m.sc", "mca", "mba",
		"diploma", "dmlt", "phd", "ph.d", "higher secondary", "plus two", "sslc", "10th", "12th", "+2",
		"class x", "class xii", "hsc", "ssc",
	)
	instituteWords = newKeywordSet(
		"university", "college", "institute", "school", "campus", "polytechnic", "academy", "ghss", "gptc",
	)
	companySuffixes = newKeywordSet(
		"pvt", "ltd", "llp", "inc", "corp", "co", "company", "technologies", "solutions", "systems",
		"center", "centre", "hospital",
	)
	roleKeywords = newKeywordSet(
		"intern", "interns", "internship", "engineer", "developer", "analyst", "designer", "manager",
		"associate", "trainee", "lead", "tester", "administrator", "technician", "incharge", "in-charge",
		"in charge", "consultant", "executive", "assistant",
	)
	actionWords = newKeywordSet(
		"developed", "built", "designed", "implemented", "created", "worked", "handled", "managed",
		"led", "improved", "optimized", "tested", "deployed", "maintained", "automated", "integrated",
		"collaborated", "assisted", "supported", "analyzed", "conducted", "prepared", "coordinated",
	)

	reDegreeWord    = regexp.MustCompile(`(?i)\b(bachelor|master)('?s)?\b|\bdiploma\b`)
	reYearOnly      = regexp.MustCompile(`(?i)^(19|20)\d{2}(\s*[-–]\s*((19|20)\d{2}|present|current|now))?$`)
	reScoreOnly     = regexp.MustCompile(`(?i)^((c?gpa|percentage|score|marks|grade)\s*[:\-]?\s*)?\d{1,3}(\.\d{1,2})?\s*(%|/\s*10(\.0)?|/\s*4(\.0)?|cgpa|gpa)?$`)
	reDegreeCut     = regexp.MustCompile(`\s[-–]\s|,\s`)
	reBulletedStart = regexp.MustCompile(`^[-•*]`)
)

func hasDegree(line string) bool {
	return degreeKeywords.match(line) || reDegreeWord.MatchString(line)
}

// CleanEducation keeps only qualification lines from an education section:
// contact lines, bare institution names, year ranges and score-only lines
// are dropped, and each kept line is cut at the first " - " or ", " so the
// trailing institution goes away.
func CleanEducation(section string) []string {
	var out []string
	for _, ln := range lines(section) {
		low := strings.ToLower(ln)
		if strings.Contains(ln, "@") || strings.Contains(low, "http") {
			continue
		}
		degree := hasDegree(ln)
		if instituteWords.match(ln) && !degree {
			continue
		}
		if reYearOnly.MatchString(ln) || isScoreOnly(ln) || !degree {
			continue
		}
		out = append(out, strings.TrimSpace(reDegreeCut.Split(ln, 2)[0]))
	}
	return dedupeLines(out, maxEducationEntries)
}

// CleanExperience drops company-name-only headings and fragments from an
// experience section, keeping role lines, achievement lines and bullets.
func CleanExperience(section string) []string {
	var out []string
	for _, ln := range lines(section) {
		low := strings.ToLower(ln)
		if strings.Contains(ln, "@") || strings.Contains(low, "http") {
			continue
		}

		toks := tokens(ln)
		bullet := reBulletedStart.MatchString(ln)
		company := companySuffixes.matchTokens(toks) && len(strings.Fields(ln)) <= 7
		role := roleKeywords.matchTokens(toks)
		action := actionWords.matchTokens(toks)

		if company && !role && !action && !bullet {
			continue
		}
		if utf8.RuneCountInString(ln) < 6 && !bullet {
			continue
		}
		out = append(out, ln)
	}
	return dedupeLines(out, maxExperienceEntries)
}

func isScoreOnly(line string) bool {
	return reScoreOnly.MatchString(strings.TrimSpace(line))
}

func dedupeLines(in []string, limit int) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, x := range in {
		key := strings.ToLower(x)
		if _, dup := seen[key]; dup || utf8.RuneCountInString(x) < minEntryLength {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, x)
		if len(out) == limit {
			break
		}
	}
	return out
}
