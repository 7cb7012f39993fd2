package cv

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const personalBlockWindow = 1200

var (
	rePersonalDetails = regexp.MustCompile(`(?i)personal details`)
	rePersonalInfo    = regexp.MustCompile(`(?i)personal information`)
	rePersonalStop    = regexp.MustCompile(`(?i)^\s*(education|projects|skills|experience|internships)\b`)

	labelGender      = labelPattern("gender")
	labelNationality = labelPattern("nationality")
	labelAddress     = labelPattern("address")
	labelLocality    = labelPattern("locality")
	labelLocation    = labelPattern("location")

	blockKeyPatterns = map[string]*regexp.Regexp{}
)

func init() {
	for _, key := range []string{"Gender", "Nationality", "Address", "Locality"} {
		blockKeyPatterns[key] = regexp.MustCompile(`(?i)^\s*` + regexp.QuoteMeta(key) + `\s*[:\-]?\s*(.+)$`)
	}
}

// personalBlock returns the lines of the "Personal Details" (or "Personal
// Information") region, ending before the next section heading.
func personalBlock(text string) []string {
	loc := rePersonalDetails.FindStringIndex(text)
	if loc == nil {
		loc = rePersonalInfo.FindStringIndex(text)
	}
	if loc == nil {
		return nil
	}

	end := loc[0] + personalBlockWindow
	if end >= len(text) {
		end = len(text)
	} else {
		for end > loc[0] && !utf8.RuneStart(text[end]) {
			end--
		}
	}

	var out []string
	for i, ln := range lines(text[loc[0]:end]) {
		if rePersonalStop.MatchString(ln) {
			break
		}
		if i > 0 && looksLikeHeading(ln) {
			break
		}
		out = append(out, ln)
	}
	return out
}

func blockValue(block []string, key string) *string {
	re := blockKeyPatterns[key]
	for _, ln := range block {
		if m := re.FindStringSubmatch(ln); m != nil {
			return optional(m[1])
		}
	}
	return nil
}

// ExtractGender reads a labeled gender field or the personal details block
// and normalizes it to Male, Female or Other. It never guesses from names.
func ExtractGender(text string) *string {
	if g := normalizeGender(labeledValue(text, labelGender)); g != nil {
		return g
	}
	return normalizeGender(blockValue(personalBlock(text), "Gender"))
}

func normalizeGender(v *string) *string {
	if v == nil {
		return nil
	}
	low := strings.ToLower(*v)
	var g string
	switch {
	case strings.Contains(low, "female"):
		g = "Female"
	case strings.Contains(low, "male"):
		g = "Male"
	case strings.Contains(low, "other"):
		g = "Other"
	default:
		toks := tokens(low)
		if len(toks) == 0 {
			return nil
		}
		switch toks[0] {
		case "f":
			g = "Female"
		case "m":
			g = "Male"
		default:
			return nil
		}
	}
	return &g
}

func ExtractNationality(text string) *string {
	if n := labeledValue(text, labelNationality); n != nil {
		return n
	}
	return blockValue(personalBlock(text), "Nationality")
}

// ExtractAddress prefers an explicit Address/Locality/Location label and
// falls back to joining the block's Address and Locality rows.
func ExtractAddress(text string) *string {
	if a := labeledValue(text, labelAddress, labelLocality, labelLocation); a != nil {
		return optional(collapseSpaces(*a))
	}

	block := personalBlock(text)
	addr := blockValue(block, "Address")
	locality := blockValue(block, "Locality")
	switch {
	case addr != nil && locality != nil:
		return optional(collapseSpaces(*addr + ", " + *locality))
	case addr != nil:
		return optional(collapseSpaces(*addr))
	case locality != nil:
		return optional(collapseSpaces(*locality))
	}
	return nil
}
