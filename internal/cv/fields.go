package cv

import (
	"regexp"
	"strings"
)

var (
	reEmail        = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	reLinkedInURL  = regexp.MustCompile(`(?i)(https?://)?(www\.)?linkedin\.com/[A-Za-z0-9\-_/]+`)
	reLinkedInPath = regexp.MustCompile(`(?i)\bin/[A-Za-z0-9\-_]+`)
	reGitHubURL    = regexp.MustCompile(`(?i)(https?://)?(www\.)?github\.com/[A-Za-z0-9\-_/]+`)
)

// DefaultPhonePattern is a 10-digit Indian mobile number with an optional
// +91 prefix.
const DefaultPhonePattern = `(\+91)?[6-9]\d{9}`

// PhoneRule finds a phone number in text after spaces and dashes have been
// removed.
type PhoneRule struct {
	re *regexp.Regexp
}

func NewPhoneRule(pattern string) (PhoneRule, error) {
	if pattern == "" {
		pattern = DefaultPhonePattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return PhoneRule{}, err
	}
	return PhoneRule{re: re}, nil
}

func DefaultPhoneRule() PhoneRule {
	return PhoneRule{re: regexp.MustCompile(DefaultPhonePattern)}
}

func (p PhoneRule) Find(text string) *string {
	re := p.re
	if re == nil {
		re = DefaultPhoneRule().re
	}
	compact := strings.NewReplacer(" ", "", "-", "").Replace(text)
	return optional(re.FindString(compact))
}

// ExtractEmail returns the first email-shaped token.
func ExtractEmail(text string) *string {
	return optional(reEmail.FindString(text))
}

// ExtractPhone applies the default phone rule.
func ExtractPhone(text string) *string {
	return DefaultPhoneRule().Find(text)
}

// ExtractLinks finds a LinkedIn profile (full URL or the short in/handle
// form) and a GitHub URL, both normalized to absolute https URLs.
func ExtractLinks(text string) (linkedin, github *string) {
	li := reLinkedInURL.FindString(text)
	if li == "" {
		li = reLinkedInPath.FindString(text)
	}
	return optional(absoluteURL(li)), optional(absoluteURL(reGitHubURL.FindString(text)))
}

func absoluteURL(u string) string {
	u = strings.TrimSpace(u)
	lower := strings.ToLower(u)
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(lower, "in/"):
		return "https://www.linkedin.com/" + u
	case strings.HasPrefix(lower, "http"):
		return u
	default:
		return "https://" + u
	}
}

// labeledValue finds "Label: value" (colon or dash optional) for the first
// label that occurs at the start of a line. The value stops at a run of two
// or more spaces, which in tabular resumes starts the next column. Values
// that are email addresses belong to another field and are skipped.
func labeledValue(text string, labels ...*regexp.Regexp) *string {
	for _, re := range labels {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			v := strings.TrimSpace(m[1])
			v = strings.TrimSpace(reMultiGap.Split(v, 2)[0])
			if v == "" || reEmail.MatchString(v) {
				continue
			}
			return &v
		}
	}
	return nil
}

// labelPattern matches label as the first word of a line, after an
// optional bullet.
func labelPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[ \t]*(?:[-•*][ \t]*)?` + regexp.QuoteMeta(label) + `\b[ \t]*[:\-]?[ \t]*(.+)`)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
