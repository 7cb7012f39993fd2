package profile

import "strings"

const maxPoints = 60

// FormatPoints splits a stored multi-line (or single comma-separated)
// value into display bullets, deduplicated case-insensitively.
func FormatPoints(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, NotFound) {
		return []string{}
	}
	value = strings.ReplaceAll(value, "\r", "\n")
	value = strings.ReplaceAll(value, "•", "-")

	var parts []string
	if !strings.Contains(value, "\n") && strings.Contains(value, ",") {
		parts = strings.Split(value, ",")
	} else {
		parts = strings.Split(value, "\n")
	}

	out := []string{}
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, " -\t")
		if p == "" {
			continue
		}
		key := strings.ToLower(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
		if len(out) == maxPoints {
			break
		}
	}
	return out
}
