// Package profile turns parsed resumes into stored candidate profiles and
// resolves the profile shown to a user.
package profile

import (
	"strings"

	"cv-intake/internal/cv"
	"cv-intake/internal/storage"
)

// NotFound is shown for a field no source could fill.
const NotFound = "Not found"

// DisplayProfile is the fully resolved, read-only view of a candidate.
type DisplayProfile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
	Summary     string `json:"summary"`
	Education   string `json:"education"`
	Experience  string `json:"experience"`
	LinkedIn    string `json:"linkedin"`
	GitHub      string `json:"github"`
}

func usable(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, NotFound)
}

func pick(values ...string) string {
	for _, v := range values {
		if usable(v) {
			return strings.TrimSpace(v)
		}
	}
	return NotFound
}

// Merge resolves each field from the stored profile first, then the
// freshly parsed resume, then the basic account. Any of stored and parsed
// may be nil.
func Merge(stored *storage.CandidateProfile, parsed *cv.ParsedProfile, basic storage.Candidate) DisplayProfile {
	var s storage.CandidateProfile
	if stored != nil {
		s = *stored
	}
	var p cv.ParsedProfile
	if parsed != nil {
		p = *parsed
	}

	return DisplayProfile{
		Name:        pick(s.Name, p.Name, basic.Name),
		Email:       pick(s.Email, cv.Str(p.Email), basic.Email),
		Phone:       pick(s.Phone, cv.Str(p.Phone), basic.Phone),
		Gender:      pick(s.Gender, cv.Str(p.Gender)),
		Nationality: pick(s.Nationality, cv.Str(p.Nationality)),
		Address:     pick(s.Address, cv.Str(p.Address)),
		Summary:     pick(s.Summary, cv.Str(p.Summary)),
		Education:   pick(s.Education, cv.Str(p.Education)),
		Experience:  pick(s.Experience, cv.Str(p.Experience)),
		LinkedIn:    pick(s.LinkedIn, cv.Str(p.LinkedIn)),
		GitHub:      pick(s.GitHub, cv.Str(p.GitHub)),
	}
}

// applyParsed copies every usable parsed field onto the stored profile and
// keeps the stored value otherwise.
func applyParsed(dst *storage.CandidateProfile, p *cv.ParsedProfile) {
	set := func(field *string, v string) {
		if usable(v) {
			*field = strings.TrimSpace(v)
		}
	}
	set(&dst.Name, p.Name)
	set(&dst.Email, cv.Str(p.Email))
	set(&dst.Phone, cv.Str(p.Phone))
	set(&dst.Gender, cv.Str(p.Gender))
	set(&dst.Nationality, cv.Str(p.Nationality))
	set(&dst.Address, cv.Str(p.Address))
	set(&dst.Summary, cv.Str(p.Summary))
	set(&dst.Education, cv.Str(p.Education))
	set(&dst.Experience, cv.Str(p.Experience))
	set(&dst.LinkedIn, cv.Str(p.LinkedIn))
	set(&dst.GitHub, cv.Str(p.GitHub))
}
