// Package match scores a candidate's stored skills against a job's
// declared requirements.
package match

import (
	"math"
	"sort"
	"strings"
)

// SkillSet holds lower-cased, trimmed skill tokens.
type SkillSet map[string]struct{}

// ParseJobSkills splits a comma-separated requirement string into a set.
func ParseJobSkills(skills string) SkillSet {
	return NewSkillSet(strings.Split(skills, ","))
}

func NewSkillSet(skills []string) SkillSet {
	set := make(SkillSet, len(skills))
	for _, s := range skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}

func (s SkillSet) Has(skill string) bool {
	_, ok := s[skill]
	return ok
}

func (s SkillSet) sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Result is a fresh score for one (candidate, job) pair.
type Result struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched_skills"`
	Missing []string `json:"missing_skills"`
}

// AllMatched reports whether the candidate has every required skill of a
// job that declares at least one.
func (r Result) AllMatched() bool {
	return len(r.Missing) == 0 && len(r.Matched) > 0
}

// Score compares the job's comma-separated requirements with the
// candidate's skills. Missing is job minus candidate; skills the job does
// not ask for never appear. A job with no skills scores 0.
func Score(jobSkills string, candidate []string) Result {
	job := ParseJobSkills(jobSkills)
	have := NewSkillSet(candidate)

	res := Result{Matched: []string{}, Missing: []string{}}
	for _, skill := range job.sorted() {
		if have.Has(skill) {
			res.Matched = append(res.Matched, skill)
		} else {
			res.Missing = append(res.Missing, skill)
		}
	}
	if len(job) == 0 {
		return res
	}
	res.Score = math.Round(10000*float64(len(res.Matched))/float64(len(job))) / 100
	return res
}
