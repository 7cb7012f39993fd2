package match

import (
	"context"
	"fmt"
	"log/slog"
)

// JobSource returns the raw comma-separated skills of a job posting.
type JobSource interface {
	GetJobSkills(ctx context.Context, jobID int64) (string, error)
}

// SkillSource returns the skills stored for a candidate.
type SkillSource interface {
	CandidateSkills(ctx context.Context, candidateID int64) ([]string, error)
}

type Service struct {
	jobs   JobSource
	skills SkillSource
	logger *slog.Logger
}

func NewService(jobs JobSource, skills SkillSource) *Service {
	return &Service{jobs: jobs, skills: skills, logger: slog.Default().With("component", "match")}
}

// Match loads both sides from storage and scores them.
func (s *Service) Match(ctx context.Context, candidateID, jobID int64) (Result, error) {
	jobSkills, err := s.jobs.GetJobSkills(ctx, jobID)
	if err != nil {
		return Result{}, fmt.Errorf("load job %d skills: %w", jobID, err)
	}
	have, err := s.skills.CandidateSkills(ctx, candidateID)
	if err != nil {
		return Result{}, fmt.Errorf("load candidate %d skills: %w", candidateID, err)
	}

	res := Score(jobSkills, have)
	s.logger.DebugContext(ctx, "scored candidate",
		"candidate_id", candidateID, "job_id", jobID,
		"score", res.Score, "missing", len(res.Missing))
	return res, nil
}
