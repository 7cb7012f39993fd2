package api

import (
	"errors"
	"net/http"

	"cv-intake/internal/storage"
)

type MatchResponse struct {
	CandidateID   int64    `json:"candidate_id"`
	JobID         int64    `json:"job_id"`
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	AllMatched    bool     `json:"all_matched"`
}

// MatchHandler scores a candidate against a job
// @Summary Skill match score
// @Description Percentage of the job's required skills the candidate has, plus the missing ones
// @Tags match
// @Produce json
// @Param candidate_id query int true "Candidate ID"
// @Param job_id query int true "Job ID"
// @Success 200 {object} MatchResponse
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Router /api/match [get]
func (a *API) MatchHandler(w http.ResponseWriter, r *http.Request) {
	candidateID, err := parseID(r, "candidate_id")
	if err != nil {
		fail(w, r, err)
		return
	}
	jobID, err := parseID(r, "job_id")
	if err != nil {
		fail(w, r, err)
		return
	}
	if err := a.requireCandidate(r.Context(), candidateID); err != nil {
		fail(w, r, err)
		return
	}

	res, err := a.matcher.Match(r.Context(), candidateID, jobID)
	if errors.Is(err, storage.ErrNotFound) {
		RespondWithError(w, r, ErrNotFound("job not found"))
		return
	}
	if err != nil {
		fail(w, r, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, MatchResponse{
		CandidateID:   candidateID,
		JobID:         jobID,
		Score:         res.Score,
		MatchedSkills: res.Matched,
		MissingSkills: res.Missing,
		AllMatched:    res.AllMatched(),
	})
}
