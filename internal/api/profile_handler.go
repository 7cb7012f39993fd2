package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"cv-intake/internal/profile"
)

// ProfileUpdateRequest carries manual edits; omitted fields are unchanged.
type ProfileUpdateRequest struct {
	CandidateID int64   `json:"candidate_id" validate:"required,gt=0"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Gender      *string `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	Nationality *string `json:"nationality,omitempty" validate:"omitempty,max=60"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=300"`
	Summary     *string `json:"summary,omitempty" validate:"omitempty,max=4000"`
	Education   *string `json:"education,omitempty" validate:"omitempty,max=8000"`
	Experience  *string `json:"experience,omitempty" validate:"omitempty,max=16000"`
	LinkedIn    *string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub      *string `json:"github,omitempty" validate:"omitempty,url"`
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	return &s
}

func (req ProfileUpdateRequest) edit() profile.ManualEdit {
	return profile.ManualEdit{
		Name:        trimmed(req.Name),
		Phone:       trimmed(req.Phone),
		Gender:      trimmed(req.Gender),
		Nationality: trimmed(req.Nationality),
		Address:     trimmed(req.Address),
		Summary:     trimmed(req.Summary),
		Education:   trimmed(req.Education),
		Experience:  trimmed(req.Experience),
		LinkedIn:    trimmed(req.LinkedIn),
		GitHub:      trimmed(req.GitHub),
	}
}

// ProfileHandler serves GET (resolved profile) and PUT (manual edits).
// @Summary Get the resolved candidate profile
// @Description Merges manual edits, the parsed resume and the account; parses the stored resume on first view
// @Tags profile
// @Produce json
// @Param candidate_id query int true "Candidate ID"
// @Success 200 {object} profile.View
// @Failure 404 {object} APIError
// @Router /api/profile [get]
func (a *API) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPut {
		a.updateProfile(w, r)
		return
	}

	candidateID, err := parseID(r, "candidate_id")
	if err != nil {
		fail(w, r, err)
		return
	}
	if err := a.requireCandidate(r.Context(), candidateID); err != nil {
		fail(w, r, err)
		return
	}

	view, err := a.profiles.Display(r.Context(), candidateID)
	if err != nil {
		fail(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, view)
}

// updateProfile saves manual edits.
// @Summary Save manual profile edits
// @Tags profile
// @Accept json
// @Produce json
// @Param request body ProfileUpdateRequest true "Fields to change"
// @Success 200 {object} profile.View
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Router /api/profile [put]
func (a *API) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileUpdateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		RespondWithError(w, r, ErrBadRequest("invalid JSON: "+err.Error()))
		return
	}

	if err := a.validate.Struct(req); err != nil {
		apiErr := ErrBadRequest("validation failed")
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				apiErr.Fields = append(apiErr.Fields, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
			}
		}
		RespondWithError(w, r, apiErr)
		return
	}
	if err := a.requireCandidate(r.Context(), req.CandidateID); err != nil {
		fail(w, r, err)
		return
	}

	view, err := a.profiles.SaveManual(r.Context(), req.CandidateID, req.edit())
	if err != nil {
		fail(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, view)
}
