package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"cv-intake/internal/cv"
	"cv-intake/internal/profile"
	"cv-intake/internal/storage"
)

// UploadResponse is returned after a resume has been parsed.
type UploadResponse struct {
	CandidateID      int64             `json:"candidate_id"`
	Filename         string            `json:"filename"`
	FileSize         int64             `json:"file_size"`
	Parsed           *cv.ParsedProfile `json:"parsed"`
	Profile          profile.View      `json:"profile"`
	ProcessingTimeMS int64             `json:"processing_time_ms"`
}

// CVUploadHandler handles resume uploads
// @Summary Upload and parse a resume
// @Description Upload a PDF or DOCX resume; it is stored, parsed and merged into the candidate profile
// @Tags cv
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF or DOCX)"
// @Param candidate_id formData int true "Candidate ID"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Failure 422 {object} APIError
// @Router /api/cv/upload [post]
func (a *API) CVUploadHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1<<20)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		RespondWithError(w, r, ErrBadRequest("file too large or invalid (max 10MB)"))
		return
	}

	candidateID, err := parseID(r, "candidate_id")
	if err != nil {
		fail(w, r, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		RespondWithError(w, r, ErrBadRequest("no file uploaded"))
		return
	}
	defer file.Close()

	if _, ok := cv.DetectType(header.Filename); !ok {
		fail(w, r, cv.ErrUnsupportedType)
		return
	}
	if err := a.requireCandidate(r.Context(), candidateID); err != nil {
		fail(w, r, err)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		RespondWithError(w, r, ErrBadRequest("could not read uploaded file"))
		return
	}

	res, err := a.profiles.Upload(r.Context(), candidateID, header.Filename, data)
	if err != nil {
		fail(w, r, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, UploadResponse{
		CandidateID:      candidateID,
		Filename:         header.Filename,
		FileSize:         int64(len(data)),
		Parsed:           res.Parsed,
		Profile:          res.View,
		ProcessingTimeMS: time.Since(start).Milliseconds(),
	})
}

// ReparseResponse acknowledges a queued re-parse.
type ReparseResponse struct {
	JobID  int64  `json:"job_id"`
	Status string `json:"status"`
}

// CVReparseHandler queues a re-parse of the candidate's stored resume
// @Summary Re-parse the stored resume
// @Tags cv
// @Produce json
// @Param candidate_id query int true "Candidate ID"
// @Success 202 {object} ReparseResponse
// @Failure 404 {object} APIError
// @Failure 503 {object} APIError
// @Router /api/cv/reparse [post]
func (a *API) CVReparseHandler(w http.ResponseWriter, r *http.Request) {
	candidateID, err := parseID(r, "candidate_id")
	if err != nil {
		fail(w, r, err)
		return
	}
	if err := a.requireCandidate(r.Context(), candidateID); err != nil {
		fail(w, r, err)
		return
	}

	jobID, err := a.db.CreateParseJob(r.Context(), candidateID)
	if err != nil {
		fail(w, r, err)
		return
	}
	if !a.queueReparseJob(r.Context(), jobID, candidateID) {
		RespondWithError(w, r, ErrServiceUnavailable("re-parse queue is full, try again later"))
		return
	}
	RespondWithJSON(w, http.StatusAccepted, ReparseResponse{JobID: jobID, Status: storage.JobPending})
}

// ParseJobHandler returns the status of a re-parse job
// @Summary Re-parse job status
// @Tags cv
// @Produce json
// @Param id query int true "Job ID"
// @Success 200 {object} storage.ParseJob
// @Failure 404 {object} APIError
// @Router /api/cv/jobs [get]
func (a *API) ParseJobHandler(w http.ResponseWriter, r *http.Request) {
	jobID, err := parseID(r, "id")
	if err != nil {
		fail(w, r, err)
		return
	}
	job, err := a.db.GetParseJob(r.Context(), jobID)
	if errors.Is(err, storage.ErrNotFound) {
		RespondWithError(w, r, ErrNotFound("job not found"))
		return
	}
	if err != nil {
		fail(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, job)
}
