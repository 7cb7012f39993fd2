package api

import (
	"context"
	"time"

	"cv-intake/internal/storage"
)

// ReparseJob represents a background re-parse of a stored resume
type ReparseJob struct {
	JobID       int64
	CandidateID int64
	Timestamp   time.Time
}

// StartBackgroundWorkers starts the re-parse worker; it stops when ctx is done.
func (a *API) StartBackgroundWorkers(ctx context.Context) {
	go a.reparseWorker(ctx)
	a.logger.Info("background workers started")
}

func (a *API) reparseWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("reparse worker stopped")
			return
		case job := <-a.reparseQueue:
			a.runReparseJob(ctx, job)
		}
	}
}

func (a *API) runReparseJob(ctx context.Context, job ReparseJob) {
	log := a.logger.With("job_id", job.JobID, "candidate_id", job.CandidateID)

	if err := a.db.UpdateJobStatus(ctx, job.JobID, storage.JobProcessing, nil); err != nil {
		log.Error("failed to update job status", "error", err)
		return
	}

	res, err := a.profiles.Reparse(ctx, job.CandidateID)
	if err != nil {
		errMsg := toAPIError(err).Detail
		log.Warn("reparse failed", "error", err)
		if err := a.db.UpdateJobStatus(ctx, job.JobID, storage.JobFailed, &errMsg); err != nil {
			log.Error("failed to mark job failed", "error", err)
		}
		return
	}

	if err := a.db.UpdateJobStatus(ctx, job.JobID, storage.JobCompleted, nil); err != nil {
		log.Error("failed to mark job completed", "error", err)
	}
	log.Info("reparse completed",
		"skills", len(res.Parsed.Skills), "took", time.Since(job.Timestamp))
}

// Reparse creates a job record and runs it synchronously. The AMQP
// consumer uses it so both paths share status tracking.
func (a *API) Reparse(ctx context.Context, candidateID int64) (int64, error) {
	if err := a.requireCandidate(ctx, candidateID); err != nil {
		return 0, err
	}
	jobID, err := a.db.CreateParseJob(ctx, candidateID)
	if err != nil {
		return 0, err
	}
	a.runReparseJob(ctx, ReparseJob{JobID: jobID, CandidateID: candidateID, Timestamp: time.Now()})

	job, err := a.db.GetParseJob(ctx, jobID)
	if err != nil {
		return jobID, err
	}
	if job.Status == storage.JobFailed && job.ErrorMessage != nil {
		return jobID, ErrUnprocessable(*job.ErrorMessage)
	}
	return jobID, nil
}

// queueReparseJob adds a job to the background queue without blocking.
func (a *API) queueReparseJob(ctx context.Context, jobID, candidateID int64) bool {
	job := ReparseJob{JobID: jobID, CandidateID: candidateID, Timestamp: time.Now()}

	select {
	case a.reparseQueue <- job:
		a.logger.InfoContext(ctx, "queued reparse job", "job_id", jobID, "candidate_id", candidateID)
		return true
	default:
		a.logger.WarnContext(ctx, "queue full, dropping reparse job", "job_id", jobID)
		errMsg := "Queue full, job dropped"
		if err := a.db.UpdateJobStatus(ctx, jobID, storage.JobFailed, &errMsg); err != nil {
			a.logger.ErrorContext(ctx, "failed to mark dropped job", "error", err)
		}
		return false
	}
}
