package storage

import (
	"context"
	"database/sql"
	"errors"
)

// CreateParseJob creates a pending re-parse job.
func (db *DB) CreateParseJob(ctx context.Context, candidateID int64) (int64, error) {
	now := db.timestamp()
	var id int64
	err := db.queryRow(ctx, `
		INSERT INTO parse_jobs (candidate_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`, candidateID, JobPending, now, now).Scan(&id)
	if err != nil {
		return 0, wrap("create parse job", err)
	}
	return id, nil
}

// UpdateJobStatus updates the status of a parse job.
func (db *DB) UpdateJobStatus(ctx context.Context, jobID int64, status string, errorMsg *string) error {
	_, err := db.exec(ctx, `
		UPDATE parse_jobs SET status = ?, error_message = ?, updated_at = ? WHERE id = ?
	`, status, errorMsg, db.timestamp(), jobID)
	return wrap("update job status", err)
}

func (db *DB) GetParseJob(ctx context.Context, jobID int64) (*ParseJob, error) {
	var (
		j      ParseJob
		errMsg sql.NullString
	)
	err := db.queryRow(ctx, `
		SELECT id, candidate_id, status, error_message, created_at, updated_at
		FROM parse_jobs WHERE id = ?
	`, jobID).Scan(&j.ID, &j.CandidateID, &j.Status, &errMsg, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrap("get parse job", err)
	}
	if errMsg.Valid {
		j.ErrorMessage = &errMsg.String
	}
	return &j, nil
}
