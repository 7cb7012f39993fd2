package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

func (db *DB) CreateJob(ctx context.Context, j *Job) (int64, error) {
	if j.CreatedAt == "" {
		j.CreatedAt = db.timestamp()
	}
	var id int64
	err := db.queryRow(ctx, `
		INSERT INTO jobs (title, skills, created_at) VALUES (?, ?, ?) RETURNING id
	`, j.Title, strings.Join(splitAndTrim(j.Skills), ", "), j.CreatedAt).Scan(&id)
	if err != nil {
		return 0, wrap("create job", err)
	}
	j.ID = id
	return id, nil
}

// GetJobSkills returns the raw comma-separated requirement list of a job,
// or ErrNotFound.
func (db *DB) GetJobSkills(ctx context.Context, jobID int64) (string, error) {
	var skills sql.NullString
	err := db.queryRow(ctx, `SELECT skills FROM jobs WHERE id = ?`, jobID).Scan(&skills)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", wrap("get job skills", err)
	}
	return skills.String, nil
}
