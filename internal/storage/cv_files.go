package storage

import (
	"context"
	"database/sql"
	"errors"
)

// SaveCVFile records an uploaded resume and returns its ID.
func (db *DB) SaveCVFile(ctx context.Context, f *CVFile) (int64, error) {
	if f.UploadedAt == "" {
		f.UploadedAt = db.timestamp()
	}
	var id int64
	err := db.queryRow(ctx, `
		INSERT INTO cv_files (candidate_id, filename, object_key, file_type, file_size, sha256, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`, f.CandidateID, f.Filename, f.ObjectKey, f.FileType, f.FileSize, f.SHA256, f.UploadedAt).Scan(&id)
	if err != nil {
		return 0, wrap("save cv file", err)
	}
	f.ID = id
	return id, nil
}

// LatestCVFile returns the most recent upload for a candidate, or nil
// when there is none.
func (db *DB) LatestCVFile(ctx context.Context, candidateID int64) (*CVFile, error) {
	var f CVFile
	err := db.queryRow(ctx, `
		SELECT id, candidate_id, filename, object_key, file_type, file_size, sha256, uploaded_at
		FROM cv_files WHERE candidate_id = ?
		ORDER BY id DESC LIMIT 1
	`, candidateID).Scan(&f.ID, &f.CandidateID, &f.Filename, &f.ObjectKey,
		&f.FileType, &f.FileSize, &f.SHA256, &f.UploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("latest cv file", err)
	}
	return &f, nil
}

// LatestCVFiles returns the newest upload of every candidate who has one,
// oldest candidate first, capped at limit rows (0 means no cap).
func (db *DB) LatestCVFiles(ctx context.Context, limit int) ([]CVFile, error) {
	query := `
		SELECT f.id, f.candidate_id, f.filename, f.object_key, f.file_type, f.file_size, f.sha256, f.uploaded_at
		FROM cv_files f
		WHERE f.id = (SELECT MAX(id) FROM cv_files WHERE candidate_id = f.candidate_id)
		ORDER BY f.candidate_id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.query(ctx, query, args...)
	if err != nil {
		return nil, wrap("latest cv files", err)
	}
	defer rows.Close()

	var files []CVFile
	for rows.Next() {
		var f CVFile
		if err := rows.Scan(&f.ID, &f.CandidateID, &f.Filename, &f.ObjectKey,
			&f.FileType, &f.FileSize, &f.SHA256, &f.UploadedAt); err != nil {
			return nil, wrap("latest cv files", err)
		}
		files = append(files, f)
	}
	return files, wrap("latest cv files", rows.Err())
}
