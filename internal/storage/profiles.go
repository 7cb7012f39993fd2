package storage

import (
	"context"
	"database/sql"
	"errors"
)

// GetProfile returns the stored profile, or nil with no error when the
// candidate has never had one saved.
func (db *DB) GetProfile(ctx context.Context, candidateID int64) (*CandidateProfile, error) {
	var (
		p    CandidateProfile
		cols [11]sql.NullString
	)
	err := db.queryRow(ctx, `
		SELECT candidate_id, name, email, phone, gender, nationality, address,
		       summary, education, experience, linkedin, github, updated_at
		FROM candidate_profiles WHERE candidate_id = ?
	`, candidateID).Scan(&p.CandidateID,
		&cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5],
		&cols[6], &cols[7], &cols[8], &cols[9], &cols[10], &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get profile", err)
	}

	p.Name, p.Email, p.Phone = cols[0].String, cols[1].String, cols[2].String
	p.Gender, p.Nationality, p.Address = cols[3].String, cols[4].String, cols[5].String
	p.Summary, p.Education, p.Experience = cols[6].String, cols[7].String, cols[8].String
	p.LinkedIn, p.GitHub = cols[9].String, cols[10].String
	return &p, nil
}

// UpsertProfile writes every column of p, replacing any existing row.
func (db *DB) UpsertProfile(ctx context.Context, p *CandidateProfile) error {
	p.UpdatedAt = db.timestamp()
	_, err := db.exec(ctx, `
		INSERT INTO candidate_profiles (
			candidate_id, name, email, phone, gender, nationality, address,
			summary, education, experience, linkedin, github, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (candidate_id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			gender = excluded.gender,
			nationality = excluded.nationality,
			address = excluded.address,
			summary = excluded.summary,
			education = excluded.education,
			experience = excluded.experience,
			linkedin = excluded.linkedin,
			github = excluded.github,
			updated_at = excluded.updated_at
	`, p.CandidateID,
		nullable(p.Name), nullable(p.Email), nullable(p.Phone),
		nullable(p.Gender), nullable(p.Nationality), nullable(p.Address),
		nullable(p.Summary), nullable(p.Education), nullable(p.Experience),
		nullable(p.LinkedIn), nullable(p.GitHub), p.UpdatedAt)
	return wrap("upsert profile", err)
}

// ResetResumeFields clears the fields that only ever come from a resume
// (summary, education, experience and links) before a fresh parse.
// Manually curated personal fields are left alone.
func (db *DB) ResetResumeFields(ctx context.Context, candidateID int64) error {
	_, err := db.exec(ctx, `
		UPDATE candidate_profiles
		SET summary = NULL, education = NULL, experience = NULL,
		    linkedin = NULL, github = NULL, updated_at = ?
		WHERE candidate_id = ?
	`, db.timestamp(), candidateID)
	return wrap("reset resume fields", err)
}
