package storage

import (
	"context"
	"database/sql"
	"errors"
)

// CreateCandidate inserts a basic account and returns its ID.
func (db *DB) CreateCandidate(ctx context.Context, c *Candidate) (int64, error) {
	if c.CreatedAt == "" {
		c.CreatedAt = db.timestamp()
	}
	var id int64
	err := db.queryRow(ctx, `
		INSERT INTO candidates (name, email, phone, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`, c.Name, c.Email, nullable(c.Phone), c.CreatedAt).Scan(&id)
	if err != nil {
		return 0, wrap("create candidate", err)
	}
	c.ID = id
	return id, nil
}

// GetCandidate returns the basic account or ErrNotFound.
func (db *DB) GetCandidate(ctx context.Context, id int64) (*Candidate, error) {
	var (
		c     Candidate
		phone sql.NullString
	)
	err := db.queryRow(ctx, `
		SELECT id, name, email, phone, created_at FROM candidates WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.Email, &phone, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrap("get candidate", err)
	}
	c.Phone = phone.String
	return &c, nil
}
