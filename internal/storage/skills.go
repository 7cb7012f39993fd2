package storage

import (
	"context"
	"database/sql"
)

// ReplaceSkills swaps the candidate's skill list for skills in a single
// transaction. Running it twice with the same input leaves one copy.
func (db *DB) ReplaceSkills(ctx context.Context, candidateID int64, skills []string) error {
	addedAt := db.timestamp()
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			db.rebind(`DELETE FROM candidate_skills WHERE candidate_id = ?`), candidateID); err != nil {
			return err
		}
		if len(skills) == 0 {
			return nil
		}
		stmt, err := tx.PrepareContext(ctx,
			db.rebind(`INSERT INTO candidate_skills (candidate_id, skill, added_at) VALUES (?, ?, ?)`))
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, s := range skills {
			if _, err := stmt.ExecContext(ctx, candidateID, s, addedAt); err != nil {
				return err
			}
		}
		return nil
	})
	return wrap("replace skills", err)
}

// CandidateSkills returns skills in insertion order.
func (db *DB) CandidateSkills(ctx context.Context, candidateID int64) ([]string, error) {
	rows, err := db.query(ctx, `
		SELECT skill FROM candidate_skills WHERE candidate_id = ? ORDER BY id
	`, candidateID)
	if err != nil {
		return nil, wrap("candidate skills", err)
	}
	defer rows.Close()

	skills := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, wrap("candidate skills", err)
		}
		skills = append(skills, s)
	}
	return skills, wrap("candidate skills", rows.Err())
}
