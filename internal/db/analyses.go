package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveAnalysis inserts an analysis row and returns its ID. The JSON
// columns (breakdown, keywords, tips, revamp) are stored as JSONB;
// revamp may be nil when no rewrite was produced.
func (db *DB) SaveAnalysis(ctx context.Context, a *Analysis) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analyses (user_id, job_url, job_title, ats, score, breakdown, keywords, tips, revamp)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		a.UserID, a.JobURL, a.JobTitle, a.ATS, a.Score, a.Breakdown, a.Keywords, a.Tips, a.Revamp,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis returns one analysis owned by userID, or nil when not found.
func (db *DB) GetAnalysis(ctx context.Context, id, userID uuid.UUID) (*Analysis, error) {
	var a Analysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_url, job_title, ats, score, breakdown, keywords, tips, revamp, created_at
		 FROM analyses WHERE id = $1 AND user_id = $2`, id, userID,
	).Scan(&a.ID, &a.UserID, &a.JobURL, &a.JobTitle, &a.ATS, &a.Score,
		&a.Breakdown, &a.Keywords, &a.Tips, &a.Revamp, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &a, nil
}

// ListAnalyses returns a user's analyses, newest first. The JSON
// columns are omitted to keep the listing light.
func (db *DB) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_url, job_title, ats, score, created_at
		 FROM analyses WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		var a Analysis
		if err := rows.Scan(&a.ID, &a.UserID, &a.JobURL, &a.JobTitle, &a.ATS, &a.Score, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analysis rows: %w", err)
	}
	return out, nil
}

// DeleteAnalysis removes one analysis owned by userID. It reports
// whether a row was deleted.
func (db *DB) DeleteAnalysis(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM analyses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
