package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-grader/internal/types"
)

// ErrLockHeld is returned when a user already has a grading request in flight.
var ErrLockHeld = errors.New("grading already in progress for user")

// ErrReportNotFound is returned when a report id does not exist for the user.
var ErrReportNotFound = errors.New("report not found")

// SaveReport stores a finished grading report and returns its id.
func (db *DB) SaveReport(ctx context.Context, report *types.Report) (uuid.UUID, error) {
	feedback, err := json.Marshal(report.Feedback)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal feedback: %w", err)
	}
	grade, err := json.Marshal(report.Grade)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal grade: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO reports (user_id, resume_name, role, feedback, format_score, grade)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		report.UserID, report.ResumeName, report.Role, feedback, report.FormatScore, grade,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save report: %w", err)
	}
	return id, nil
}

// GetReport fetches one report owned by the user.
func (db *DB) GetReport(ctx context.Context, id, userID uuid.UUID) (*types.Report, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, user_id, resume_name, role, feedback, format_score, grade, created_at
		 FROM reports WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

// ListReports returns the user's reports, newest first.
func (db *DB) ListReports(ctx context.Context, userID uuid.UUID) ([]*types.Report, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, resume_name, role, feedback, format_score, grade, created_at
		 FROM reports WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*types.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report rows: %w", err)
	}

	return reports, nil
}

// scanReport reads one report row, decoding the JSON columns.
func scanReport(row pgx.Row) (*types.Report, error) {
	var (
		report   types.Report
		feedback []byte
		grade    []byte
	)
	if err := row.Scan(&report.ID, &report.UserID, &report.ResumeName, &report.Role,
		&feedback, &report.FormatScore, &grade, &report.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(feedback, &report.Feedback); err != nil {
		return nil, fmt.Errorf("failed to parse feedback: %w", err)
	}
	if len(grade) > 0 && string(grade) != "null" {
		report.Grade = &types.GradeResult{}
		if err := json.Unmarshal(grade, report.Grade); err != nil {
			return nil, fmt.Errorf("failed to parse grade: %w", err)
		}
	}
	return &report, nil
}

// AcquireGradeLock takes the per-user grading lock. At most one grading
// request may be in flight per user; a held lock yields ErrLockHeld.
func (db *DB) AcquireGradeLock(ctx context.Context, userID uuid.UUID) error {
	tag, err := db.pool.Exec(ctx,
		`INSERT INTO grading_locks (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to acquire grading lock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLockHeld
	}
	return nil
}

// ReleaseGradeLock releases the per-user grading lock. Safe to call when the
// lock is not held.
func (db *DB) ReleaseGradeLock(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM grading_locks WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to release grading lock: %w", err)
	}
	return nil
}
