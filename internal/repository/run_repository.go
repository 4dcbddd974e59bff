package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReportRun is one row of the run ledger. Only run outcomes are stored here,
// never the fetched tasks themselves.
type ReportRun struct {
	Id            string
	StartedAt     time.Time
	SectionErrors int
	Published     bool
	PublishError  string
	ReportText    string
}

type RunRepository struct {
	db *sql.DB
}

func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Save records a run, assigning it an id when the caller left it empty.
func (r *RunRepository) Save(run *ReportRun) (string, error) {
	if run.Id == "" {
		run.Id = uuid.NewString()
	}

	query := `
	INSERT INTO report_runs (id, started_at, section_errors, published, publish_error, report_text)
        VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		run.Id,
		run.StartedAt.UTC(),
		run.SectionErrors,
		run.Published,
		run.PublishError,
		run.ReportText,
	)

	if err != nil {
		return "", fmt.Errorf("Error trying to save the report run: %w", err)
	}

	return run.Id, nil
}

// GetRecentRuns returns up to limit runs, newest first.
func (r *RunRepository) GetRecentRuns(limit int) ([]ReportRun, error) {
	query := `
	SELECT id, started_at, section_errors, published, publish_error, report_text
	FROM report_runs ORDER BY started_at DESC LIMIT ?
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("Error trying to get report runs: %w", err)
	}
	defer rows.Close()

	var runs []ReportRun
	for rows.Next() {
		var run ReportRun
		err := rows.Scan(
			&run.Id,
			&run.StartedAt,
			&run.SectionErrors,
			&run.Published,
			&run.PublishError,
			&run.ReportText,
		)
		if err != nil {
			return nil, fmt.Errorf("Error trying to scan report run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
