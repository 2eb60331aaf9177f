package state

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lineup/internal/engine"
)

// Run is one stored validation run: its input summary and the full
// report serialized as JSON.
type Run struct {
	// ID is the unique identifier for this run.
	ID string
	// Source describes the input ("stdin" or a file path).
	Source string
	// StartedAt is when the run began.
	StartedAt time.Time
	// Lines is the number of raw input lines.
	Lines int
	// Dropped is the number of lines discarded without a report entry.
	Dropped int
	// Conflicts is the total conflicting placements across both sides.
	Conflicts int
	// Invalid is the total invalid placements across both sides.
	Invalid int
	// Missing is the total missing pieces across both sides.
	Missing int
	// Extra is the total extra pieces across both sides.
	Extra int
	// ReportJSON is the full result serialized as JSON.
	ReportJSON string
}

// NewRun builds a Run record from a validation result.
func NewRun(source string, lines int, res *engine.Result) (*Run, error) {
	data, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	run := &Run{
		ID:         uuid.New().String()[:8],
		Source:     source,
		StartedAt:  time.Now(),
		Lines:      lines,
		Dropped:    res.Dropped,
		ReportJSON: string(data),
	}
	for _, r := range res.Reports {
		run.Conflicts += len(r.Conflicts)
		run.Invalid += len(r.Invalid)
		for _, d := range r.Missing {
			run.Missing += d.Count
		}
		for _, d := range r.Extra {
			run.Extra += d.Count
		}
	}
	return run, nil
}

// Result deserializes the stored report.
func (r *Run) Result() (*engine.Result, error) {
	var res engine.Result
	if err := json.Unmarshal([]byte(r.ReportJSON), &res); err != nil {
		return nil, fmt.Errorf("unmarshal stored report: %w", err)
	}
	return &res, nil
}

// SaveRun stores a validation run.
func (db *DB) SaveRun(run *Run) error {
	_, err := db.Exec(`
		INSERT INTO runs (id, source, started_at, lines, dropped, conflicts, invalid, missing, extra, report_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Source, formatTime(run.StartedAt), run.Lines, run.Dropped,
		run.Conflicts, run.Invalid, run.Missing, run.Extra, run.ReportJSON)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// ListRuns returns up to limit runs, most recent first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	rows, err := db.Query(`
		SELECT id, source, started_at, lines, dropped, conflicts, invalid, missing, extra, report_json
		FROM runs ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// GetRun returns one run by ID, or nil if not found.
func (db *DB) GetRun(id string) (*Run, error) {
	rows, err := db.Query(`
		SELECT id, source, started_at, lines, dropped, conflicts, invalid, missing, extra, report_json
		FROM runs WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanRun(rows)
}

// scanRun reads one run row.
func scanRun(rows *sql.Rows) (*Run, error) {
	var run Run
	var startedAt string
	if err := rows.Scan(&run.ID, &run.Source, &startedAt, &run.Lines, &run.Dropped,
		&run.Conflicts, &run.Invalid, &run.Missing, &run.Extra, &run.ReportJSON); err != nil {
		return nil, fmt.Errorf("scan run: %w", err)
	}

	t, err := parseTime(startedAt)
	if err != nil {
		return nil, fmt.Errorf("parse run time: %w", err)
	}
	run.StartedAt = t
	return &run, nil
}
