package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run statuses.
const (
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Pipelines recorded in the ledger.
const (
	PipelineImport = "import"
	PipelineSplit  = "split"
)

var ErrRunNotFound = errors.New("run not found")

// Run represents a single pipeline invocation
type Run struct {
	RunID        int64
	UUID         string
	Pipeline     string
	InputPath    string
	InputHash    string
	EntryCount   int
	Status       string
	ErrorMessage string
	CreatedAt    time.Time
	FinishedAt   *time.Time
}

// Output is one file written by a run.
// BucketLength is 0 for the importer's single file.
type Output struct {
	FilePath     string
	ContentHash  string
	LineCount    int
	SizeBytes    int64
	BucketLength int
}

// CreateRun inserts a run in the running state.
func (db *DB) CreateRun(pipeline, inputPath, inputHash string) (*Run, error) {
	runUUID := uuid.NewString()

	result, err := db.Exec(`
		INSERT INTO runs (run_uuid, pipeline, input_path, input_hash, status)
		VALUES (?, ?, ?, ?, ?)
	`, runUUID, pipeline, inputPath, inputHash, StatusRunning)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get run ID: %w", err)
	}

	return db.GetRun(runID)
}

// RecordOutput stores a file written by a run. Re-recording a path replaces it.
func (db *DB) RecordOutput(runID int64, out Output) error {
	var bucketLength interface{}
	if out.BucketLength > 0 {
		bucketLength = out.BucketLength
	}

	_, err := db.Exec(`
		INSERT INTO run_outputs (run_id, file_path, content_hash, line_count, size_bytes, bucket_length)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, file_path) DO UPDATE SET
			content_hash = excluded.content_hash,
			line_count = excluded.line_count,
			size_bytes = excluded.size_bytes,
			bucket_length = excluded.bucket_length
	`, runID, out.FilePath, out.ContentHash, out.LineCount, out.SizeBytes, bucketLength)
	if err != nil {
		return fmt.Errorf("failed to record output: %w", err)
	}
	return nil
}

// FinishRun marks a run as done with the given status.
func (db *DB) FinishRun(runID int64, status string, entryCount int, errorMessage string) error {
	var errMsg interface{}
	if errorMessage != "" {
		errMsg = errorMessage
	}

	result, err := db.Exec(`
		UPDATE runs
		SET status = ?, entry_count = ?, error_message = ?, finished_at = CURRENT_TIMESTAMP
		WHERE run_id = ?
	`, status, entryCount, errMsg, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check finished run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrRunNotFound, runID)
	}
	return nil
}

const runColumns = `run_id, run_uuid, pipeline, input_path, input_hash, entry_count,
	status, error_message, created_at, finished_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (*Run, error) {
	var r Run
	var errMsg sql.NullString
	var finishedAt sql.NullTime

	if err := row.Scan(&r.RunID, &r.UUID, &r.Pipeline, &r.InputPath, &r.InputHash,
		&r.EntryCount, &r.Status, &errMsg, &r.CreatedAt, &finishedAt); err != nil {
		return nil, err
	}
	if errMsg.Valid {
		r.ErrorMessage = errMsg.String
	}
	if finishedAt.Valid {
		t := finishedAt.Time
		r.FinishedAt = &t
	}
	return &r, nil
}

// GetRun retrieves a run by its ID
func (db *DB) GetRun(runID int64) (*Run, error) {
	run, err := scanRun(db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT `+runColumns+`
		FROM runs
		ORDER BY created_at DESC, run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *r)
	}
	return runs, rows.Err()
}

// GetRunOutputs returns the files written by a run, in path order.
func (db *DB) GetRunOutputs(runID int64) ([]Output, error) {
	rows, err := db.Query(`
		SELECT file_path, content_hash, line_count, size_bytes, bucket_length
		FROM run_outputs
		WHERE run_id = ?
		ORDER BY COALESCE(bucket_length, 0), file_path
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run outputs: %w", err)
	}
	defer rows.Close()

	var outputs []Output
	for rows.Next() {
		var o Output
		var bucketLength sql.NullInt64
		if err := rows.Scan(&o.FilePath, &o.ContentHash, &o.LineCount, &o.SizeBytes, &bucketLength); err != nil {
			return nil, fmt.Errorf("failed to scan run output: %w", err)
		}
		if bucketLength.Valid {
			o.BucketLength = int(bucketLength.Int64)
		}
		outputs = append(outputs, o)
	}
	return outputs, rows.Err()
}

// FindPreviousRun returns the latest successful run of pipeline on the same
// input, excluding excludeRunID. Returns nil without error when none exists.
func (db *DB) FindPreviousRun(pipeline, inputHash string, excludeRunID int64) (*Run, error) {
	run, err := scanRun(db.QueryRow(`
		SELECT `+runColumns+`
		FROM runs
		WHERE pipeline = ? AND input_hash = ? AND status = ? AND run_id != ?
		ORDER BY run_id DESC
		LIMIT 1
	`, pipeline, inputHash, StatusSuccess, excludeRunID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find previous run: %w", err)
	}
	return run, nil
}

// SameOutputs reports whether two runs wrote identical files.
func (db *DB) SameOutputs(runA, runB int64) (bool, error) {
	a, err := db.GetRunOutputs(runA)
	if err != nil {
		return false, err
	}
	b, err := db.GetRunOutputs(runB)
	if err != nil {
		return false, err
	}
	if len(a) != len(b) {
		return false, nil
	}
	for i := range a {
		if a[i].FilePath != b[i].FilePath || a[i].ContentHash != b[i].ContentHash {
			return false, nil
		}
	}
	return true, nil
}
