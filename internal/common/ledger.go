package common

import (
	"fmt"
	"log/slog"

	"github.com/dtnitsch/wordlist-builder/models"
	"github.com/dtnitsch/wordlist-builder/pkg/db"
	"github.com/dtnitsch/wordlist-builder/pkg/report"
	"github.com/urfave/cli/v2"
)

// Ledger records runs in the SQLite database. Recording is opt-in: without
// --db (or db in the config file), or with --no-ledger, every method is a
// no-op, so pipelines don't need to care.
type Ledger struct {
	db     *db.DB
	logger *slog.Logger
}

// OpenLedger opens the database named by --db (or the config file).
func OpenLedger(c *cli.Context, cfg *models.Config, logger *slog.Logger) (*Ledger, error) {
	path := StringOption(c, "db", cfg.DB)
	if c.Bool("no-ledger") || path == "" {
		return &Ledger{logger: logger}, nil
	}

	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	logger.Debug("Ledger opened", "path", database.Path())
	return &Ledger{db: database, logger: logger}, nil
}

// Enabled reports whether runs are being recorded.
func (l *Ledger) Enabled() bool {
	return l.db != nil
}

func (l *Ledger) Close() error {
	if !l.Enabled() {
		return nil
	}
	return l.db.Close()
}

// Begin records the start of a run and stamps the summary with its IDs.
func (l *Ledger) Begin(summary *report.Summary) (int64, error) {
	if !l.Enabled() {
		return 0, nil
	}
	run, err := l.db.CreateRun(summary.Pipeline, summary.InputPath, summary.InputHash)
	if err != nil {
		return 0, err
	}
	summary.RunID = run.RunID
	summary.RunUUID = run.UUID
	l.logger.Info("Run started", "run_id", run.RunID, "run_uuid", run.UUID, "pipeline", run.Pipeline)
	return run.RunID, nil
}

// Complete stores the outputs, marks the run successful and fills in
// UnchangedSinceRun when a previous run on the same input wrote the same files.
func (l *Ledger) Complete(runID int64, summary *report.Summary) error {
	if !l.Enabled() {
		return nil
	}

	for _, o := range summary.Outputs {
		err := l.db.RecordOutput(runID, db.Output{
			FilePath:     o.FilePath,
			ContentHash:  o.ContentHash,
			LineCount:    o.Lines,
			SizeBytes:    o.SizeBytes,
			BucketLength: o.BucketLength,
		})
		if err != nil {
			return err
		}
	}
	if err := l.db.FinishRun(runID, db.StatusSuccess, summary.EntryCount, ""); err != nil {
		return err
	}

	prev, err := l.db.FindPreviousRun(summary.Pipeline, summary.InputHash, runID)
	if err != nil {
		return err
	}
	if prev == nil {
		return nil
	}
	same, err := l.db.SameOutputs(prev.RunID, runID)
	if err != nil {
		return err
	}
	if same {
		summary.UnchangedSinceRun = prev.RunID
		l.logger.Info("Outputs identical to previous run", "run_id", runID, "previous_run_id", prev.RunID)
	} else {
		l.logger.Warn("Outputs differ from previous run on the same input", "run_id", runID, "previous_run_id", prev.RunID)
	}
	return nil
}

// Fail marks the run failed. Ledger errors are logged, not returned, so the
// pipeline error stays the one reported.
func (l *Ledger) Fail(runID int64, runErr error) {
	if !l.Enabled() || runID == 0 {
		return
	}
	if err := l.db.FinishRun(runID, db.StatusFailed, 0, runErr.Error()); err != nil {
		l.logger.Error("failed to record failed run", "run_id", runID, "error", err)
	}
}
