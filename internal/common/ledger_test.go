package common

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/dtnitsch/wordlist-builder/pkg/report"
)

func TestLedger_DisabledIsNoOp(t *testing.T) {
	l := &Ledger{logger: slog.Default()}
	if l.Enabled() {
		t.Fatal("Enabled() = true without a database")
	}

	summary := report.NewSummary("split", "Lexique.tsv", "abc")
	runID, err := l.Begin(summary)
	if err != nil || runID != 0 {
		t.Errorf("Begin() = %d, %v; want 0, nil", runID, err)
	}
	if summary.RunUUID != "" {
		t.Errorf("RunUUID = %q, want empty", summary.RunUUID)
	}
	if err := l.Complete(runID, summary); err != nil {
		t.Errorf("Complete() failed: %v", err)
	}
	l.Fail(runID, errors.New("boom"))
	if err := l.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}
