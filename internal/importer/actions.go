package importer

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dtnitsch/wordlist-builder/internal/common"
	"github.com/dtnitsch/wordlist-builder/models"
	"github.com/dtnitsch/wordlist-builder/pkg/db"
	"github.com/dtnitsch/wordlist-builder/pkg/normalize"
	"github.com/dtnitsch/wordlist-builder/pkg/report"
	"github.com/dtnitsch/wordlist-builder/pkg/storage"
	"github.com/dtnitsch/wordlist-builder/pkg/wordlist"
	"github.com/urfave/cli/v2"
)

const topWordsCount = 10

// ImportAction converts a JSON word list into the flat frequency file.
func ImportAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	startTime := time.Now()

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	config := models.ImportConfig{
		Input:  common.StringOption(c, "input", cfg.Import.Input),
		Output: common.StringOption(c, "output", cfg.Import.Output),
	}

	s := &storage.Storage{}
	inputHash, err := s.HashFile(config.Input)
	if err != nil {
		return fmt.Errorf("failed to read input %s: %w", config.Input, err)
	}

	ledger, err := common.OpenLedger(c, cfg, logger)
	if err != nil {
		return err
	}
	defer ledger.Close()

	summary := report.NewSummary(db.PipelineImport, config.Input, inputHash)
	runID, err := ledger.Begin(summary)
	if err != nil {
		return err
	}

	if err := Run(logger, config, s, summary); err != nil {
		ledger.Fail(runID, err)
		return err
	}
	summary.TotalTimeSeconds = time.Since(startTime).Seconds()

	if err := ledger.Complete(runID, summary); err != nil {
		return err
	}
	return common.PrintSummary(c, summary)
}

// Run reads the whole word list before creating the output, so a malformed
// input leaves no output file behind.
func Run(logger *slog.Logger, config models.ImportConfig, s *storage.Storage, summary *report.Summary) error {
	in, err := os.Open(config.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	list, err := wordlist.Decode(in)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", config.Input, err)
	}
	logger.Info("Word list decoded", "input", config.Input, "entries", list.Len())

	out, err := s.Create(config.Output)
	if err != nil {
		return err
	}
	n, err := wordlist.Write(out, list)
	if err != nil {
		_ = out.Close() // write error is the one worth reporting
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	logger.Info("Word list written", "output", out.Path(), "lines", n)

	scaled := make([]models.Entry, 0, list.Len())
	for _, e := range list.Entries() {
		scaled = append(scaled, models.Entry{Word: normalize.Upper(e.Word), Frequency: e.Frequency * wordlist.Scale})
	}

	desc, err := common.DescribeOutput(s, config.Output, 0, report.TopWords(scaled, topWordsCount, 5))
	if err != nil {
		return err
	}
	summary.EntryCount = list.Len()
	summary.Outputs = append(summary.Outputs, desc)
	return nil
}
