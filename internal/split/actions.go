package split

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dtnitsch/wordlist-builder/internal/common"
	"github.com/dtnitsch/wordlist-builder/models"
	"github.com/dtnitsch/wordlist-builder/pkg/db"
	"github.com/dtnitsch/wordlist-builder/pkg/lexique"
	"github.com/dtnitsch/wordlist-builder/pkg/report"
	"github.com/dtnitsch/wordlist-builder/pkg/storage"
	"github.com/urfave/cli/v2"
)

const topWordsCount = 5

// SplitAction splits the lexical database into per-length word files.
func SplitAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	startTime := time.Now()

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	config := models.SplitConfig{
		Input:         common.StringOption(c, "input", cfg.Split.Input),
		OutputDir:     common.StringOption(c, "output-dir", cfg.Split.OutputDir),
		OutputPattern: common.StringOption(c, "output-pattern", cfg.Split.OutputPattern),
		MinLength:     common.IntOption(c, "min-length", cfg.Split.MinLength),
		MaxLength:     common.IntOption(c, "max-length", cfg.Split.MaxLength),
	}

	// Fail fast on bad settings before touching the ledger
	if err := lexique.ValidatePattern(config.OutputPattern); err != nil {
		return err
	}
	if _, err := lexique.NewSplitter(config.MinLength, config.MaxLength); err != nil {
		return err
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

	summary := report.NewSummary(db.PipelineSplit, config.Input, inputHash)
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

// Run buckets the whole database in memory, then writes one file per
// length in range, empty buckets included.
func Run(logger *slog.Logger, config models.SplitConfig, s *storage.Storage, summary *report.Summary) error {
	splitter, err := lexique.NewSplitter(config.MinLength, config.MaxLength)
	if err != nil {
		return err
	}

	in, err := os.Open(config.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	buckets, err := splitter.Split(in)
	if err != nil {
		return fmt.Errorf("failed to split %s: %w", config.Input, err)
	}

	for _, b := range buckets {
		path := lexique.OutputPath(config.OutputDir, config.OutputPattern, b.Length)
		if err := writeBucket(s, path, b); err != nil {
			return err
		}
		logger.Info("Bucket written", "length", b.Length, "words", b.Len(), "output", path)

		desc, err := common.DescribeOutput(s, path, b.Length, report.TopWords(b.Entries(), topWordsCount, 3))
		if err != nil {
			return err
		}
		summary.EntryCount += b.Len()
		summary.Outputs = append(summary.Outputs, desc)
	}

	return nil
}

func writeBucket(s *storage.Storage, path string, b *lexique.Bucket) error {
	out, err := s.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(out); err != nil {
		_ = out.Close() // write error is the one worth reporting
		return fmt.Errorf("failed to write %s: %w", out.Path(), err)
	}
	return out.Close()
}
