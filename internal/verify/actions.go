package verify

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dtnitsch/wordlist-builder/internal/common"
	"github.com/dtnitsch/wordlist-builder/models"
	"github.com/dtnitsch/wordlist-builder/pkg/lexique"
	"github.com/dtnitsch/wordlist-builder/pkg/report"
	"github.com/dtnitsch/wordlist-builder/pkg/storage"
	"github.com/urfave/cli/v2"
)

const topScoresCount = 3

// ErrNotClean is returned when the game would not load every row.
var ErrNotClean = errors.New("word files would not load cleanly")

// VerifyAction reads the per-length files back the way the game loads them
// and reports every row it would drop.
func VerifyAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	config := models.SplitConfig{
		OutputDir:     common.StringOption(c, "dir", cfg.Split.OutputDir),
		OutputPattern: common.StringOption(c, "output-pattern", cfg.Split.OutputPattern),
		MinLength:     common.IntOption(c, "min-length", cfg.Split.MinLength),
		MaxLength:     common.IntOption(c, "max-length", cfg.Split.MaxLength),
	}

	if err := lexique.ValidatePattern(config.OutputPattern); err != nil {
		return err
	}
	if config.MinLength < lexique.GameMinLength || config.MaxLength > lexique.GameMaxLength || config.MaxLength < config.MinLength {
		return fmt.Errorf("%w: [%d, %d], the game loads lengths %d to %d", lexique.ErrInvalidRange,
			config.MinLength, config.MaxLength, lexique.GameMinLength, lexique.GameMaxLength)
	}

	v, err := Run(logger, config, &storage.Storage{})
	if err != nil {
		return err
	}

	data, err := report.MarshalVerification(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(c.App.Writer, string(data)); err != nil {
		return err
	}
	if !v.Clean {
		return ErrNotClean
	}
	return nil
}

// Run checks one file per length in range. A missing file counts as not clean.
func Run(logger *slog.Logger, config models.SplitConfig, s *storage.Storage) (*report.Verification, error) {
	v := &report.Verification{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Directory:   config.OutputDir,
		Clean:       true,
	}

	for length := config.MinLength; length <= config.MaxLength; length++ {
		path := lexique.OutputPath(config.OutputDir, config.OutputPattern, length)
		check := report.FileCheck{FilePath: path, BucketLength: length}

		if !s.HasFile(path) {
			logger.Warn("Word file missing", "length", length, "path", path)
			check.Missing = true
			v.Clean = false
			v.Files = append(v.Files, check)
			continue
		}

		data, err := s.ReadFile(path)
		if err != nil {
			return nil, err
		}
		loaded, err := lexique.Load(bytes.NewReader(data), length)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}

		check.Rows = loaded.Rows
		check.Kept = len(loaded.Words)
		check.StoppedAt = loaded.StoppedAt
		check.StopReason = loaded.StopReason
		check.TopScores = topScores(loaded.Words)
		for _, row := range loaded.Skipped {
			logger.Warn("Row skipped by the game", "path", path, "line", row.Line, "word", row.Word, "reason", row.Reason)
			check.Skipped = append(check.Skipped, report.SkippedRow{Line: row.Line, Word: row.Word, Reason: row.Reason})
		}
		if loaded.StoppedAt != 0 {
			logger.Warn("Game stops reading", "path", path, "line", loaded.StoppedAt, "reason", loaded.StopReason)
		}
		if !loaded.Clean() {
			v.Clean = false
		}

		logger.Info("Word file checked", "length", length, "rows", loaded.Rows, "kept", check.Kept)
		v.Files = append(v.Files, check)
	}

	return v, nil
}

func topScores(words []lexique.GameWord) []string {
	entries := make([]models.Entry, len(words))
	for i, w := range words {
		entries[i] = models.Entry{Word: w.Word, Frequency: w.Score}
	}
	return report.TopWords(entries, topScoresCount, 3)
}
