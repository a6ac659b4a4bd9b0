package common

import (
	"fmt"

	"github.com/dtnitsch/wordlist-builder/pkg/report"
	"github.com/dtnitsch/wordlist-builder/pkg/storage"
	"github.com/urfave/cli/v2"
)

// DescribeOutput reads back a written file for the summary and the ledger.
func DescribeOutput(s *storage.Storage, path string, bucketLength int, topWords []string) (report.OutputSummary, error) {
	stats, err := s.GetFileStats(path)
	if err != nil {
		return report.OutputSummary{}, err
	}
	data, err := s.ReadFile(path)
	if err != nil {
		return report.OutputSummary{}, err
	}
	return report.OutputSummary{
		FilePath:     path,
		BucketLength: bucketLength,
		Lines:        storage.CountLines(data),
		SizeBytes:    stats.SizeBytes,
		ContentHash:  storage.ContentHash(data),
		TopWords:     topWords,
	}, nil
}

// PrintSummary writes the YAML summary to stdout when --summary is set.
func PrintSummary(c *cli.Context, summary *report.Summary) error {
	if !c.Bool("summary") {
		return nil
	}
	data, err := report.Marshal(summary)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(c.App.Writer, string(data))
	return err
}
