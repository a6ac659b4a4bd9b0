// Package report builds the YAML run summary printed after a pipeline run.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/dtnitsch/wordlist-builder/models"
	"gopkg.in/yaml.v3"
)

// Summary gives an overview of a run without reading the output files.
type Summary struct {
	GeneratedAt       string          `yaml:"generated_at"`
	Pipeline          string          `yaml:"pipeline"`
	RunID             int64           `yaml:"run_id,omitempty"`
	RunUUID           string          `yaml:"run_uuid,omitempty"`
	InputPath         string          `yaml:"input_path"`
	InputHash         string          `yaml:"input_hash"`
	EntryCount        int             `yaml:"entry_count"`
	TotalTimeSeconds  float64         `yaml:"total_time_seconds"`
	UnchangedSinceRun int64           `yaml:"unchanged_since_run,omitempty"`
	Outputs           []OutputSummary `yaml:"outputs"`
}

// OutputSummary describes one written file.
type OutputSummary struct {
	FilePath     string   `yaml:"file_path"`
	BucketLength int      `yaml:"bucket_length,omitempty"`
	Lines        int      `yaml:"lines"`
	SizeBytes    int64    `yaml:"size_bytes"`
	ContentHash  string   `yaml:"content_hash"`
	TopWords     []string `yaml:"top_words,omitempty"`
}

// NewSummary starts a summary stamped with the current time.
func NewSummary(pipeline, inputPath, inputHash string) *Summary {
	return &Summary{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Pipeline:    pipeline,
		InputPath:   inputPath,
		InputHash:   inputHash,
	}
}

// TopWords returns the n most frequent entries formatted as "WORD:FREQ".
// Ties are broken alphabetically so the result is stable.
func TopWords(entries []models.Entry, n int, precision int) []string {
	ss := make([]models.Entry, len(entries))
	copy(ss, entries)

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Frequency != ss[j].Frequency {
			return ss[i].Frequency > ss[j].Frequency
		}
		return ss[i].Word < ss[j].Word
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	words := make([]string, limit)
	for i := 0; i < limit; i++ {
		words[i] = fmt.Sprintf("%s:%s", ss[i].Word, models.FormatFrequency(ss[i].Frequency, precision))
	}
	return words
}

// Marshal renders the summary as YAML.
func Marshal(s *Summary) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	return data, nil
}
