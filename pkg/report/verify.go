package report

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Verification describes how the game would load a set of bucket files.
type Verification struct {
	GeneratedAt string      `yaml:"generated_at"`
	Directory   string      `yaml:"directory"`
	Clean       bool        `yaml:"clean"`
	Files       []FileCheck `yaml:"files"`
}

// FileCheck is the load result of one bucket file.
type FileCheck struct {
	FilePath     string       `yaml:"file_path"`
	BucketLength int          `yaml:"bucket_length"`
	Missing      bool         `yaml:"missing,omitempty"`
	Rows         int          `yaml:"rows"`
	Kept         int          `yaml:"kept"`
	TopScores    []string     `yaml:"top_scores,omitempty"`
	Skipped      []SkippedRow `yaml:"skipped,omitempty"`
	StoppedAt    int          `yaml:"stopped_at_line,omitempty"`
	StopReason   string       `yaml:"stop_reason,omitempty"`
}

type SkippedRow struct {
	Line   int    `yaml:"line"`
	Word   string `yaml:"word"`
	Reason string `yaml:"reason"`
}

// MarshalVerification renders the verification as YAML.
func MarshalVerification(v *Verification) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal verification: %w", err)
	}
	return data, nil
}
