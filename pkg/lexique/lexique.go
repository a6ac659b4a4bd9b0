// Package lexique splits a tab-separated lexical database into one
// word-frequency list per word length.
package lexique

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/wordlist-builder/pkg/normalize"
)

const (
	DefaultInput         = "Lexique.tsv"
	DefaultOutputPattern = "words-%d.txt"
	DefaultStartLength   = 4
	DefaultEndLength     = 12

	WordField      = 0
	FrequencyField = 6

	// MinFrequency is the floor applied after every averaging step.
	MinFrequency = 0.005

	scannerBufSize = 1024 * 1024
)

var (
	ErrMissingField    = errors.New("missing frequency field")
	ErrInvalidRange    = errors.New("invalid length range")
	ErrInvalidPattern  = errors.New("output pattern must contain exactly one %d")
	ErrInvalidEncoding = errors.New("invalid UTF-8")
)

// Splitter buckets words whose length falls in [Start, End].
type Splitter struct {
	Start int
	End   int
}

// NewSplitter validates the length range.
func NewSplitter(start, end int) (*Splitter, error) {
	if start < 1 || end < start {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, start, end)
	}
	return &Splitter{Start: start, End: end}, nil
}

// Eligible reports whether a raw candidate word is kept.
func (s *Splitter) Eligible(word string) bool {
	if !normalize.IsAlpha(word) {
		return false
	}
	n := normalize.Length(word)
	return s.Start <= n && n <= s.End
}

// Split reads the whole database and returns one bucket per length,
// index 0 holding words of length Start.
//
// The header line is skipped. Rows whose first field isn't an eligible word
// are dropped silently, so a short row only fails if its word is kept.
// Any line that isn't valid UTF-8, header included, aborts the split.
func (s *Splitter) Split(r io.Reader) ([]*Bucket, error) {
	buckets := make([]*Bucket, s.End-s.Start+1)
	for i := range buckets {
		buckets[i] = NewBucket(s.Start + i)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), scannerBufSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrInvalidEncoding)
		}
		if lineNo == 1 {
			continue
		}

		fields := strings.Split(line, "\t")
		candidate := fields[WordField]
		if !s.Eligible(candidate) {
			continue
		}
		if len(fields) <= FrequencyField {
			return nil, fmt.Errorf("line %d: %w (%d fields)", lineNo, ErrMissingField, len(fields))
		}
		freq, err := strconv.ParseFloat(strings.TrimSpace(fields[FrequencyField]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid frequency %q: %w", lineNo, fields[FrequencyField], err)
		}

		bucket := buckets[normalize.Length(candidate)-s.Start]
		bucket.Add(normalize.Word(candidate), freq)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lexical database: %w", err)
	}

	return buckets, nil
}

// ValidatePattern checks an output file name pattern.
func ValidatePattern(pattern string) error {
	if strings.Count(pattern, "%d") != 1 || strings.Count(pattern, "%") != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}
	return nil
}

// OutputPath returns the file a bucket of the given length is written to.
func OutputPath(dir, pattern string, length int) string {
	return filepath.Join(dir, fmt.Sprintf(pattern, length))
}
