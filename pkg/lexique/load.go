package lexique

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// The game only ships word files for these lengths.
const (
	GameMinLength = 4
	GameMaxLength = 12
)

// GameWord is a bucket row as the game reads it back.
type GameWord struct {
	Word      string
	Frequency float64
	Score     float64
}

// SkippedRow is a row the game reads but does not keep.
type SkippedRow struct {
	Line   int
	Word   string
	Reason string
}

// Loaded is the result of reading a bucket file the way the game does.
type Loaded struct {
	Length int
	Rows   int
	// Words is sorted byte-wise, which is the order the game searches in.
	Words   []GameWord
	Skipped []SkippedRow
	// StoppedAt is the line the game stops reading at, 0 if it reads to the end.
	StoppedAt  int
	StopReason string
}

// Score is the weight the game gives a word of the given frequency.
func Score(freq float64) float64 {
	return math.Tanh(freq*3-2) + 1
}

// Load reads whitespace-separated word and frequency pairs and keeps the
// words whose length in bytes is length. A word whose normalized form still
// has non-ASCII letters (Œ, Æ) or grew during upper-casing (ß to SS) is
// skipped. The game's number parser doesn't accept nan or inf, and reading
// stops at the first row it can't parse.
func Load(r io.Reader, length int) (*Loaded, error) {
	loaded := &Loaded{Length: length}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), scannerBufSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		loaded.Rows++

		if len(fields) != 2 {
			loaded.StoppedAt = lineNo
			loaded.StopReason = fmt.Sprintf("%d fields, want word and frequency", len(fields))
			break
		}
		word := fields[0]
		freq, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || math.IsNaN(freq) || math.IsInf(freq, 0) {
			loaded.StoppedAt = lineNo
			loaded.StopReason = fmt.Sprintf("unreadable frequency %q", fields[1])
			break
		}

		if len(word) != length {
			loaded.Skipped = append(loaded.Skipped, SkippedRow{
				Line:   lineNo,
				Word:   word,
				Reason: fmt.Sprintf("%d bytes, want %d", len(word), length),
			})
			continue
		}
		loaded.Words = append(loaded.Words, GameWord{Word: word, Frequency: freq, Score: Score(freq)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word file: %w", err)
	}

	sort.Slice(loaded.Words, func(i, j int) bool {
		return loaded.Words[i].Word < loaded.Words[j].Word
	})
	return loaded, nil
}

// Clean reports whether the game keeps every row.
func (l *Loaded) Clean() bool {
	return len(l.Skipped) == 0 && l.StoppedAt == 0
}
