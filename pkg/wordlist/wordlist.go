// Package wordlist imports a JSON word -> probability dictionary and
// rewrites it as a flat "WORD\tFREQUENCY" list.
package wordlist

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dtnitsch/wordlist-builder/models"
	"github.com/dtnitsch/wordlist-builder/pkg/normalize"
)

const (
	DefaultInput  = "words-english.json"
	DefaultOutput = "words-5-english.txt"

	// Scale turns an occurrence probability into occurrences per million words.
	Scale = 1_000_000

	precision = 5
)

var (
	// ErrNotObject is returned when the document is not a JSON object.
	ErrNotObject = errors.New("word list must be a JSON object")
	// ErrInvalidEncoding is returned when the document is not valid UTF-8.
	ErrInvalidEncoding = errors.New("word list is not valid UTF-8")
)

// List keeps entries in document order. Keys are unique.
type List struct {
	entries []models.Entry
	index   map[string]int
}

// NewList returns an empty list.
func NewList() *List {
	return &List{index: make(map[string]int)}
}

// Set adds or updates a word. An existing word keeps its position.
func (l *List) Set(word string, freq float64) {
	if i, ok := l.index[word]; ok {
		l.entries[i].Frequency = freq
		return
	}
	l.index[word] = len(l.entries)
	l.entries = append(l.entries, models.Entry{Word: word, Frequency: freq})
}

// Get returns the frequency of word.
func (l *List) Get(word string) (float64, bool) {
	i, ok := l.index[word]
	if !ok {
		return 0, false
	}
	return l.entries[i].Frequency, true
}

func (l *List) Len() int { return len(l.entries) }

// Entries returns the entries in document order.
func (l *List) Entries() []models.Entry {
	out := make([]models.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Decode reads a JSON object mapping words to probabilities.
// Go maps don't keep order, so the object is walked token by token.
//
// encoding/json replaces invalid UTF-8 with U+FFFD, so the raw bytes are
// checked first.
func Decode(r io.Reader) (*List, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	list := NewList()
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read word: %w", err)
		}
		word, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key %v", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read frequency of %q: %w", word, err)
		}
		freq, ok := tok.(float64)
		if !ok {
			return nil, fmt.Errorf("frequency of %q is not a number: %v", word, tok)
		}
		list.Set(word, freq)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, errors.New("unexpected data after word list")
		}
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	return list, nil
}

// FormatLine renders one output line, newline included.
func FormatLine(e models.Entry) string {
	return normalize.Upper(e.Word) + "\t" + models.FormatFrequency(e.Frequency*Scale, precision) + "\n"
}

// Write emits every entry of list in order and returns the line count.
func Write(w io.Writer, list *List) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for _, e := range list.entries {
		if _, err := bw.WriteString(FormatLine(e)); err != nil {
			return n, fmt.Errorf("failed to write %q: %w", e.Word, err)
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("failed to flush word list: %w", err)
	}
	return n, nil
}
