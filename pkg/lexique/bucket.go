package lexique

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dtnitsch/wordlist-builder/models"
)

// Bucket holds the words of a single length, in first-seen order.
type Bucket struct {
	Length int

	words []string
	freqs map[string]float64
}

// NewBucket returns an empty bucket for words of the given length.
func NewBucket(length int) *Bucket {
	return &Bucket{Length: length, freqs: make(map[string]float64)}
}

// Add folds a new observation of word into the bucket.
//
// The stored value is averaged against the last stored value only, not the
// full history, so three observations a, b, c give ((a+b)/2+c)/2. The
// result never drops below MinFrequency.
func (b *Bucket) Add(word string, freq float64) float64 {
	prev, ok := b.freqs[word]
	if !ok {
		prev = freq
		b.words = append(b.words, word)
	}
	v := max((freq+prev)/2, MinFrequency)
	b.freqs[word] = v
	return v
}

// Get returns the stored frequency of word.
func (b *Bucket) Get(word string) (float64, bool) {
	v, ok := b.freqs[word]
	return v, ok
}

func (b *Bucket) Len() int { return len(b.words) }

// Words returns the words in the order they were first added.
func (b *Bucket) Words() []string {
	out := make([]string, len(b.words))
	copy(out, b.words)
	return out
}

// Entries returns word/frequency pairs in first-seen order.
func (b *Bucket) Entries() []models.Entry {
	out := make([]models.Entry, 0, len(b.words))
	for _, w := range b.words {
		out = append(out, models.Entry{Word: w, Frequency: b.freqs[w]})
	}
	return out
}

// WriteTo writes "WORD\tFREQ" lines with three decimals.
func (b *Bucket) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, word := range b.words {
		line := word + "\t" + models.FormatFrequency(b.freqs[word], 3) + "\n"
		written, err := bw.WriteString(line)
		n += int64(written)
		if err != nil {
			return n, fmt.Errorf("failed to write %q: %w", word, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("failed to flush bucket %d: %w", b.Length, err)
	}
	return n, nil
}
