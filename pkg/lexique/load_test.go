package lexique

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		freq float64
		want float64
	}{
		{0, 1 + math.Tanh(-2)},
		{1, 1 + math.Tanh(1)},
		{MinFrequency, 1 + math.Tanh(MinFrequency*3-2)},
		{1000, 2},
	}

	for _, tt := range tests {
		if got := Score(tt.freq); !approxEqual(got, tt.want) {
			t.Errorf("Score(%v) = %v, want %v", tt.freq, got, tt.want)
		}
	}
}

func TestLoad_SortsAndScores(t *testing.T) {
	loaded, err := Load(strings.NewReader("PORTE\t2.500\nAVION\t0.023\n\nECOLE\t3.000\n"), 5)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !loaded.Clean() {
		t.Errorf("Clean() = false, skipped %v, stopped at %d", loaded.Skipped, loaded.StoppedAt)
	}
	if loaded.Rows != 3 {
		t.Errorf("Rows = %d, want 3", loaded.Rows)
	}

	want := []string{"AVION", "ECOLE", "PORTE"}
	if len(loaded.Words) != len(want) {
		t.Fatalf("got %d words, want %d", len(loaded.Words), len(want))
	}
	for i, w := range want {
		if loaded.Words[i].Word != w {
			t.Errorf("Words[%d] = %s, want %s", i, loaded.Words[i].Word, w)
		}
	}
	if got := loaded.Words[1].Score; !approxEqual(got, Score(3.0)) {
		t.Errorf("ECOLE score = %v, want %v", got, Score(3.0))
	}
}

func TestLoad_SkipsWordsLongerInBytes(t *testing.T) {
	loaded, err := Load(strings.NewReader("CHAT\t1.000\nCŒUR\t2.000\nGARE\t0.500\n"), 4)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(loaded.Words) != 2 {
		t.Errorf("got %d words, want 2", len(loaded.Words))
	}
	if len(loaded.Skipped) != 1 {
		t.Fatalf("got %d skipped rows, want 1", len(loaded.Skipped))
	}
	skipped := loaded.Skipped[0]
	if skipped.Line != 2 || skipped.Word != "CŒUR" || skipped.Reason != "5 bytes, want 4" {
		t.Errorf("skipped = %+v", skipped)
	}
	if loaded.Clean() {
		t.Error("Clean() = true with a skipped row")
	}
}

func TestLoad_StopsAtUnreadableRow(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		stoppedAt int
		words     int
	}{
		{"nan frequency", "POMME\t1.000\nPOIRE\tnan\nPRUNE\t2.000\n", 2, 1},
		{"inf frequency", "POMME\tinf\n", 1, 0},
		{"missing frequency", "POMME\t1.000\nPOIRE\n", 2, 1},
		{"extra field", "POMME 1.000 2.000\n", 1, 0},
		{"text frequency", "POMME\tbeaucoup\n", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loaded, err := Load(strings.NewReader(tt.input), 5)
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if loaded.StoppedAt != tt.stoppedAt {
				t.Errorf("StoppedAt = %d, want %d", loaded.StoppedAt, tt.stoppedAt)
			}
			if loaded.StopReason == "" {
				t.Error("StopReason is empty")
			}
			if len(loaded.Words) != tt.words {
				t.Errorf("got %d words, want %d", len(loaded.Words), tt.words)
			}
		})
	}
}

func TestSplitThenLoad_ReportsWhatTheGameDrops(t *testing.T) {
	buckets := split(t, header+row("chat", "1.0")+row("cœur", "2.0")+row("straße", "0.3")+row("maison", "4.0"))

	tests := []struct {
		bucket  *Bucket
		kept    []string
		skipped []string
	}{
		{buckets[0], []string{"CHAT"}, []string{"CŒUR"}},
		{buckets[2], []string{"MAISON"}, []string{"STRASSE"}},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		if _, err := tt.bucket.WriteTo(&buf); err != nil {
			t.Fatalf("WriteTo() failed: %v", err)
		}
		loaded, err := Load(&buf, tt.bucket.Length)
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}

		if len(loaded.Words) != len(tt.kept) || loaded.Words[0].Word != tt.kept[0] {
			t.Errorf("length %d: kept %+v, want %v", tt.bucket.Length, loaded.Words, tt.kept)
		}
		if len(loaded.Skipped) != len(tt.skipped) || loaded.Skipped[0].Word != tt.skipped[0] {
			t.Errorf("length %d: skipped %+v, want %v", tt.bucket.Length, loaded.Skipped, tt.skipped)
		}
	}
}
