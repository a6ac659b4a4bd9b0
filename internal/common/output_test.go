package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/wordlist-builder/pkg/storage"
)

func TestDescribeOutput(t *testing.T) {
	s := &storage.Storage{}
	path := filepath.Join(t.TempDir(), "words-4.txt")
	content := "CHAT\t1.000\nGARE\t0.500\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	desc, err := DescribeOutput(s, path, 4, []string{"CHAT:1.000"})
	if err != nil {
		t.Fatalf("DescribeOutput() failed: %v", err)
	}
	if desc.Lines != 2 {
		t.Errorf("Lines = %d, want 2", desc.Lines)
	}
	if desc.SizeBytes != int64(len(content)) {
		t.Errorf("SizeBytes = %d, want %d", desc.SizeBytes, len(content))
	}
	if desc.ContentHash != storage.ContentHash([]byte(content)) {
		t.Errorf("ContentHash = %s", desc.ContentHash)
	}
	if desc.BucketLength != 4 || desc.FilePath != path {
		t.Errorf("desc = %+v", desc)
	}
}

func TestDescribeOutput_MissingFile(t *testing.T) {
	if _, err := DescribeOutput(&storage.Storage{}, filepath.Join(t.TempDir(), "nope.txt"), 0, nil); err == nil {
		t.Error("DescribeOutput() expected error for missing file")
	}
}
