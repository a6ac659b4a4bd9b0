package storage

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type Storage struct{}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
}

// File is a buffered output file. Close flushes before closing.
type File struct {
	*bufio.Writer
	f    *os.File
	path string
}

// Path returns the file's path.
func (f *File) Path() string {
	return f.path
}

func (f *File) Close() error {
	if err := f.Flush(); err != nil {
		_ = f.f.Close() // Flush error is the one worth reporting
		return fmt.Errorf("error flushing file %s: %w", f.path, err)
	}
	if err := f.f.Close(); err != nil {
		return fmt.Errorf("error closing file %s: %w", f.path, err)
	}
	return nil
}

// Create truncates or creates filePath, creating parent directories.
func (s *Storage) Create(filePath string) (*File, error) {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("error creating directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("error creating file: %w", err)
	}
	return &File{Writer: bufio.NewWriterSize(f, 256*1024), f: f, path: filePath}, nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

func (s *Storage) HasFile(fn string) bool {
	return fileExists(fn)
}

// GetFileStats returns metadata about a file using os.Stat (no I/O overhead).
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
	}, nil
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashFile streams a file through SHA256.
func (s *Storage) HashFile(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("error hashing file %s: %w", filePath, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CountLines counts newline-terminated lines in data.
func CountLines(data []byte) int {
	return bytes.Count(data, []byte{'\n'})
}
