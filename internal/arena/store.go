package arena

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultFileName is the arena file name inside the data directory.
const DefaultFileName = "arenas.json"

// Store persists the ordered arena collection.
type Store interface {
	// Load returns records in stored order. No stored data is not an error.
	Load(ctx context.Context) ([]Record, error)
	// Save replaces the stored collection. Readers never observe a partial write.
	Save(ctx context.Context, records []Record) error
}

// FileStore keeps arenas in a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates the store and makes sure the file exists.
// Failing to create the file is logged and otherwise ignored: Load then
// yields zero arenas and Save retries the write.
func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path}
	if err := s.ensureFile(); err != nil {
		slog.Warn("failed to generate arena file", "path", path, "error", err)
	}
	return s
}

// Path returns the arena file location.
func (s *FileStore) Path() string { return s.path }

// ensureFile creates an empty arena file if none exists.
func (s *FileStore) ensureFile() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create arena directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("create arena file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close arena file: %w", err)
	}

	slog.Info("generated arena file", "path", s.path)
	return nil
}

// Load reads the arena file. A missing, empty or "null" file yields no records.
func (s *FileStore) Load(_ context.Context) ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading arena file %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing arena file %s: %w", s.path, err)
	}
	return records, nil
}

// Save writes records to a temp file next to the target and renames it over
// the target, so the file is either fully old or fully new.
func (s *FileStore) Save(_ context.Context, records []Record) error {
	if records == nil {
		records = []Record{}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create arena directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp arena file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("chmod temp arena file: %w", err)
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write arena file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("sync arena file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close arena file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace arena file: %w", err)
	}
	return nil
}
