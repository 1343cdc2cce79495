package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// FileStore keeps each document in <dir>/<name>.json
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed document store rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the directory holding the documents
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Read returns the stored document or ErrDocumentNotFound
func (s *FileStore) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write replaces the document atomically: the data is written to a temporary file
// in the same directory, synced, then renamed over the target.
func (s *FileStore) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := renameio.WriteFile(s.path(name), data, 0o644, renameio.WithTempDir(s.dir)); err != nil {
		return fmt.Errorf("failed to replace document: %w", err)
	}

	return nil
}
