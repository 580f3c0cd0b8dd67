package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore writes images under <publicDir>/images/<kind>/, the same tree
// the HTTP server exposes as static files.
type LocalStore struct {
	publicDir string
}

// NewLocalStore creates a local image store rooted at publicDir
func NewLocalStore(publicDir string) (*LocalStore, error) {
	for _, kind := range []string{KindPets, KindUsers} {
		dir := filepath.Join(publicDir, "images", kind)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create image dir %s: %w", dir, err)
		}
	}
	return &LocalStore{publicDir: publicDir}, nil
}

// Save writes the blob to disk and returns its generated filename
func (s *LocalStore) Save(_ context.Context, kind, ext, _ string, r io.Reader) (string, error) {
	filename := uuid.New().String() + ext
	path := filepath.Join(s.publicDir, "images", kind, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return filename, nil
}
