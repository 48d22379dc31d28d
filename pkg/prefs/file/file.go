// Package file is the file-backed preference store: one JSON file per
// key under a root directory.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Store keeps one JSON file per key.
type Store struct {
	root   string
	logger *slog.Logger
}

// NewStore creates a file preference store rooted at the given
// directory. A "file://" prefix is stripped for URL-style configs.
func NewStore(root string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		root:   strings.Replace(root, "file://", "", 1),
		logger: logger,
	}
}

func (s *Store) path(key string) string {
	// Keys are flat; path separators would escape the root.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")

	return filepath.Join(s.root, safe+".json")
}

func (s *Store) Get(ctx context.Context, key string, v any) bool {
	payload, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.WarnContext(ctx, "failed to read preference", "key", key, "error", err)
		}

		return false
	}

	if err := json.Unmarshal(payload, v); err != nil {
		// A corrupt value reads as absent so callers fall back to
		// defaults instead of failing.
		s.logger.WarnContext(ctx, "discarding corrupt preference", "key", key, "error", err)

		return false
	}

	return true
}

func (s *Store) Set(_ context.Context, key string, v any) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("failed to create preference directory: %w", err)
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode preference %s: %w", key, err)
	}

	if err := os.WriteFile(s.path(key), payload, 0o644); err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete preference %s: %w", key, err)
	}

	return nil
}

// Close is a no-op for file stores.
func (s *Store) Close() error {
	return nil
}
