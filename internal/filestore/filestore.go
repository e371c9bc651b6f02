// Package filestore owns the lifecycle of per-job working files: uploaded
// inputs, formatted outputs, and their eventual cleanup. The engine itself
// only ever sees plain paths.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jcleary/toctidy/internal/rewrite"
)

// Store keeps each job's files in its own directory under root so cleanup
// is a single directory removal.
type Store struct {
	root string
}

// New creates (if needed) the working directory. An empty root places it
// under the system temp directory.
func New(root string) (*Store, error) {
	if root == "" {
		root = filepath.Join(os.TempDir(), "toctidy")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	return &Store{root: root}, nil
}

// Root returns the working directory path.
func (s *Store) Root() string {
	return s.root
}

// SaveInput writes an uploaded document into the job's directory and returns
// its path.
func (s *Store) SaveInput(jobID, filename string, data []byte) (string, error) {
	dir := filepath.Join(s.root, jobID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create job dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save input: %w", err)
	}
	return path, nil
}

// OutputPath allocates the destination path for a job's formatted document.
// The file itself is created by the rewrite pass.
func (s *Store) OutputPath(jobID, filename string) string {
	return filepath.Join(s.root, jobID, rewrite.OutputName(filename))
}

// Remove deletes all files belonging to a job.
func (s *Store) Remove(jobID string) error {
	return os.RemoveAll(filepath.Join(s.root, jobID))
}

// Sweep deletes job directories that have not been touched within ttl and
// returns how many were removed.
func (s *Store) Sweep(ttl time.Duration) int {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return 0
	}
	removed := 0
	cutoff := time.Now().Add(-ttl)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if os.RemoveAll(filepath.Join(s.root, e.Name())) == nil {
				removed++
			}
		}
	}
	return removed
}
