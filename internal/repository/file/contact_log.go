// Package file implements the submission store as a single JSON array file.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go-portfolio-backend/internal/domain"
)

// submissionStore persists the rolling contact log at a fixed path. The file
// and its directory are created lazily on first write.
type submissionStore struct {
	path string
}

// NewSubmissionStore creates a file-backed submission store
func NewSubmissionStore(path string) domain.SubmissionStore {
	return &submissionStore{path: path}
}

// ReadAll loads the stored entries. A missing or malformed file reads as an
// empty log so a corrupted analytics file can never block submissions.
func (s *submissionStore) ReadAll(ctx context.Context) ([]domain.ContactLogEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []domain.ContactLogEntry{}, nil
	}

	var entries []domain.ContactLogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return []domain.ContactLogEntry{}, nil
	}
	return entries, nil
}

// WriteAll replaces the store contents with the given entries
func (s *submissionStore) WriteAll(ctx context.Context, entries []domain.ContactLogEntry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode contact log: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write contact log: %w", err)
	}
	return nil
}
