package file_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file reads as empty", func(t *testing.T) {
		store := file.NewSubmissionStore(filepath.Join(t.TempDir(), "logs", "contacts.json"))
		entries, err := store.ReadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("malformed file reads as empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		store := file.NewSubmissionStore(path)
		entries, err := store.ReadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestWriteAll(t *testing.T) {
	ctx := context.Background()

	t.Run("creates directory lazily and round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "contacts.json")
		store := file.NewSubmissionStore(path)

		in := []domain.ContactLogEntry{
			{
				Timestamp:     "2026-01-02T15:04:05Z",
				Name:          "Ada",
				Email:         "ada@example.com",
				Subject:       "Hello",
				MessageLength: 42,
				IP:            domain.RedactedIP,
			},
		}
		require.NoError(t, store.WriteAll(ctx, in))

		out, err := store.ReadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("replaces previous contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.json")
		store := file.NewSubmissionStore(path)

		require.NoError(t, store.WriteAll(ctx, []domain.ContactLogEntry{{Name: "old"}}))
		require.NoError(t, store.WriteAll(ctx, []domain.ContactLogEntry{{Name: "a"}, {Name: "b"}}))

		out, err := store.ReadAll(ctx)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "a", out[0].Name)
	})

	t.Run("file is valid indented JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.json")
		store := file.NewSubmissionStore(path)
		require.NoError(t, store.WriteAll(ctx, []domain.ContactLogEntry{{Name: "Ada"}}))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		var decoded []map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Contains(t, string(raw), "\n  ")
	})
}
