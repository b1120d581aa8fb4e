package application_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mojolint/mojolint/internal/adapters/outbound/backup"
	"github.com/mojolint/mojolint/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanup_RemovesOnlyStaleBackups(t *testing.T) {
	root := t.TempDir()

	stale := filepath.Join(root, "old.mojo.backup")
	fresh := filepath.Join(root, "new.mojo.backup")
	source := filepath.Join(root, "old.mojo")
	for _, p := range []string{stale, fresh, source} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}
	old := time.Now().AddDate(0, 0, -30)
	require.NoError(t, os.Chtimes(stale, old, old))

	svc := application.NewCleanupService(backup.New())
	removed, err := svc.Cleanup(root, cfg())
	require.NoError(t, err)

	assert.Equal(t, []string{stale}, removed)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
	assert.FileExists(t, source, "only .backup files may be swept")
}

func TestCleanup_KeepBackupsWinsOverRetention(t *testing.T) {
	root := t.TempDir()

	stale := filepath.Join(root, "old.mojo.backup")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0644))
	old := time.Now().AddDate(0, 0, -30)
	require.NoError(t, os.Chtimes(stale, old, old))

	c := cfg()
	c.KeepBackups = true

	svc := application.NewCleanupService(backup.New())
	removed, err := svc.Cleanup(root, c)
	require.NoError(t, err)

	assert.Empty(t, removed)
	assert.FileExists(t, stale)
}
