package backup_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mojolint/mojolint/internal/adapters/outbound/backup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "code.mojo")
	original := []byte("fn main():\n    let x = 1\n")
	require.NoError(t, os.WriteFile(path, original, 0644))

	store := backup.New()
	backupPath, err := store.Create(path)
	require.NoError(t, err)
	assert.Equal(t, path+backup.Suffix, backupPath)

	// Clobber the original, then roll back.
	require.NoError(t, os.WriteFile(path, []byte("fn main():\n    var x = 1\n"), 0644))
	require.NoError(t, store.Restore(path))

	restored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, restored, "rollback must be byte-identical")
}

func TestCreate_MissingFile(t *testing.T) {
	_, err := backup.New().Create(filepath.Join(t.TempDir(), "absent.mojo"))
	assert.Error(t, err)
}

func TestRemove_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "code.mojo")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	store := backup.New()
	_, err := store.Create(path)
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))
	require.NoError(t, store.Remove(path), "removing a missing backup is not an error")
	assert.NoFileExists(t, path+backup.Suffix)
}

func TestSweep_RespectsRetention(t *testing.T) {
	dir := t.TempDir()
	oldBackup := filepath.Join(dir, "old.mojo.backup")
	newBackup := filepath.Join(dir, "new.mojo.backup")
	require.NoError(t, os.WriteFile(oldBackup, []byte("old"), 0644))
	require.NoError(t, os.WriteFile(newBackup, []byte("new"), 0644))

	stale := time.Now().AddDate(0, 0, -10)
	require.NoError(t, os.Chtimes(oldBackup, stale, stale))

	removed, err := backup.New().Sweep(dir, 7)
	require.NoError(t, err)

	assert.Equal(t, []string{oldBackup}, removed)
	assert.NoFileExists(t, oldBackup)
	assert.FileExists(t, newBackup)
}

func TestSweep_IgnoresNonBackupFiles(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "keep.mojo")
	require.NoError(t, os.WriteFile(source, []byte("fn f():\n    pass\n"), 0644))
	stale := time.Now().AddDate(0, 0, -30)
	require.NoError(t, os.Chtimes(source, stale, stale))

	removed, err := backup.New().Sweep(dir, 7)
	require.NoError(t, err)

	assert.Empty(t, removed)
	assert.FileExists(t, source)
}
