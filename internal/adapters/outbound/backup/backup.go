// Package backup keeps sibling copies of files the fixer is about to
// rewrite. A backup of path lives at path.backup; it must be durable before
// any transform touches the original, so writes are synced to disk.
package backup

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Suffix is appended to the original file name to form the backup name.
const Suffix = ".backup"

// FileStore implements domain.BackupStore with plain sibling files.
type FileStore struct{}

func New() *FileStore {
	return &FileStore{}
}

// Create copies path's bytes to path.backup and syncs the copy before
// returning, so a crash mid-transform can always roll back.
func (s *FileStore) Create(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	backupPath := path + Suffix
	f, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("creating backup: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("writing backup: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return "", fmt.Errorf("syncing backup: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing backup: %w", err)
	}

	return backupPath, nil
}

// Restore copies path.backup's bytes back over path.
func (s *FileStore) Restore(path string) error {
	data, err := os.ReadFile(path + Suffix)
	if err != nil {
		return fmt.Errorf("reading backup for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("restoring %s: %w", path, err)
	}
	return nil
}

// Remove deletes path's backup. Removing a backup that does not exist is not
// an error.
func (s *FileStore) Remove(path string) error {
	err := os.Remove(path + Suffix)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Sweep deletes backups under root whose modification time is older than
// retentionDays, returning the paths removed. A retention of zero removes
// every backup found.
func (s *FileStore) Sweep(root string, retentionDays int) ([]string, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	var removed []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), Suffix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().After(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return err
		}
		removed = append(removed, path)
		return nil
	})
	if err != nil {
		return removed, err
	}
	return removed, nil
}
