package application

import (
	"fmt"
	"os"

	"github.com/mojolint/mojolint/internal/domain"
)

// FixService runs the fix pipeline for one file:
// read → backup → transform → write → validate → rollback or cleanup.
// The backup is durable before the transform touches the original, and no
// failed validation ever leaves the rewritten file in place.
type FixService struct {
	backup    domain.BackupStore
	validator domain.BuildValidator
}

func NewFixService(backup domain.BackupStore, validator domain.BuildValidator) *FixService {
	return &FixService{backup: backup, validator: validator}
}

// Fix plans the rewrites for path and, when opts.EnableAutoFix is set,
// applies them. On validation failure the original bytes are restored from
// the backup and the returned error tells the operator so.
func (s *FixService) Fix(path string, cfg domain.CheckConfig, opts domain.FixOptions) (*domain.FixResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	newText, applied := Transform(string(data), cfg)
	result := &domain.FixResult{File: path, Applied: applied}

	if len(applied) == 0 || !opts.EnableAutoFix {
		return result, nil
	}

	if !cfg.DisableBackup {
		backupPath, err := s.backup.Create(path)
		if err != nil {
			return nil, fmt.Errorf("creating backup: %w", err)
		}
		result.BackupPath = backupPath
	}

	if err := os.WriteFile(path, []byte(newText), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	if err := s.validator.Validate(path); err != nil {
		if cfg.DisableBackup {
			return result, fmt.Errorf("validation failed and backups are disabled; fix %s by hand: %w", path, err)
		}
		if restoreErr := s.backup.Restore(path); restoreErr != nil {
			return result, fmt.Errorf("validation failed and rollback failed (%v); restore %s manually from %s: %w",
				restoreErr, path, result.BackupPath, err)
		}
		result.RolledBack = true
		return result, fmt.Errorf("validation failed, original restored from backup: %w", err)
	}
	result.Validated = true

	if !cfg.DisableBackup && cfg.AutoCleanup && !cfg.KeepBackups {
		if err := s.backup.Remove(path); err != nil {
			return result, fmt.Errorf("removing backup: %w", err)
		}
		result.BackupPath = ""
	}

	return result, nil
}
