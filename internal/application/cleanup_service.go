package application

import (
	"fmt"

	"github.com/mojolint/mojolint/internal/domain"
)

// CleanupService removes stale backup files left behind by earlier fix runs.
type CleanupService struct {
	backup domain.BackupStore
}

func NewCleanupService(backup domain.BackupStore) *CleanupService {
	return &CleanupService{backup: backup}
}

// Cleanup sweeps backups under root older than the configured retention
// window and returns the removed paths. KeepBackups wins over the retention
// window, the same precedence the fix pipeline applies.
func (s *CleanupService) Cleanup(root string, cfg domain.CheckConfig) ([]string, error) {
	if cfg.KeepBackups {
		return nil, nil
	}
	removed, err := s.backup.Sweep(root, cfg.RetentionDays)
	if err != nil {
		return removed, fmt.Errorf("sweeping backups: %w", err)
	}
	return removed, nil
}
