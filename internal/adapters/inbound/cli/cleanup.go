package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mojolint/mojolint/internal/adapters/outbound/backup"
	"github.com/mojolint/mojolint/internal/adapters/outbound/config"
	"github.com/mojolint/mojolint/internal/application"
)

func newCleanupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup [path]",
		Short: "Delete stale .backup files left by earlier fixes",
		Long:  "Walk a directory tree and remove backup files older than the retention window.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			flagOverrides(cmd)(&cfg)

			svc := application.NewCleanupService(backup.New())
			removed, err := svc.Cleanup(absPath, cfg)
			if err != nil {
				return fmt.Errorf("cleanup failed: %w", err)
			}

			for _, p := range removed {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d backup(s)\n", len(removed))
			return nil
		},
	}

	return cmd
}
