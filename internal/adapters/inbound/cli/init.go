package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mojolint/mojolint/internal/domain"
	"github.com/spf13/cobra"
)

const configFileName = ".mojolint.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .mojolint.yaml configuration file",
		Long:  "Create a .mojolint.yaml with the default check configuration, ready to edit.",
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

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig()), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .mojolint.yaml")

	return cmd
}

func generateConfig() string {
	cfg := domain.DefaultConfig()

	excludeSection := "exclude_dirs:\n"
	for _, d := range cfg.ExcludeDirs {
		excludeSection += fmt.Sprintf("  - %s\n", d)
	}

	var b strings.Builder
	b.WriteString("# mojolint configuration\n\n")
	fmt.Fprintf(&b, "show_observations: %t\n", cfg.ShowObservations)
	fmt.Fprintf(&b, "check_docstring_code: %t\n", cfg.CheckDocstringCode)
	fmt.Fprintf(&b, "disable_backup: %t\n", cfg.DisableBackup)
	fmt.Fprintf(&b, "keep_backups: %t\n", cfg.KeepBackups)
	fmt.Fprintf(&b, "auto_cleanup: %t\n", cfg.AutoCleanup)
	fmt.Fprintf(&b, "retention_days: %d\n\n", cfg.RetentionDays)
	b.WriteString(excludeSection)

	return b.String()
}
