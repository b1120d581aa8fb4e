package cli

import (
	"github.com/mojolint/mojolint/internal/domain"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mojolint",
		Short:         "Style compliance scanner for Mojo codebases",
		Long:          "Mojolint scans Mojo source trees for style violations, scores each file's compliance, and applies safe auto-fixes with backup and build validation.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.Bool("show-observations", false, "Include observation-level findings in output")
	pf.Bool("check-docstring-code", false, "Also scan code embedded in docstrings")
	pf.Bool("disable-backup", false, "Skip backups when applying fixes")
	pf.Bool("keep-backups", false, "Never delete backups, even with auto-cleanup")
	pf.Bool("auto-cleanup", false, "Delete a fix's backup once validation passes")
	pf.Int("retention-days", domain.DefaultConfig().RetentionDays, "Days to keep backup files before cleanup sweeps them")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newFixCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newCleanupCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// flagOverrides maps the persistent flags the user actually set onto the
// loaded config, so .mojolint.yaml keeps its say over untouched flags.
func flagOverrides(cmd *cobra.Command) func(*domain.CheckConfig) {
	return func(cfg *domain.CheckConfig) {
		f := cmd.Flags()
		if f.Changed("show-observations") {
			cfg.ShowObservations, _ = f.GetBool("show-observations")
		}
		if f.Changed("check-docstring-code") {
			cfg.CheckDocstringCode, _ = f.GetBool("check-docstring-code")
		}
		if f.Changed("disable-backup") {
			cfg.DisableBackup, _ = f.GetBool("disable-backup")
		}
		if f.Changed("keep-backups") {
			cfg.KeepBackups, _ = f.GetBool("keep-backups")
		}
		if f.Changed("auto-cleanup") {
			cfg.AutoCleanup, _ = f.GetBool("auto-cleanup")
		}
		if f.Changed("retention-days") {
			cfg.RetentionDays, _ = f.GetInt("retention-days")
		}
	}
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
