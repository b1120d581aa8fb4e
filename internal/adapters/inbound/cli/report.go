package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mojolint/mojolint/internal/adapters/outbound/config"
	"github.com/mojolint/mojolint/internal/adapters/outbound/scanner"
	"github.com/mojolint/mojolint/internal/adapters/outbound/tui"
	"github.com/mojolint/mojolint/internal/application"
)

func newReportCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "report [path]",
		Short: "Render a detailed per-file violation report",
		Long:  "Scan a directory tree and print every file's violations in full, rather than the scan summary.",
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

			svc := application.NewScanService(scanner.New(), config.New())

			cfg, err := svc.LoadConfig(absPath, flagOverrides(cmd))
			if err != nil {
				return err
			}

			summary, err := svc.ScanDirectory(absPath, cfg)
			if err != nil {
				return fmt.Errorf("report failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary.Reports)
			}

			for _, r := range summary.Reports {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(r, cfg.ShowObservations))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d file(s), %d violation(s), average score %.1f\n",
				summary.Files, summary.Violations, summary.AverageScore)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output reports as JSON")

	return cmd
}
