package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mojolint/mojolint/internal/adapters/outbound/config"
	"github.com/mojolint/mojolint/internal/adapters/outbound/gitinfo"
	"github.com/mojolint/mojolint/internal/adapters/outbound/history"
	"github.com/mojolint/mojolint/internal/adapters/outbound/scanner"
	"github.com/mojolint/mojolint/internal/adapters/outbound/tui"
	"github.com/mojolint/mojolint/internal/application"
	"github.com/mojolint/mojolint/internal/domain"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var (
		jsonOutput  bool
		ciMode      bool
		minScore    float64
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a Mojo source tree for style violations",
		Long:  "Walk a directory tree, check every Mojo file against the style rules, and report per-file compliance scores.",
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
				return fmt.Errorf("scan failed: %w", err)
			}

			// Attach git commit hash if available
			gi := gitinfo.New()
			if hash, err := gi.CommitHash(absPath); err == nil {
				summary.CommitHash = hash
			}

			// Save to history
			hist := history.New()
			entry := domain.ScanEntry{
				Timestamp:    time.Now().Format(time.RFC3339),
				CommitHash:   summary.CommitHash,
				Files:        summary.Files,
				Violations:   summary.Violations,
				AverageScore: summary.AverageScore,
			}
			_ = hist.Save(absPath, entry) // best-effort

			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(summary); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(summary, cfg.ShowObservations))
			}

			if ciMode && summary.AverageScore < minScore {
				return fmt.Errorf("average score %.1f is below minimum %.1f", summary.AverageScore, minScore)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output summary as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if average score is below --min")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Minimum average score for CI mode")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show scan history instead of scanning")

	return cmd
}
