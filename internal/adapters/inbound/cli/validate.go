package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mojolint/mojolint/internal/adapters/outbound/config"
	"github.com/mojolint/mojolint/internal/adapters/outbound/scanner"
	"github.com/mojolint/mojolint/internal/application"
	"github.com/mojolint/mojolint/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "validate <file1> [file2] ...",
		Short: "Check individual Mojo files against the style rules",
		Long:  "Run every detector against the given files. Exits non-zero when a file has error-severity violations, or any violation with --strict.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewScanService(scanner.New(), config.New())

			cfg, err := svc.LoadConfig(".", flagOverrides(cmd))
			if err != nil {
				return err
			}

			reports := make([]*domain.ComplianceReport, 0, len(args))
			for _, arg := range args {
				absPath, err := filepath.Abs(arg)
				if err != nil {
					return fmt.Errorf("resolving path: %w", err)
				}
				reports = append(reports, svc.CheckFile(absPath, cfg))
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(reports); err != nil {
					return err
				}
			}

			errors, violations := 0, 0
			for _, r := range reports {
				errors += r.CountBySeverity(domain.SeverityError)
				violations += len(r.Violations)
				if !jsonOutput {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: score %.0f, %d violation(s)\n", r.File, r.Score, len(r.Violations))
				}
			}

			if errors > 0 {
				return fmt.Errorf("validation failed: %d error(s) detected", errors)
			}
			if strict && violations > 0 {
				return fmt.Errorf("validation failed (strict): %d violation(s) detected", violations)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output reports as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on any violation, not just errors")

	return cmd
}
