package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mojolint/mojolint/internal/adapters/outbound/backup"
	"github.com/mojolint/mojolint/internal/adapters/outbound/config"
	"github.com/mojolint/mojolint/internal/adapters/outbound/toolchain"
	"github.com/mojolint/mojolint/internal/application"
	"github.com/mojolint/mojolint/internal/domain"
)

func newFixCmd() *cobra.Command {
	var enableAutoFix bool

	cmd := &cobra.Command{
		Use:   "fix <file>",
		Short: "Plan safe rewrites for a Mojo file and optionally apply them",
		Long:  "Plan the safe rewrites for one file. With --enable-auto-fix the file is backed up, rewritten, and validated with the Mojo compiler; a failed build rolls the file back.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.New().Load(filepath.Dir(absPath))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			flagOverrides(cmd)(&cfg)

			svc := application.NewFixService(backup.New(), toolchain.New())

			result, err := svc.Fix(absPath, cfg, domain.FixOptions{EnableAutoFix: enableAutoFix})
			if err != nil {
				if result != nil {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					_ = enc.Encode(result)
				}
				return fmt.Errorf("fix failed: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().BoolVar(&enableAutoFix, "enable-auto-fix", false, "Apply the planned rewrites instead of only listing them")

	return cmd
}
