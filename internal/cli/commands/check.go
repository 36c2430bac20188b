package commands

import (
	"fmt"
	"os"

	"github.com/colog-labs/colog/internal/clif"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse CLIF files and report syntax problems",
		Long: `Parse each file as CLIF and report lexical diagnostics and grammar
errors without translating anything. Exits non-zero if any file fails
to parse.`,
		Example: `  colog check ontologies/space.clif
  colog check ontologies/*.clif`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failures := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}

				result, err := clif.Parse(string(data))
				if err != nil {
					failures++
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, err)
					continue
				}
				if result == nil {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: empty file\n", path)
					continue
				}

				for _, diag := range result.Diagnostics {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, diag)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d axioms, %d imports)\n",
					path, len(result.Sentences), len(result.Imports))
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failures, len(args))
			}
			return nil
		},
	}
}
