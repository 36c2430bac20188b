package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/colog-labs/colog/internal/cli/config"
	"github.com/colog-labs/colog/internal/reasoner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewProveCommand creates the prove command.
func NewProveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prove <file>",
		Short: "Run the configured reasoner battery on an ontology",
		Long: `Translate an ontology and its import closure into the input language
of every configured reasoner, run all reasoners concurrently, and
report each verdict. Axioms are normalized to function-free prenex CNF
before translation.

Reasoners are configured in colog.yaml, for example:

  reasoners:
    - name: prover9
      kind: prover
      exec: prover9
      args: ["-f", "{input}"]
      timeout: 60s
      format: ladr
    - name: vampire
      kind: prover
      exec: vampire
      args: ["{input}"]
      timeout: 60s
      format: tptp`,
		Example: `  colog prove ontologies/space.clif`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetCurrentConfig()
			logger := config.GetLogger(cmd.Context())

			if len(cfg.Reasoners) == 0 {
				return fmt.Errorf("no reasoners configured; add a reasoners section to colog.yaml")
			}

			formats := map[string]bool{}
			for _, def := range cfg.Reasoners {
				formats[def.Format] = true
			}

			if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}

			inputs := map[string]string{}
			for format := range formats {
				text, err := translateFile(args[0], format, true, true, cfg, logger)
				if err != nil {
					return err
				}
				dest := translationPath(cfg.OutputDir, args[0], format)
				if err := os.WriteFile(dest, []byte(text), 0o644); err != nil {
					return err
				}
				inputs[format] = dest
			}

			run, err := reasoner.NewRunner(cfg.Reasoners, cfg.OutputDir, logger).
				Execute(cmd.Context(), inputs)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Reasoner", "Kind", "Status", "Duration", "Output"})

			var verdict reasoner.Status
			for _, res := range run.Results {
				status := res.Status.String()
				if res.Err != nil {
					status = fmt.Sprintf("ERROR (%v)", res.Err)
				}
				t.AppendRow(table.Row{
					res.Reasoner, string(res.Kind), status,
					res.Duration.Round(time.Millisecond), res.OutputFile,
				})
				if res.Err == nil && res.Status.Definitive() && !verdict.Definitive() {
					verdict = res.Status
				}
			}
			t.Render()

			if verdict.Definitive() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nVerdict: %s\n", verdict)
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nVerdict: inconclusive")
			}
			return nil
		},
	}
}
