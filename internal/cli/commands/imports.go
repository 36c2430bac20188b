package commands

import (
	"fmt"
	"strings"

	"github.com/colog-labs/colog/internal/cli/config"
	"github.com/colog-labs/colog/internal/logical"
	"github.com/colog-labs/colog/internal/ontology"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewImportsCommand creates the imports command.
func NewImportsCommand() *cobra.Command {
	var levels bool

	cmd := &cobra.Command{
		Use:   "imports <file>",
		Short: "Show the import closure of an ontology",
		Long: `Resolve the transitive cl-imports closure of an ontology and print
it in dependency order. Import URIs are mapped to local files using the
configured sub and base settings.`,
		Example: `  colog imports ontologies/root.clif
  colog imports --levels ontologies/root.clif`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetCurrentConfig()
			logger := config.GetLogger(cmd.Context())

			factory := logical.NewFactory()
			loader := ontology.NewLoader(factory, &ontology.Resolver{Sub: cfg.Sub, Base: cfg.Base}, logger)

			root, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			if root == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: empty file\n", args[0])
				return nil
			}

			graph, err := loader.LoadImports(root)
			if err != nil {
				return err
			}
			if cyclic, cycle := graph.HasCycle(); cyclic {
				return fmt.Errorf("import cycle: %s", strings.Join(cycle, " -> "))
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)

			if levels {
				byDepth, err := graph.Levels()
				if err != nil {
					return err
				}
				t.AppendHeader(table.Row{"Level", "Ontology"})
				for depth, paths := range byDepth {
					for _, path := range paths {
						t.AppendRow(table.Row{depth, path})
					}
				}
			} else {
				order, err := graph.TopologicalOrder()
				if err != nil {
					return err
				}
				t.AppendHeader(table.Row{"#", "Ontology", "Axioms", "Imports"})
				for i, onto := range order {
					if onto == nil {
						continue
					}
					t.AppendRow(table.Row{i + 1, onto.Path, len(onto.Axioms), len(onto.Imports)})
				}
			}

			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&levels, "levels", false, "Group ontologies by import depth instead of topological order")

	return cmd
}
