package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/colog-labs/colog/internal/cli/config"
	"github.com/colog-labs/colog/internal/logical"
	"github.com/colog-labs/colog/internal/ontology"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewTranslateCommand creates the translate command.
func NewTranslateCommand() *cobra.Command {
	var (
		ffpcnf  bool
		resolve bool
		toFile  bool
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "translate <file>",
		Short: "Translate a CLIF ontology to TPTP or LADR",
		Long: `Parse a CLIF ontology and emit it in a reasoner input language.

With --resolve the transitive cl-imports closure is loaded and every
imported axiom is included. With --ffpcnf each axiom is first normalized
to function-free prenex conjunctive normal form.`,
		Example: `  colog translate ontologies/space.clif
  colog translate --format ladr --ffpcnf ontologies/space.clif
  colog translate --resolve --out ontologies/space.clif`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetCurrentConfig()
			logger := config.GetLogger(cmd.Context())

			run := func() error {
				text, err := translateFile(args[0], cfg.Format, ffpcnf, resolve, cfg, logger)
				if err != nil {
					return err
				}
				if !toFile {
					_, _ = fmt.Fprint(cmd.OutOrStdout(), text)
					return nil
				}
				if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
					return fmt.Errorf("creating output directory: %w", err)
				}
				dest := translationPath(cfg.OutputDir, args[0], cfg.Format)
				if err := os.WriteFile(dest, []byte(text), 0o644); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", dest)
				return nil
			}

			if err := run(); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchAndRerun(cmd, args[0], logger, run)
		},
	}

	cmd.Flags().BoolVar(&ffpcnf, "ffpcnf", false, "Normalize axioms to function-free prenex CNF before translation")
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Resolve cl-imports and translate the whole import closure")
	cmd.Flags().BoolVar(&toFile, "out", false, "Write the translation into the output directory instead of stdout")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-translate whenever the file changes")

	return cmd
}

// translateFile parses path and renders every axiom in the requested
// format, one sentence per line. With resolve, the import closure is
// loaded and axioms are emitted in topological order, deepest imports
// first.
func translateFile(path, format string, ffpcnf, resolve bool, cfg *config.Config, logger *slog.Logger) (string, error) {
	if format != "tptp" && format != "ladr" {
		return "", fmt.Errorf("unknown translation format %q (want tptp or ladr)", format)
	}

	factory := logical.NewFactory()
	loader := ontology.NewLoader(factory, &ontology.Resolver{Sub: cfg.Sub, Base: cfg.Base}, logger)

	root, err := loader.LoadFile(path)
	if err != nil {
		return "", err
	}
	if root == nil {
		return "", nil
	}

	axioms := root.Axioms
	if resolve {
		graph, err := loader.LoadImports(root)
		if err != nil {
			return "", err
		}
		order, err := graph.TopologicalOrder()
		if err != nil {
			return "", err
		}
		axioms = nil
		for _, onto := range order {
			if onto != nil {
				axioms = append(axioms, onto.Axioms...)
			}
		}
	}

	lines := make([]string, len(axioms))
	var g errgroup.Group
	for i, ax := range axioms {
		i, ax := i, ax
		g.Go(func() error {
			rendered, err := serializeAxiom(ax, format, ffpcnf)
			if err != nil {
				return err
			}
			lines[i] = rendered
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func serializeAxiom(ax *logical.Axiom, format string, ffpcnf bool) (string, error) {
	if ffpcnf {
		ax = ax.FFPCNF()
	}
	switch format {
	case "tptp":
		return ax.ToTPTP()
	case "ladr":
		return ax.ToLADR()
	}
	return "", fmt.Errorf("unknown translation format %q", format)
}

// translationPath maps an ontology file to its output file: TPTP uses
// the .p extension, LADR uses .ladr.
func translationPath(outputDir, source, format string) string {
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	ext := ".p"
	if format == "ladr" {
		ext = ".ladr"
	}
	return filepath.Join(outputDir, name+ext)
}

// watchAndRerun re-runs the translation whenever the source file
// changes. The parent directory is watched because editors commonly
// replace files on save rather than writing them in place.
func watchAndRerun(cmd *cobra.Command, path string, logger *slog.Logger, run func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (ctrl-c to stop)\n", path)
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("source changed", "event", event.Op.String())
			if err := run(); err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}
