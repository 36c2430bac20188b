package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/colog-labs/colog/internal/clif"
	"github.com/colog-labs/colog/internal/logical"
	"github.com/spf13/cobra"
)

// replState holds the toggles a session can change with dot-commands.
type replState struct {
	factory *logical.Factory
	format  string
	ffpcnf  bool
}

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse and translate CLIF axioms",
		Long: `Start an interactive session. Each line is parsed as a CLIF axiom
and echoed in canonical form alongside its TPTP or LADR translation.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	historyFile := filepath.Join(os.TempDir(), "colog_history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "colog> ",
		HistoryFile:     historyFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	state := &replState{factory: logical.NewFactory(), format: "all"}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "colog REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type a CLIF axiom, .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleREPLCommand(cmd, state, line); quit {
				break
			}
			continue
		}

		if err := evalAxiom(cmd, state, line); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

// evalAxiom parses one CLIF axiom and prints its canonical form and its
// translation in the session format.
func evalAxiom(cmd *cobra.Command, state *replState, line string) error {
	result, err := clif.Parse(line)
	if err != nil {
		return err
	}
	if result == nil || len(result.Sentences) == 0 {
		return fmt.Errorf("no axiom in input")
	}
	for _, diag := range result.Diagnostics {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", diag)
	}

	for _, sentence := range result.Sentences {
		ax := state.factory.NewAxiom(sentence)
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "axiom:  %s\n", ax)

		if state.ffpcnf {
			ax = ax.FFPCNF()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ffpcnf: %s\n", ax)
		}

		for _, format := range []string{"tptp", "ladr"} {
			if state.format != "all" && state.format != format {
				continue
			}
			rendered, err := serializeAxiom(ax, format, false)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s:   %s\n", format, rendered)
		}
	}
	return nil
}

func handleREPLCommand(cmd *cobra.Command, state *replState, line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(cmd.OutOrStdout())

	case ".format":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Format: %s\n", state.format)
			return false
		}
		switch parts[1] {
		case "tptp", "ladr", "all":
			state.format = parts[1]
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Format set to %s\n", state.format)
		default:
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .format [tptp|ladr|all]")
		}

	case ".ffpcnf":
		state.ffpcnf = !state.ffpcnf
		if state.ffpcnf {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Normalization on")
		} else {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Normalization off")
		}

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help            Show this help message
  .format [f]      Show or set the translation format (tptp|ladr|all)
  .ffpcnf          Toggle function-free prenex CNF normalization
  .clear           Clear the screen
  .quit / .exit    Exit the REPL

Tips:
  - Enter one CLIF axiom per line, e.g. (forall (x) (P x))
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".format",
			readline.PcItem("tptp"),
			readline.PcItem("ladr"),
			readline.PcItem("all"),
		),
		readline.PcItem(".ffpcnf"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
