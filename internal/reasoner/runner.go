package reasoner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one reasoner invocation. Err records an
// invocation failure (missing executable, unwritable output); a reasoner
// that runs but reaches no verdict yields a nil Err and an Unknown or
// Error status.
type Result struct {
	Reasoner   string
	Kind       Kind
	Status     Status
	OutputFile string
	Duration   time.Duration
	Err        error
}

// Run is one battery execution: every configured reasoner launched
// against the same translated ontology, outputs captured under a
// run-scoped directory.
type Run struct {
	ID      string
	Dir     string
	Results []Result
}

// Runner executes a reasoner battery concurrently.
type Runner struct {
	defs      []Definition
	outputDir string
	logger    *slog.Logger
}

// NewRunner creates a runner writing outputs below outputDir. A nil
// logger discards log output.
func NewRunner(defs []Definition, outputDir string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{defs: defs, outputDir: outputDir, logger: logger}
}

// Execute launches every configured reasoner concurrently. inputs maps a
// translation format (tptp, ladr) to the file holding that translation;
// a reasoner whose format has no input records an error Result. Each
// reasoner is bounded by its own timeout on top of ctx.
func (r *Runner) Execute(ctx context.Context, inputs map[string]string) (*Run, error) {
	run := &Run{
		ID:      uuid.NewString(),
		Results: make([]Result, len(r.defs)),
	}
	run.Dir = filepath.Join(r.outputDir, run.ID)
	if err := os.MkdirAll(run.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating run directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, def := range r.defs {
		i, def := i, def
		g.Go(func() error {
			run.Results[i] = r.invoke(ctx, def, inputs, run.Dir)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return run, nil
}

// invoke runs a single reasoner and classifies its captured output.
func (r *Runner) invoke(ctx context.Context, def Definition, inputs map[string]string, dir string) Result {
	result := Result{Reasoner: def.Name, Kind: def.Kind}

	input, ok := inputs[def.Format]
	if !ok {
		result.Err = fmt.Errorf("no %s translation available for %s", def.Format, def.Name)
		return result
	}
	result.OutputFile = filepath.Join(dir, def.Name+".out")

	if def.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, def.Timeout)
		defer cancel()
	}

	args := make([]string, len(def.Args))
	for i, a := range def.Args {
		a = strings.ReplaceAll(a, "{input}", input)
		a = strings.ReplaceAll(a, "{output}", result.OutputFile)
		args[i] = a
	}

	r.logger.Debug("invoking reasoner", "name", def.Name, "exec", def.Exec, "args", args)
	start := time.Now()

	cmd := exec.CommandContext(ctx, def.Exec, args...)
	output, err := cmd.CombinedOutput()
	result.Duration = time.Since(start)

	// Timeouts are normal for provers; the output gathered so far still
	// gets classified.
	if err != nil && ctx.Err() == nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			result.Err = fmt.Errorf("running %s: %w", def.Name, err)
			return result
		}
	}

	if writeErr := os.WriteFile(result.OutputFile, output, 0o644); writeErr != nil {
		result.Err = fmt.Errorf("writing %s output: %w", def.Name, writeErr)
		return result
	}

	result.Status = Classify(def.Name, string(output))
	r.logger.Info("reasoner finished",
		"name", def.Name, "status", result.Status.String(), "duration", result.Duration)
	return result
}
