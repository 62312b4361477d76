package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"checkoutflow/internal/browser"
	"checkoutflow/internal/config"
	"checkoutflow/internal/flow"
	"checkoutflow/internal/scenario"
	"checkoutflow/internal/trace"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Scenario string
	Database string
	Parallel int
	Items    int
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the checkout journey",
		Long: `Execute the scripted checkout journey against the configured storefront.

Credentials and storefront settings come from the environment (or a .env
file); a scenario file can override the selection size, credentials, and
expected confirmation texts. Each parallel run gets its own isolated
browser session.

Example:
  checkoutflow run
  checkoutflow run --scenario scenarios/full-cart.yaml --db ./runs.db
  checkoutflow run --parallel 3 --items 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJourneys(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Scenario, "scenario", "", "path to a scenario YAML file")
	cmd.Flags().StringVar(&opts.Database, "db", ":memory:", "path to the SQLite trace database")
	cmd.Flags().IntVar(&opts.Parallel, "parallel", 1, "number of independent runs to execute")
	cmd.Flags().IntVar(&opts.Items, "items", -1, "selection size override (-1 uses config/scenario)")

	return cmd
}

// runOutcome pairs a run's result with its recorded trace for output.
type runOutcome struct {
	Result *flow.Result `json:"result"`
	Events []flow.Event `json:"events"`
}

func runJourneys(opts *RunOptions, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	params := flow.Params{
		Username:  cfg.Username,
		Password:  cfg.Password,
		ItemCount: cfg.Items,
	}
	if opts.Scenario != "" {
		sc, err := scenario.Load(opts.Scenario)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load scenario", err)
		}
		applyScenario(&params, sc)
		slog.Info("scenario loaded", "name", sc.Name, "items", params.ItemCount)
	}
	if opts.Items >= 0 {
		params.ItemCount = opts.Items
	}
	if opts.Parallel < 1 {
		return NewExitError(ExitCommandError, "parallel must be at least 1")
	}

	st, err := trace.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open trace database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing trace database", "error", closeErr)
		}
	}()

	// Setup signal handling: aborting abandons runs wherever they are.
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("received signal, aborting runs", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	// Each run gets its own browser session and recorder; runs share no
	// mutable state.
	outcomes := make([]runOutcome, opts.Parallel)
	var wg sync.WaitGroup
	for i := 0; i < opts.Parallel; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			outcomes[slot] = executeOne(ctx, cfg, st, params, logger)
		}(i)
	}
	wg.Wait()

	return reportOutcomes(opts, cmd, outcomes)
}

// executeOne runs one full journey in its own browser session.
func executeOne(ctx context.Context, cfg *config.Config, st *trace.Store, params flow.Params, logger *slog.Logger) runOutcome {
	runID := flow.NewRunID()

	sess, err := browser.NewSession(ctx, browser.Options{
		BaseURL:    cfg.BaseURL,
		ChromePath: cfg.ChromePath,
		Headless:   cfg.Headless,
		OpTimeout:  cfg.OpTimeout,
	})
	if err != nil {
		return runOutcome{Result: &flow.Result{
			RunID:   runID,
			State:   flow.StateUnauthenticated,
			Err:     err,
			Failure: err.Error(),
		}}
	}
	defer sess.Close()

	run := flow.NewRun(sess,
		flow.WithRunID(runID),
		flow.WithRecorder(trace.NewRecorder(st, runID)),
		flow.WithLogger(logger),
	)
	res, _ := run.Execute(ctx, params)

	events, err := st.EventsForRun(ctx, runID)
	if err != nil {
		logger.Warn("failed to read back trace", "run_id", runID, "error", err)
	}
	return runOutcome{Result: res, Events: events}
}

// applyScenario overlays scenario values onto the run parameters.
func applyScenario(params *flow.Params, sc *scenario.Scenario) {
	params.ItemCount = sc.Items
	if sc.Username != "" {
		params.Username = sc.Username
	}
	if sc.Password != "" {
		params.Password = sc.Password
	}
	if sc.ExpectedHeader != "" {
		params.ExpectedHeader = sc.ExpectedHeader
	}
	if sc.ExpectedBody != "" {
		params.ExpectedBodyFragment = sc.ExpectedBody
	}
}

// reportOutcomes prints every run's outcome and converts failures into the
// command's exit code.
func reportOutcomes(opts *RunOptions, cmd *cobra.Command, outcomes []runOutcome) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	failed := 0
	for _, oc := range outcomes {
		if !oc.Result.Pass {
			failed++
		}
	}

	if opts.Format == "json" {
		if err := out.PrintJSON(outcomes); err != nil {
			return WrapExitError(ExitCommandError, "failed to print results", err)
		}
	} else {
		for _, oc := range outcomes {
			res := oc.Result
			if res.Pass {
				out.Printf("PASS %s items=%d\n", res.RunID, len(res.AddedItems))
				continue
			}
			out.Printf("FAIL %s state=%s: %s\n", res.RunID, res.State, res.Failure)
		}
		out.Printf("%d/%d runs passed\n", len(outcomes)-failed, len(outcomes))
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d runs failed", failed, len(outcomes)))
	}
	return nil
}
