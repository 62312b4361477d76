package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"checkoutflow/internal/trace"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace [run-id]",
		Short: "Inspect recorded run traces",
		Long: `List recorded runs, or dump the ordered event trace for one run.

Example:
  checkoutflow trace --db ./runs.db
  checkoutflow trace --db ./runs.db 0190f8a2-7c3e-7d41-b0aa-3c1f2e9d5a11`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTrace(opts, cmd, args)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the SQLite trace database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func showTrace(opts *TraceOptions, cmd *cobra.Command, args []string) error {
	st, err := trace.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open trace database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing trace database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	if len(args) == 0 {
		ids, err := st.RunIDs(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to list runs", err)
		}
		if opts.Format == "json" {
			return out.PrintJSON(ids)
		}
		for _, id := range ids {
			out.Printf("%s\n", id)
		}
		return nil
	}

	events, err := st.EventsForRun(ctx, args[0])
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read trace", err)
	}
	if len(events) == 0 {
		return NewExitError(ExitCommandError, "no events recorded for run "+args[0])
	}

	if opts.Format == "json" {
		return out.PrintJSON(events)
	}
	for _, ev := range events {
		switch ev.Kind {
		case "guard":
			out.Printf("%4d  guard      %-16s %-28s %s %s\n", ev.Seq, ev.State, ev.Guard, ev.Outcome, ev.Detail)
		default:
			out.Printf("%4d  transition %-16s\n", ev.Seq, ev.State)
		}
	}
	return nil
}
