package trace

import (
	"context"

	"checkoutflow/internal/flow"
)

// Recorder binds one run to the store. It implements flow.Recorder and,
// like every other per-run value, must not be shared between runs.
type Recorder struct {
	st    *Store
	runID string
}

// NewRecorder creates a recorder for the given run.
func NewRecorder(st *Store, runID string) *Recorder {
	return &Recorder{st: st, runID: runID}
}

var _ flow.Recorder = (*Recorder)(nil)

// Record implements flow.Recorder.
func (r *Recorder) Record(ctx context.Context, ev flow.Event) error {
	return r.st.WriteEvent(ctx, r.runID, ev)
}
