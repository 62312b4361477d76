package flow

import "context"

// Event kinds recorded during a run.
const (
	EventTransition = "transition"
	EventGuard      = "guard"
)

// Guard outcomes.
const (
	OutcomePass = "pass"
	OutcomeFail = "fail"
)

// Event is one recorded step of a run: either a completed state transition
// or a guard evaluation. Seq orders events within a run.
type Event struct {
	Seq     int64  `json:"seq"`
	Kind    string `json:"kind"`
	State   string `json:"state"`
	Guard   string `json:"guard,omitempty"`
	Outcome string `json:"outcome,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Recorder receives run events as they happen. Recording failures are
// logged by the orchestrator but never fail the run.
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

// NopRecorder discards all events.
type NopRecorder struct{}

// Record implements Recorder.
func (NopRecorder) Record(context.Context, Event) error { return nil }

// MemoryRecorder collects events in order. It is run-scoped like every other
// per-run value and must not be shared between concurrent runs.
type MemoryRecorder struct {
	Events []Event
}

// Record implements Recorder.
func (m *MemoryRecorder) Record(_ context.Context, ev Event) error {
	m.Events = append(m.Events, ev)
	return nil
}

// Result is the outcome of one run. A run passes only if every guard in the
// sequence held; otherwise Err carries the first violated guard or the
// driver failure that aborted the run.
type Result struct {
	// RunID identifies the run.
	RunID string `json:"run_id"`

	// Pass indicates overall success.
	Pass bool `json:"pass"`

	// State is the last state the run reached.
	State State `json:"state"`

	// AddedItems are the names selected on the inventory screen, in draw
	// order. This is the only state carried across phases.
	AddedItems []string `json:"added_items"`

	// Err is the failure that aborted the run, nil on success.
	Err error `json:"-"`

	// Failure is Err's message, for serialized output.
	Failure string `json:"failure,omitempty"`
}

// Snapshot is the serializable record of a run used for golden comparison
// and JSON output: the result plus the ordered event trace.
type Snapshot struct {
	RunID      string   `json:"run_id"`
	Pass       bool     `json:"pass"`
	AddedItems []string `json:"added_items"`
	Failure    string   `json:"failure,omitempty"`
	Events     []Event  `json:"events"`
}

// NewSnapshot combines a result with its recorded events.
func NewSnapshot(res *Result, events []Event) Snapshot {
	return Snapshot{
		RunID:      res.RunID,
		Pass:       res.Pass,
		AddedItems: res.AddedItems,
		Failure:    res.Failure,
		Events:     events,
	}
}
