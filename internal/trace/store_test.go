package trace

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkoutflow/internal/flow"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestStore_WriteAndReadBack(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	events := []flow.Event{
		{Seq: 1, Kind: "guard", State: "authenticated", Guard: "inventory-location", Outcome: "pass"},
		{Seq: 2, Kind: "transition", State: "authenticated"},
		{Seq: 3, Kind: "guard", State: "items-selected", Guard: "cart-badge", Outcome: "fail", Detail: `expected badge "3", got badge "2"`},
	}
	for _, ev := range events {
		require.NoError(t, st.WriteEvent(ctx, "run-a", ev))
	}

	got, err := st.EventsForRun(ctx, "run-a")
	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestStore_EventsOrderedBySeq(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	// Inserted out of order; readback sorts by seq.
	require.NoError(t, st.WriteEvent(ctx, "run-a", flow.Event{Seq: 3, Kind: "transition", State: "cart-review"}))
	require.NoError(t, st.WriteEvent(ctx, "run-a", flow.Event{Seq: 1, Kind: "transition", State: "authenticated"}))
	require.NoError(t, st.WriteEvent(ctx, "run-a", flow.Event{Seq: 2, Kind: "transition", State: "items-selected"}))

	got, err := st.EventsForRun(ctx, "run-a")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].Seq)
	assert.Equal(t, int64(2), got[1].Seq)
	assert.Equal(t, int64(3), got[2].Seq)
}

func TestStore_DuplicateSeqRejected(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.WriteEvent(ctx, "run-a", flow.Event{Seq: 1, Kind: "transition", State: "authenticated"}))
	err := st.WriteEvent(ctx, "run-a", flow.Event{Seq: 1, Kind: "transition", State: "authenticated"})
	assert.Error(t, err, "(run_id, seq) is the primary key")
}

func TestStore_RunIDsFirstSeenOrder(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.WriteEvent(ctx, "run-b", flow.Event{Seq: 1, Kind: "transition", State: "authenticated"}))
	require.NoError(t, st.WriteEvent(ctx, "run-a", flow.Event{Seq: 1, Kind: "transition", State: "authenticated"}))
	require.NoError(t, st.WriteEvent(ctx, "run-b", flow.Event{Seq: 2, Kind: "transition", State: "items-selected"}))

	ids, err := st.RunIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"run-b", "run-a"}, ids)
}

func TestStore_EmptyRun(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	got, err := st.EventsForRun(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_ReopenKeepsEvents(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.WriteEvent(ctx, "run-a", flow.Event{Seq: 1, Kind: "transition", State: "authenticated"}))
	require.NoError(t, st.Close())

	st, err = Open(path)
	require.NoError(t, err)
	defer st.Close()

	got, err := st.EventsForRun(ctx, "run-a")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRecorder_WritesUnderRunID(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	rec := NewRecorder(st, "run-x")

	require.NoError(t, rec.Record(ctx, flow.Event{Seq: 1, Kind: "guard", State: "authenticated", Guard: "inventory-location", Outcome: "pass"}))

	got, err := st.EventsForRun(ctx, "run-x")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "inventory-location", got[0].Guard)
}
