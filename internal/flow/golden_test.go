package flow

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"checkoutflow/internal/testutil"
)

// The full trace of a passing run is fixed once the picker and persona are
// scripted, so the serialized snapshot can be pinned as a golden file.
func TestGolden_HappyPathTrace(t *testing.T) {
	sf := testutil.NewStorefront()
	rec := &MemoryRecorder{}
	run := NewRun(sf,
		WithRunID("golden-run"),
		WithRecorder(rec),
		WithPicker(testutil.NewScriptedPicker(1, 4, 5)),
		WithPersons(testutil.NewFixedPersons("Ada", "Lovelace", "10178")),
	)

	res, err := run.Execute(context.Background(), Params{
		Username:  "standard_user",
		Password:  "secret_sauce",
		ItemCount: 3,
	})
	require.NoError(t, err)
	require.True(t, res.Pass)

	data, err := json.MarshalIndent(NewSnapshot(res, rec.Events), "", "  ")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "happy-path", append(data, '\n'))
}
