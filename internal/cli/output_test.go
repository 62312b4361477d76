package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError_Message(t *testing.T) {
	bare := NewExitError(ExitFailure, "2 of 3 runs failed")
	assert.Equal(t, "2 of 3 runs failed", bare.Error())

	wrapped := WrapExitError(ExitCommandError, "failed to open trace database", errors.New("no such file"))
	assert.Equal(t, "failed to open trace database: no such file", wrapped.Error())
}

func TestExitError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapExitError(ExitCommandError, "failed to write", cause)

	assert.ErrorIs(t, err, cause)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "runs failed")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))
	assert.Equal(t, ExitCommandError, GetExitCode(fmt.Errorf("outer: %w", NewExitError(ExitCommandError, "inner"))))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
}

func TestOutputFormatter_PrintJSON(t *testing.T) {
	var buf bytes.Buffer
	out := &OutputFormatter{Format: "json", Writer: &buf}

	require.NoError(t, out.PrintJSON(map[string]int{"passed": 2}))
	assert.Equal(t, "{\n  \"passed\": 2\n}\n", buf.String())
}

func TestOutputFormatter_Printf(t *testing.T) {
	var buf bytes.Buffer
	out := &OutputFormatter{Format: "text", Writer: &buf}

	out.Printf("PASS %s (%d items)\n", "run-a", 3)
	assert.Equal(t, "PASS run-a (3 items)\n", buf.String())
}
