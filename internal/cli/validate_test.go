package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestValidate_ValidScenario(t *testing.T) {
	path := writeScenario(t, "ok.yaml", "name: ok\ndescription: fine\nitems: 2\n")

	out, err := runCLI(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK   "+path)
}

func TestValidate_InvalidScenarioFails(t *testing.T) {
	good := writeScenario(t, "ok.yaml", "name: ok\ndescription: fine\nitems: 2\n")
	bad := writeScenario(t, "bad.yaml", "description: no name\nitems: 1\n")

	out, err := runCLI(t, "validate", good, bad)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "OK   "+good)
	assert.Contains(t, out, "FAIL "+bad)
	assert.Contains(t, err.Error(), "1 of 2 scenarios invalid")
}

func TestValidate_JSONReport(t *testing.T) {
	path := writeScenario(t, "ok.yaml", "name: ok\ndescription: fine\nitems: 2\n")

	out, err := runCLI(t, "--format", "json", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"path": "`+path+`"`)
	assert.Contains(t, out, `"valid": true`)
}

func TestRoot_RejectsUnknownFormat(t *testing.T) {
	path := writeScenario(t, "ok.yaml", "name: ok\ndescription: fine\nitems: 2\n")

	_, err := runCLI(t, "--format", "xml", "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestTrace_UnknownRunIsCommandError(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	_, err := runCLI(t, "trace", "--db", db, "no-such-run")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "no events recorded")
}

func TestTrace_EmptyStoreListsNothing(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	out, err := runCLI(t, "trace", "--db", db)
	require.NoError(t, err)
	assert.Empty(t, out)
}
