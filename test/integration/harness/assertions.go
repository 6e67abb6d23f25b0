package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess verifies the command exited with code 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"tabstash %v exited with %d.\nStdout: %s\nStderr: %s",
		result.Args, result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure verifies the command exited with a non-zero code.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"tabstash %v succeeded but should have failed.\nStdout: %s",
		result.Args, result.Stdout)
}

// AssertStdoutContains verifies stdout contains expected.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "stdout of tabstash %v", result.Args)
}

// AssertStdoutNotContains verifies stdout does not contain unexpected.
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "stdout of tabstash %v", result.Args)
}

// AssertStderrContains verifies stderr contains expected.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "stderr of tabstash %v", result.Args)
}

// DecodeJSON fails the test unless stdout is JSON, which it decodes into target.
func DecodeJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target),
		"stdout of tabstash %v is not JSON:\n%s", result.Args, result.Stdout)
}

// AssertJSONContains verifies stdout is a JSON object with key set to expected.
func AssertJSONContains(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var data map[string]any
	DecodeJSON(tb, result, &data)
	assert.Equal(tb, expected, data[key], "JSON key %q", key)
}
