package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/framegraphgo/internal/testutil"
)

// Test for: malformed frame syntax is a fatal startup error.
func TestErrorHandling_InvalidHclIsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	frameHCL := `
		pass "noop" "broken" {
			params {
	`

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"frames/main.hcl": frameHCL}, &testutil.NoOpModule{})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Nil(t, result.App, "the app must not come up on a malformed frame")
	assert.ErrorContains(t, result.Err, "application startup panicked")
	assert.ErrorContains(t, result.Err, "failed to parse")
}

// Test for: a frame block with the wrong label count is rejected.
func TestErrorHandling_WrongLabelCountIsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	frameHCL := `
		pass "only_one_label" {}
	`

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"frames/main.hcl": frameHCL}, &testutil.NoOpModule{})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.ErrorContains(t, result.Err, "application startup panicked")
}
