package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/framegraphgo/internal/testutil"
)

// TestStartupValidation_UnregisteredRunner_Fails validates that the app
// panics on startup if a frame references a runner with no Go handler.
func TestStartupValidation_UnregisteredRunner_Fails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	frameHCL := `
		pass "noop" "fine" {}

		pass "raytrace" "shadows" {}
	`

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"frames/main.hcl": frameHCL}, &testutil.NoOpModule{})

	// --- Assert ---
	require.Error(t, result.Err, "app.NewApp() should have panicked, but it did not")
	assert.ErrorContains(t, result.Err, "registry validation failed")
	assert.ErrorContains(t, result.Err, "pass 'shadows' uses unregistered runner kind 'raytrace'")
}

// Test for: every missing runner is reported, not just the first.
func TestStartupValidation_ReportsAllMissingRunners(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	frameHCL := `
		pass "raytrace" "shadows" {}

		pass "pathtrace" "gi" {}
	`

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"frames/main.hcl": frameHCL}, &testutil.NoOpModule{})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.ErrorContains(t, result.Err, "unregistered runner kind 'raytrace'")
	assert.ErrorContains(t, result.Err, "unregistered runner kind 'pathtrace'")
}
