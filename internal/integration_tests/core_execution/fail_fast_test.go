package integration_tests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/framegraphgo/internal/testutil"
)

// Test for: pass fail triggers fast fail.
func TestCoreExecution_FailingPass_TriggersFailFast(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The frame defines a simple dependency: the failing pass runs first.
	frameHCL := `
		pass "failer" "A" {}

		pass "spy" "B" {
			depends_on = ["A"]
			params {
				tag = "B"
			}
		}
	`
	expectedErr := errors.New("handler failed as expected")
	mod := &testutil.FailerModule{InjectedErr: expectedErr}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"frames/main.hcl": frameHCL}, mod)

	// --- Assert ---
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, expectedErr)
	assert.ErrorContains(t, result.Err, "pass 'A' failed")
	assert.Empty(t, mod.Spy.Invocations, "downstream passes must not run after a failure")
}

// Test for: a failure skips every remaining pass, related or not.
func TestCoreExecution_FailureSkipsUnrelatedPasses(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	frameHCL := `
		pass "failer" "boom" {}

		pass "spy" "unrelated" {
			params {
				tag = "unrelated"
			}
		}
	`
	mod := &testutil.FailerModule{InjectedErr: errors.New("injected failure")}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"frames/main.hcl": frameHCL}, mod)

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Empty(t, mod.Spy.Invocations)
}
