package print

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/framegraphgo/internal/registry"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	(&Module{}).Register(reg)

	handler, ok := reg.Runner("print")
	require.True(t, ok)
	assert.IsType(t, &Input{}, handler.NewInput())
}

func TestOnRunPrint(t *testing.T) {
	t.Parallel()

	t.Run("prints a message", func(t *testing.T) {
		t.Parallel()
		err := OnRunPrint(context.Background(), &Input{Message: "hello"})
		assert.NoError(t, err)
	})

	t.Run("tolerates an empty message", func(t *testing.T) {
		t.Parallel()
		err := OnRunPrint(context.Background(), &Input{})
		assert.NoError(t, err)
	})

	t.Run("rejects a foreign input type", func(t *testing.T) {
		t.Parallel()
		err := OnRunPrint(context.Background(), "not an input")
		assert.ErrorContains(t, err, "unexpected input type")
	})
}
