package testutil

import (
	"context"

	"github.com/vk/framegraphgo/internal/registry"
)

// NoOpModule registers a single "noop" runner. It's useful for tests that
// should fail before execution begins but still need frames that can pass
// registry validation.
type NoOpModule struct{}

// Register registers a "noop" runner that takes no params and does nothing.
func (m *NoOpModule) Register(r *registry.Registry) {
	r.RegisterRunner("noop", &registry.Handler{
		Fn: func(ctx context.Context, input any) error {
			// No operation
			return nil
		},
	})
}
