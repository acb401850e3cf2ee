package testutil

import (
	"context"
	"fmt"

	"github.com/vk/framegraphgo/internal/registry"
)

// SpyInput tags each spy invocation so tests can tell passes apart.
type SpyInput struct {
	Tag string `cty:"tag"`
}

// SpyModule registers a "spy" runner that records the tag of every pass it
// executes. The executor runs passes one at a time, so a plain slice holds
// the invocation order.
type SpyModule struct {
	Invocations []string
}

// Register registers the "spy" runner Go handler.
func (m *SpyModule) Register(r *registry.Registry) {
	r.RegisterRunner("spy", &registry.Handler{
		NewInput: func() any { return new(SpyInput) },
		Fn: func(ctx context.Context, input any) error {
			m.Invocations = append(m.Invocations, input.(*SpyInput).Tag)
			return nil
		},
	})
}

// FailerModule registers a "failer" runner that always returns the injected
// error, plus a "spy" runner for observing whether later passes still ran.
type FailerModule struct {
	InjectedErr error
	Spy         SpyModule
}

// Register registers the "failer" and "spy" runner Go handlers.
func (m *FailerModule) Register(r *registry.Registry) {
	r.RegisterRunner("failer", &registry.Handler{
		Fn: func(ctx context.Context, input any) error {
			if m.InjectedErr == nil {
				return fmt.Errorf("failer module used without an injected error")
			}
			return m.InjectedErr
		},
	})
	m.Spy.Register(r)
}
