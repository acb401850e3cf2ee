package work

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/framegraphgo/internal/ctxlog"
	"github.com/vk/framegraphgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the work runner.
type Input struct {
	DurationMS int    `cty:"duration_ms"`
	Label      string `cty:"label"`
}

// OnRunWork is the handler for the 'work' runner. It burns wall-clock time
// to stand in for a real render or compute pass.
func OnRunWork(ctx context.Context, input any) error {
	in, ok := input.(*Input)
	if !ok {
		return fmt.Errorf("work: unexpected input type %T", input)
	}
	if in.DurationMS < 0 {
		return fmt.Errorf("work: duration_ms must not be negative, got %d", in.DurationMS)
	}

	ctxlog.FromContext(ctx).Debug("Simulating pass workload.",
		"label", in.Label,
		"duration_ms", in.DurationMS,
	)

	timer := time.NewTimer(time.Duration(in.DurationMS) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRunner("work", &registry.Handler{
		NewInput: func() any { return new(Input) },
		Fn:       OnRunWork,
	})
}
