package print

import (
	"context"
	"fmt"

	"github.com/vk/framegraphgo/internal/ctxlog"
	"github.com/vk/framegraphgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the print runner.
type Input struct {
	Message string `cty:"message"`
}

// OnRunPrint is the handler for the 'print' runner.
func OnRunPrint(ctx context.Context, input any) error {
	in, ok := input.(*Input)
	if !ok {
		return fmt.Errorf("print: unexpected input type %T", input)
	}

	ctxlog.FromContext(ctx).Info("Printing message.", "message", in.Message)

	if in.Message == "" {
		fmt.Println("      (empty)")
		return nil
	}
	fmt.Printf("      %s\n", in.Message)
	return nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRunner("print", &registry.Handler{
		NewInput: func() any { return new(Input) },
		Fn:       OnRunPrint,
	})
}
