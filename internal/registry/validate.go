package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/framegraphgo/internal/config"
	"github.com/vk/framegraphgo/internal/ctxlog"
)

// Validate performs a strict parity check between the loaded frame and
// the compiled Go handlers: every runner kind a pass references must be
// registered.
func (r *Registry) Validate(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	var errs []string
	for _, pass := range model.Passes {
		if _, ok := r.handlers[pass.Runner]; !ok {
			errs = append(errs, fmt.Sprintf("pass '%s' uses unregistered runner kind '%s'", pass.Name, pass.Runner))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "handler_count", len(r.handlers))
	return nil
}
