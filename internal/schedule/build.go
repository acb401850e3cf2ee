package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/framegraphgo/internal/config"
	"github.com/vk/framegraphgo/internal/ctxlog"
	"github.com/vk/framegraphgo/internal/graph"
	"github.com/vk/framegraphgo/internal/toposort"
)

// Build constructs a complete, validated schedule from a frame model.
// Passes become graph nodes in declaration order; each pass's reads are
// recorded before its writes, so the model's declaration order is the
// access chronology the hazard derivation sees.
func Build(ctx context.Context, model *config.Model, opts ...graph.Option) (*Schedule, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting schedule construction.")

	ids, err := validate(model)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Model validation passed.")

	g := graph.NewHazardGraph[*config.Pass, string](opts...)
	for _, pass := range model.Passes {
		g.AddNode(pass)
	}
	logger.Debug("Build: Pass registration complete.", "pass_count", g.Len())

	for id, pass := range model.Passes {
		for _, resource := range pass.Reads {
			if err := g.AddRead(id, resource); err != nil {
				return nil, err
			}
		}
		for _, resource := range pass.Writes {
			if err := g.AddWrite(id, resource); err != nil {
				return nil, err
			}
		}
		for _, dep := range pass.DependsOn {
			if err := g.AddDependency(id, ids[dep]); err != nil {
				return nil, err
			}
		}
	}
	logger.Debug("Build: Access log and explicit links complete.")

	order, err := g.BuildExecutionOrder()
	if err != nil {
		var cycleErr *toposort.CycleError
		if errors.As(err, &cycleErr) {
			return nil, fmt.Errorf("error validating dependency graph: passes %v: %w",
				passNames(model, cycleErr.Unresolved), err)
		}
		return nil, fmt.Errorf("error validating dependency graph: %w", err)
	}
	logger.Debug("Build: Execution order computed.", "order_length", len(order))

	return &Schedule{Model: model, Order: order}, nil
}

// validate checks every name the model references against the names it
// declares, and returns the pass-name index used for depends_on links.
func validate(model *config.Model) (map[string]int, error) {
	resources := make(map[string]struct{}, len(model.Resources))
	for _, res := range model.Resources {
		if res.Name == "" {
			return nil, fmt.Errorf("resource of kind %q has no name", res.Kind)
		}
		if _, exists := resources[res.Name]; exists {
			return nil, fmt.Errorf("duplicate resource name %q", res.Name)
		}
		resources[res.Name] = struct{}{}
	}

	ids := make(map[string]int, len(model.Passes))
	for id, pass := range model.Passes {
		if pass.Name == "" {
			return nil, fmt.Errorf("pass with runner %q has no name", pass.Runner)
		}
		if pass.Runner == "" {
			return nil, fmt.Errorf("pass %q has no runner", pass.Name)
		}
		if _, exists := ids[pass.Name]; exists {
			return nil, fmt.Errorf("duplicate pass name %q", pass.Name)
		}
		ids[pass.Name] = id
	}

	for _, pass := range model.Passes {
		for _, resource := range pass.Reads {
			if _, ok := resources[resource]; !ok {
				return nil, fmt.Errorf("pass %q reads undeclared resource %q", pass.Name, resource)
			}
		}
		for _, resource := range pass.Writes {
			if _, ok := resources[resource]; !ok {
				return nil, fmt.Errorf("pass %q writes undeclared resource %q", pass.Name, resource)
			}
		}
		for _, dep := range pass.DependsOn {
			if _, ok := ids[dep]; !ok {
				return nil, fmt.Errorf("pass %q depends on non-existent pass %q", pass.Name, dep)
			}
		}
	}

	return ids, nil
}

// passNames maps node ids back to pass names for diagnostics.
func passNames(model *config.Model, nodeIDs []int) []string {
	names := make([]string, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		names = append(names, model.Passes[id].Name)
	}
	return names
}
