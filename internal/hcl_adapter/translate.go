// This file translates the HCL schema structs into the format-agnostic
// frame model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/framegraphgo/internal/config"
	"github.com/vk/framegraphgo/internal/ctxlog"
)

// translatePass converts an HCL pass block into the agnostic model.
func (l *Loader) translatePass(ctx context.Context, b *passBlock) (*config.Pass, error) {
	logger := ctxlog.FromContext(ctx).With("pass_runner", b.Runner, "pass_name", b.Name)
	logger.Debug("Translating HCL pass to internal config model.")

	params, err := extractParams(b.Params)
	if err != nil {
		return nil, fmt.Errorf("in pass %q: %w", b.Name, err)
	}

	return &config.Pass{
		Runner:    b.Runner,
		Name:      b.Name,
		Reads:     b.Reads,
		Writes:    b.Writes,
		DependsOn: b.DependsOn,
		Params:    params,
	}, nil
}

// translateResource converts an HCL resource block into the agnostic model.
func (l *Loader) translateResource(b *resourceBlock) (*config.Resource, error) {
	params, err := extractParams(b.Params)
	if err != nil {
		return nil, fmt.Errorf("in resource %q: %w", b.Name, err)
	}

	return &config.Resource{
		Kind:   b.Kind,
		Name:   b.Name,
		Params: params,
	}, nil
}

// extractParams evaluates the attributes of a params block into values.
// Evaluation runs without a context, so only literal values are allowed;
// references to other blocks are not part of the frame language.
func extractParams(block *paramsBlock) (map[string]cty.Value, error) {
	if block == nil || block.Body == nil {
		return nil, nil
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	if len(attrs) == 0 {
		return nil, nil
	}

	params := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid value for param %q: %w", name, diags)
		}
		params[name] = val
	}
	return params, nil
}
