// Package hcl_adapter implements the config.Loader interface for frame
// definitions written in HCL.
package hcl_adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/framegraphgo/internal/config"
	"github.com/vk/framegraphgo/internal/ctxlog"
	"github.com/vk/framegraphgo/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL frame loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every frame file reachable from the given paths and merges
// the declared passes and resources into a single model. Declaration
// order is preserved within a file and across files in path order; the
// scheduler later reads that order as access chronology.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findFrameFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL frame files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Passes {
			pass, err := l.translatePass(ctx, block)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			model.Passes = append(model.Passes, pass)
		}
		for _, block := range root.Resources {
			res, err := l.translateResource(block)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			model.Resources = append(model.Resources, res)
		}
	}

	logger.Debug("HCL loading complete.", "passes", len(model.Passes), "resources", len(model.Resources))
	return model, nil
}

// findFrameFiles expands the given paths into a flat list of frame
// files: plain files are taken as-is, directories are scanned
// recursively for the .hcl extension. Every path must exist.
func (l *Loader) findFrameFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, ok := seen[p]; !ok {
			files = append(files, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				add(f)
			}
			continue
		}
		add(path)
	}

	return files, nil
}
