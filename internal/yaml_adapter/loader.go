// Package yaml_adapter implements the config.Loader interface for frame
// definitions written in YAML.
package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	"gopkg.in/yaml.v3"

	"github.com/vk/framegraphgo/internal/config"
	"github.com/vk/framegraphgo/internal/ctxlog"
	"github.com/vk/framegraphgo/internal/fsutil"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML frame loader.
func NewLoader() *Loader {
	return &Loader{}
}

// frameFile mirrors the structure of a YAML frame document.
type frameFile struct {
	Resources []resourceEntry `yaml:"resources"`
	Passes    []passEntry     `yaml:"passes"`
}

type passEntry struct {
	Runner    string         `yaml:"runner"`
	Name      string         `yaml:"name"`
	Reads     []string       `yaml:"reads"`
	Writes    []string       `yaml:"writes"`
	DependsOn []string       `yaml:"depends_on"`
	Params    map[string]any `yaml:"params"`
}

type resourceEntry struct {
	Kind   string         `yaml:"kind"`
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

// Load parses every frame file reachable from the given paths and merges
// the declared passes and resources into a single model, preserving
// declaration order. Files are matched on the .yaml and .yml extensions
// when a directory is given.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := l.findFrameFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML frame files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		if err := l.loadFile(file, model); err != nil {
			return nil, err
		}
	}

	logger.Debug("YAML loading complete.", "passes", len(model.Passes), "resources", len(model.Resources))
	return model, nil
}

// loadFile decodes one YAML document and appends its blocks to the model.
func (l *Loader) loadFile(file string, model *config.Model) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read YAML file %s: %w", file, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	// Unknown keys are almost always typos in a hand-written frame.
	decoder.KnownFields(true)

	var root frameFile
	if err := decoder.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty file
		}
		return fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}

	for _, entry := range root.Resources {
		params, err := convertParams(entry.Params)
		if err != nil {
			return fmt.Errorf("in file %s, resource %q: %w", file, entry.Name, err)
		}
		model.Resources = append(model.Resources, &config.Resource{
			Kind:   entry.Kind,
			Name:   entry.Name,
			Params: params,
		})
	}
	for _, entry := range root.Passes {
		params, err := convertParams(entry.Params)
		if err != nil {
			return fmt.Errorf("in file %s, pass %q: %w", file, entry.Name, err)
		}
		model.Passes = append(model.Passes, &config.Pass{
			Runner:    entry.Runner,
			Name:      entry.Name,
			Reads:     entry.Reads,
			Writes:    entry.Writes,
			DependsOn: entry.DependsOn,
			Params:    params,
		})
	}
	return nil
}

// convertParams brings YAML-decoded param values into the cty type system
// shared with the HCL path. Scalars (strings, numbers, bools) cover the
// frame language; anything gocty cannot type is rejected.
func convertParams(raw map[string]any) (map[string]cty.Value, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	params := make(map[string]cty.Value, len(raw))
	for name, value := range raw {
		ty, err := gocty.ImpliedType(value)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", name, err)
		}
		val, err := gocty.ToCtyValue(value, ty)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", name, err)
		}
		params[name] = val
	}
	return params, nil
}

// findFrameFiles expands the given paths into a flat list of frame files.
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
			found, err := fsutil.FindFilesByExtensions(path, ".yaml", ".yml")
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
