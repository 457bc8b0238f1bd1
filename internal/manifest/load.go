package manifest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/assemblygo/internal/ctxlog"
)

// Load parses the manifest at path, which may be a single .hcl file or a
// directory searched recursively. Files are processed in lexical path order
// so the resulting component order, and therefore the build tie-break, is
// stable.
func Load(ctx context.Context, path string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := discover(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl manifest files found at %s", path)
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	parser := hclparse.NewParser()
	manifest := &Manifest{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var schema fileSchema
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &schema); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		for _, block := range schema.Components {
			component, err := decodeComponent(block)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			manifest.Components = append(manifest.Components, component)
		}
		for _, block := range schema.Wires {
			manifest.Wires = append(manifest.Wires, Wire{
				Target: block.Target,
				Source: block.Source,
				Field:  block.Field,
			})
		}
	}

	logger.Debug("Manifest loaded.",
		"components", len(manifest.Components), "wires", len(manifest.Wires))
	return manifest, nil
}

// discover resolves path into the list of manifest files it names: the path
// itself for a regular file, or every .hcl file under it for a directory.
func discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access manifest path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// decodeComponent converts one parsed component block, evaluating its config
// attributes into Go values.
func decodeComponent(block *componentBlock) (Component, error) {
	component := Component{
		Type:      block.Type,
		Name:      block.Name,
		DependsOn: block.DependsOn,
	}
	if block.Name == "" {
		return component, fmt.Errorf("component of type %q has an empty instance name", block.Type)
	}

	if block.Config != nil {
		attrs, diags := block.Config.Body.JustAttributes()
		if diags.HasErrors() {
			return component, fmt.Errorf("component %q: invalid config block: %w", block.Name, diags)
		}

		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		sort.Strings(names)

		component.Config = make(map[string]any, len(attrs))
		for _, name := range names {
			val, diags := attrs[name].Expr.Value(nil)
			if diags.HasErrors() {
				return component, fmt.Errorf("component %q: config attribute %q: %w", block.Name, name, diags)
			}
			goVal, err := ctyToGo(val)
			if err != nil {
				return component, fmt.Errorf("component %q: config attribute %q: %w", block.Name, name, err)
			}
			component.Config[name] = goVal
		}
	}
	return component, nil
}
