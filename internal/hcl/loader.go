package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/varforge/internal/config"
	"github.com/vk/varforge/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths and merges the declared
// variables and conditions into a single model, preserving file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := translateFile(hclFile.Body, model); err != nil {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, err)
		}
	}

	logger.Debug("HCL loading complete.", "variables", len(model.Variables), "conditions", len(model.Conditions))
	return model, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl
// files found. A missing path is skipped, not an error.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && filepath.Ext(p) == ".hcl" {
					if _, wasSeen := seen[p]; !wasSeen {
						allFiles = append(allFiles, p)
						seen[p] = struct{}{}
					}
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			if _, wasSeen := seen[path]; !wasSeen {
				allFiles = append(allFiles, path)
				seen[path] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
