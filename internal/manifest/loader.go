package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/optsift/internal/ctxlog"
	"github.com/vk/optsift/internal/fsutil"
	"github.com/vk/optsift/internal/schema"
)

// Loader is the HCL implementation of the schema.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers .hcl files under the given paths, decodes every command
// block, and translates the blocks into command schemas keyed by name.
func (l *Loader) Load(ctx context.Context, paths ...string) (map[string]*schema.Command, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	commands := make(map[string]*schema.Command)
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest %s: %w", file, diags)
		}

		for _, cb := range root.Commands {
			cmd, err := l.translateCommand(ctx, cb)
			if err != nil {
				return nil, err
			}
			if _, exists := commands[cmd.Name]; exists {
				return nil, fmt.Errorf("duplicate command %q declared in %s", cmd.Name, file)
			}
			commands[cmd.Name] = cmd
		}
	}

	logger.Debug("Manifest loading complete.", "commands", len(commands))
	return commands, nil
}
