package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/optsift/internal/schema"
)

// Registry maps command names to their declared option schemas for a
// single application instance.
type Registry struct {
	commands map[string]*schema.Command
}

// New creates and initializes an empty Registry.
func New() *Registry {
	return &Registry{
		commands: make(map[string]*schema.Command),
	}
}

// Register adds one command schema. Registering the same name twice is a
// programmer error.
func (r *Registry) Register(cmd *schema.Command) {
	if _, exists := r.commands[cmd.Name]; exists {
		panic(fmt.Sprintf("command %q already registered", cmd.Name))
	}
	slog.Debug("Registering command.", "name", cmd.Name, "options", len(cmd.Options))
	r.commands[cmd.Name] = cmd
}

// PopulateFromCommands copies loaded command schemas into the registry.
func (r *Registry) PopulateFromCommands(cmds map[string]*schema.Command) {
	for _, cmd := range cmds {
		r.Register(cmd)
	}
}

// Lookup returns the schema for a command name.
func (r *Registry) Lookup(name string) (*schema.Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
