package cli

import "sort"

// Handler executes one REPL command against the session.
type Handler func(r *Repl, args []string) error

// CommandSpec describes a registered REPL command.
type CommandSpec struct {
	Name    string
	Help    string
	Aliases []string
	Handler Handler
}

// Registry maps command names (and aliases) to handlers. It is populated
// once at session start.
type Registry struct {
	specs   map[string]CommandSpec
	aliases map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		specs:   make(map[string]CommandSpec),
		aliases: make(map[string]string),
	}
}

// Register adds a command and its aliases. A later registration under the
// same name replaces the earlier one.
func (r *Registry) Register(spec CommandSpec) {
	r.specs[spec.Name] = spec
	for _, alias := range spec.Aliases {
		r.aliases[alias] = spec.Name
	}
}

// Resolve looks up a command by canonical name or alias.
func (r *Registry) Resolve(name string) (CommandSpec, bool) {
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	spec, ok := r.specs[name]
	return spec, ok
}

// Specs returns all commands in a stable alphabetical order.
func (r *Registry) Specs() []CommandSpec {
	specs := make([]CommandSpec, 0, len(r.specs))
	for _, spec := range r.specs {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs
}
