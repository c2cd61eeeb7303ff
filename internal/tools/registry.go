package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Registry holds all registered tools. Registration order is preserved so
// that listings and the unknown-tool hint are stable.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates a registry holding the given tools.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Register adds a tool under its name. Re-registering a name replaces the
// tool but keeps its original position.
func (r *Registry) Register(t Tool) {
	name := t.Name()
	if _, ok := r.tools[name]; !ok {
		r.order = append(r.order, name)
	}
	r.tools[name] = t
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// All returns the tools in registration order.
func (r *Registry) All() []Tool {
	result := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.tools[name])
	}
	return result
}

// Dispatch runs the named tool and returns its observation. The name is
// trimmed and lowercased before lookup. An unregistered name produces a
// fixed observation listing the valid names, so the model can self-correct
// on its next turn instead of killing the session.
func (r *Registry) Dispatch(ctx context.Context, name, input string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	t, ok := r.tools[key]
	if !ok {
		return fmt.Sprintf("Unknown tool: %s. Available: %s", key, strings.Join(r.order, ", "))
	}
	slog.Debug("dispatching tool", "tool", key, "input_len", len(input))
	return t.Execute(ctx, input)
}
