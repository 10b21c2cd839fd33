package tools

import (
	"sync"

	"google.golang.org/adk/tool"
)

// Registry stores tools by name for discovery and lookup.
type Registry struct {
	tools map[string]tool.Tool
	mu    sync.RWMutex
}

// NewRegistry constructs an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]tool.Tool),
	}
}

// Register adds or replaces a tool under the provided name.
func (r *Registry) Register(name string, t tool.Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[name] = t
}

// Get retrieves a tool by name if registered.
func (r *Registry) Get(name string) (tool.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Resolve maps tool names to tool instances, failing on the first miss.
func (r *Registry) Resolve(names []string) ([]tool.Tool, error) {
	resolved := make([]tool.Tool, 0, len(names))
	for _, name := range names {
		t, ok := r.Get(name)
		if !ok {
			return nil, ErrUnknownTool(name)
		}
		resolved = append(resolved, t)
	}
	return resolved, nil
}

// List returns the names of all registered tools.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}

	return names
}
