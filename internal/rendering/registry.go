package rendering

// DefaultTemplateID is used when an export request leaves the template unset.
const DefaultTemplateID = "minimal"

// Registry maps template IDs to renderers. Registration happens once at
// startup; afterwards the registry is read-only and safe for concurrent
// reads without locking.
type Registry struct {
	templates map[string]Template
	order     []string
}

// NewRegistry creates an empty template registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]Template)}
}

// Register adds a template under its own ID. Registering the same ID twice
// replaces the earlier template but keeps its listing position.
func (reg *Registry) Register(t Template) {
	id := t.Info().ID
	if _, exists := reg.templates[id]; !exists {
		reg.order = append(reg.order, id)
	}
	reg.templates[id] = t
}

// Get resolves a template by ID. An unregistered ID yields a
// TemplateNotFoundError.
func (reg *Registry) Get(id string) (Template, error) {
	t, ok := reg.templates[id]
	if !ok {
		return nil, &TemplateNotFoundError{ID: id}
	}
	return t, nil
}

// List returns the available templates in registration order.
func (reg *Registry) List() []TemplateInfo {
	infos := make([]TemplateInfo, 0, len(reg.order))
	for _, id := range reg.order {
		infos = append(infos, reg.templates[id].Info())
	}
	return infos
}

// DefaultRegistry returns a registry populated with the built-in templates.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(NewMinimalTemplate())
	reg.Register(NewStandardTemplate())
	return reg
}
