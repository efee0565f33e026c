package ce

import "github.com/go-via/ce/dom"

// Store is the reactive field accessor of one element instance. Methods and
// listeners receive it as their context.
type Store struct {
	el     *Element
	values map[string]any
}

func newStore(el *Element) *Store {
	return &Store{el: el, values: make(map[string]any)}
}

// Get resolves a field from the host attribute, then the last assigned value,
// then the schema default.
func (s *Store) Get(name string) any {
	if v, ok := s.el.host.Attr(name); ok {
		return v
	}
	if v, ok := s.values[name]; ok {
		return v
	}
	if f, ok := s.el.kind.schema.Field(name); ok {
		return f.Default
	}
	return nil
}

// Set records a value. Primitive values of reactive fields are reflected onto
// the host attribute, which re-renders through the attribute change callback.
// Other values of reactive fields re-render the field directly. Unknown fields
// are stored and never rendered.
func (s *Store) Set(name string, value any) {
	s.values[name] = value
	if !s.el.kind.schema.Has(name) {
		s.el.reg.logDebug(s.el, "stored non-reactive field %q", name)
		return
	}
	if isPrimitive(value) {
		s.el.host.SetAttribute(name, display(value))
		return
	}
	s.el.update(name)
}

// Host returns the element the store belongs to.
func (s *Store) Host() *dom.Node {
	return s.el.host
}

// Fields returns the reactive field names.
func (s *Store) Fields() []string {
	return s.el.kind.schema.Names()
}
