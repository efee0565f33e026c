package ce

import (
	"iter"
	"maps"
	"reflect"
	"slices"
)

// FieldKind classifies a declared field once, at definition time.
type FieldKind int

const (
	KindDefault FieldKind = iota
	KindWatched
	KindDefaultAndWatched
	KindSequence
)

func (k FieldKind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindWatched:
		return "watched"
	case KindDefaultAndWatched:
		return "default+watched"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Watcher runs after a reactive field changed and was re-rendered.
type Watcher func(s *Store, value any)

// Field declares a field with an explicit default, watcher or both.
// It is also the resolved schema entry.
type Field struct {
	Name    string
	Kind    FieldKind
	Default any
	Watcher Watcher
}

// Schema is the immutable set of reactive fields of a component kind.
type Schema struct {
	fields map[string]Field
	names  []string
}

// NewSchema resolves the data declarations of a definition:
// a Watcher (or func(*Store, any)) declares a watched field with no default,
// a Field supplies a default, a watcher or both, a slice, array or
// iter.Seq[any] declares a sequence and anything else is a static default.
func NewSchema(data map[string]any) Schema {
	s := Schema{fields: make(map[string]Field, len(data))}
	for _, name := range slices.Sorted(maps.Keys(data)) {
		f := resolveField(data[name])
		f.Name = name
		s.fields[name] = f
	}
	s.names = slices.Sorted(maps.Keys(s.fields))
	return s
}

func resolveField(v any) Field {
	switch v := v.(type) {
	case Watcher:
		return Field{Kind: KindWatched, Watcher: v}
	case func(*Store, any):
		return Field{Kind: KindWatched, Watcher: v}
	case Field:
		switch {
		case v.Watcher != nil && v.Default != nil:
			v.Kind = KindDefaultAndWatched
		case v.Watcher != nil:
			v.Kind = KindWatched
		case isSequence(v.Default):
			v.Kind = KindSequence
		default:
			v.Kind = KindDefault
		}
		return v
	}
	if isSequence(v) {
		return Field{Kind: KindSequence, Default: v}
	}
	return Field{Kind: KindDefault, Default: v}
}

func isSequence(v any) bool {
	if v == nil {
		return false
	}
	switch v.(type) {
	case iter.Seq[any], func(func(any) bool):
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func (s Schema) Field(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Has reports whether name is a reactive field.
func (s Schema) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// Names returns the field names in sorted order.
func (s Schema) Names() []string {
	return slices.Clone(s.names)
}

func (s Schema) Len() int {
	return len(s.names)
}
