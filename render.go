package ce

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"

	"github.com/go-via/ce/dom"
)

// Scope resolves field values during a render pass.
type Scope interface {
	Get(name string) any
}

// childScope binds one loop variable and defers everything else to its parent.
type childScope struct {
	parent Scope
	name   string
	value  any
}

func (c childScope) Get(name string) any {
	if name == c.name {
		return c.value
	}
	return c.parent.Get(name)
}

// Renderer applies bindings to the DOM.
type Renderer struct {
	// OnClone runs for every list clone once it is inserted, before its
	// bindings are discovered and rendered.
	OnClone func(clone *dom.Node, scope Scope)
}

// Render renders the named fields of the table against scope with a zero Renderer.
func Render(names []string, t Table, scope Scope) error {
	return Renderer{}.Render(names, t, scope)
}

// Render applies every binding of the named fields in discovery order. A failing
// binding does not stop the others; all failures are joined.
func (r Renderer) Render(names []string, t Table, scope Scope) error {
	var errs []error
	for _, name := range names {
		for _, b := range t[name] {
			if err := r.apply(b, scope); err != nil {
				errs = append(errs, fmt.Errorf("%s binding %q: %w", b.Kind, name, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (r Renderer) apply(b *Binding, scope Scope) error {
	switch b.Kind {
	case BindingData:
		b.Target.SetTextContent(display(scope.Get(b.Field)))
	case BindingComputed:
		b.Target.SetAttribute(b.Attr, display(b.Lookup(scope)))
	case BindingList:
		return r.renderList(b, scope)
	default:
		return fmt.Errorf("unknown binding kind %d", b.Kind)
	}
	return nil
}

// renderList replaces the previous clones of a list binding with one clone per
// element of the source sequence. The template itself is swapped for a comment
// anchor on the first render so clones keep its position among siblings.
func (r Renderer) renderList(b *Binding, scope Scope) error {
	items, err := iterate(scope.Get(b.Field))
	if err != nil {
		return err
	}
	if b.Parent == nil {
		return errors.New("list template has no parent")
	}
	if b.anchor == nil {
		b.anchor = b.Target.Document().CreateComment(b.Var + " in " + b.Field)
		b.Parent.InsertBefore(b.anchor, b.Target)
		b.Target.Remove()
	}
	for _, c := range b.clones {
		c.Remove()
	}
	b.clones = make([]*dom.Node, 0, len(items))

	var errs []error
	for _, val := range items {
		clone := b.Target.CloneNode(true)
		clone.RemoveAttribute(markerFor)
		b.Parent.InsertBefore(clone, b.anchor)
		b.clones = append(b.clones, clone)

		child := childScope{parent: scope, name: b.Var, value: val}
		if r.OnClone != nil {
			r.OnClone(clone, child)
		}
		table, err := discoverClone(clone)
		if err != nil {
			errs = append(errs, err)
		}
		if err := r.Render(renderOrder(table, b.Var), table, child); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// renderOrder puts the loop variable first, then the remaining fields sorted.
func renderOrder(t Table, loopVar string) []string {
	names := []string{loopVar}
	for _, name := range slices.Sorted(maps.Keys(t)) {
		if name != loopVar {
			names = append(names, name)
		}
	}
	return names
}

// iterate materializes a list source. A nil source is an empty list; strings,
// maps and scalars are not iterable.
func iterate(v any) ([]any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case iter.Seq[any]:
		return slices.Collect(v), nil
	case func(func(any) bool):
		return slices.Collect(iter.Seq[any](v)), nil
	case string:
		return nil, fmt.Errorf("%w: string %q", ErrNotIterable, v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotIterable, v)
}
