package ce

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-via/ce/dom"
)

// BindingKind tags a discovered binding.
type BindingKind int

const (
	BindingData BindingKind = iota
	BindingList
	BindingComputed
)

func (k BindingKind) String() string {
	switch k {
	case BindingData:
		return "data"
	case BindingList:
		return "list"
	case BindingComputed:
		return "computed"
	default:
		return "unknown"
	}
}

// Binding associates a field with a render action on one element.
type Binding struct {
	Kind BindingKind
	// Field is the field the binding reads.
	Field string
	// Target is the bound element. For list bindings it is the repeated template.
	Target *dom.Node

	// Parent is where list clones are inserted.
	Parent *dom.Node
	// Var is the loop variable of a list binding.
	Var string

	// Attr is the attribute a computed binding writes.
	Attr string
	// Lookup derives the computed attribute value from the active scope.
	Lookup func(Scope) any

	anchor *dom.Node
	clones []*dom.Node
}

// Table maps field names to their bindings in discovery order.
type Table map[string][]*Binding

// Count returns the number of distinct fields and the total binding count.
func (t Table) Count() (fields, bindings int) {
	for _, bs := range t {
		bindings += len(bs)
	}
	return len(t), bindings
}

const (
	markerData = "data"
	markerFor  = "for"
	markerBind = "bind"
)

var forExpr = regexp.MustCompile(`^\s*(\S+)\s+(in|of)\s+(\S+)\s*$`)

// Discover scans the descendants of root in document order for data, for and
// bind markers. One marker applies per element, in the order for, data, bind.
// The subtree of a for element is not scanned; its bindings are discovered per
// clone. Bindings with malformed markers are skipped and reported in the
// joined error while the rest of the table is still returned.
func Discover(root *dom.Node) (Table, error) {
	t := make(Table)
	var errs []error
	var walk func(*dom.Node)
	walk = func(p *dom.Node) {
		for _, c := range p.ElementChildren() {
			if err := t.add(c); err != nil {
				errs = append(errs, err)
			}
			if c.HasAttribute(markerFor) {
				continue
			}
			walk(c)
		}
	}
	walk(root)
	return t, errors.Join(errs...)
}

// discoverClone discovers the bindings of a list clone, including the clone
// itself. The clone's for marker has already been removed.
func discoverClone(clone *dom.Node) (Table, error) {
	t, err := Discover(clone)
	var errs []error
	if err != nil {
		errs = append(errs, err)
	}
	self := make(Table)
	if err := self.add(clone); err != nil {
		errs = append(errs, err)
	}
	for name, bs := range t {
		self[name] = append(self[name], bs...)
	}
	return self, errors.Join(errs...)
}

func (t Table) add(n *dom.Node) error {
	if expr, ok := n.Attr(markerFor); ok {
		loopVar, field, err := parseFor(expr)
		if err != nil {
			return err
		}
		t[field] = append(t[field], &Binding{
			Kind:   BindingList,
			Field:  field,
			Target: n,
			Parent: n.Parent(),
			Var:    loopVar,
		})
		return nil
	}
	if field, ok := n.Attr(markerData); ok {
		t[field] = append(t[field], &Binding{Kind: BindingData, Field: field, Target: n})
		return nil
	}
	if n.HasAttribute(markerBind) {
		var b *Binding
		for _, a := range n.Attrs() {
			attr, ok := strings.CutPrefix(a.Name, ":")
			if !ok || attr == "" {
				continue
			}
			b = &Binding{
				Kind:   BindingComputed,
				Field:  a.Value,
				Target: n,
				Attr:   attr,
				Lookup: lookupField(a.Value),
			}
		}
		if b != nil {
			t[b.Field] = append(t[b.Field], b)
		}
	}
	return nil
}

func lookupField(name string) func(Scope) any {
	return func(s Scope) any { return s.Get(name) }
}

func parseFor(expr string) (loopVar, field string, err error) {
	m := forExpr.FindStringSubmatch(expr)
	if m == nil {
		return "", "", fmt.Errorf("%w: %q", ErrBadForExpr, expr)
	}
	return m[1], m[3], nil
}
