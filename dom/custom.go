package dom

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotSupported     = errors.New("operation not supported")
	ErrInvalidName      = errors.New("invalid custom element name")
	ErrAlreadyDefined   = errors.New("custom element already defined")
	ErrTemplateNotFound = errors.New("template not found")
)

// CustomElement is the instance side of a custom element definition.
type CustomElement interface {
	ConnectedCallback()
	AttributeChangedCallback(name, oldValue, newValue string)
}

// Disconnecter is implemented by custom elements that want to know when they
// leave the document.
type Disconnecter interface {
	DisconnectedCallback()
}

// Definition describes a custom element kind.
type Definition struct {
	// ObservedAttributes lists the attributes whose changes are reported
	// through AttributeChangedCallback.
	ObservedAttributes []string
	// New constructs the instance for an upgraded host element.
	New func(host *Node) CustomElement
}

// Define registers a custom element kind and upgrades the matching elements
// already in the document. Connected ones receive ConnectedCallback.
func (d *Document) Define(name string, def Definition) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if def.New == nil {
		return fmt.Errorf("failed to define %q: nil constructor", name)
	}
	if _, ok := d.registry[name]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyDefined, name)
	}
	d.registry[name] = &def

	var pending []*Node
	var walk func(*Node)
	walk = func(p *Node) {
		for _, c := range p.children {
			if c.Type == ElementNode && c.Tag == name {
				pending = append(pending, c)
			}
			walk(c)
			if c.shadow != nil {
				walk(c.shadow)
			}
		}
	}
	walk(d.root)

	for _, n := range pending {
		d.upgrade(n)
		if n.IsConnected() && !n.connected {
			n.connected = true
			n.custom.ConnectedCallback()
		}
	}
	return nil
}

// Defined reports whether a custom element kind is registered under name.
func (d *Document) Defined(name string) bool {
	_, ok := d.registry[strings.ToLower(name)]
	return ok
}

func (d *Document) upgrade(n *Node) {
	def, ok := d.registry[n.Tag]
	if !ok || n.custom != nil {
		return
	}
	n.observed = make(map[string]bool, len(def.ObservedAttributes))
	for _, a := range def.ObservedAttributes {
		n.observed[strings.ToLower(a)] = true
	}
	n.custom = def.New(n)
}

func connectTree(n *Node) {
	if n.Type == ElementNode && n.custom != nil && !n.connected {
		n.connected = true
		n.custom.ConnectedCallback()
	}
	for _, c := range n.Children() {
		connectTree(c)
	}
	if n.shadow != nil {
		for _, c := range n.shadow.Children() {
			connectTree(c)
		}
	}
}

func disconnectTree(n *Node) {
	if n.custom != nil && n.connected {
		n.connected = false
		if dc, ok := n.custom.(Disconnecter); ok {
			dc.DisconnectedCallback()
		}
	}
	for _, c := range n.children {
		disconnectTree(c)
	}
	if n.shadow != nil {
		for _, c := range n.shadow.children {
			disconnectTree(c)
		}
	}
}

// validName applies the structural part of the custom element name rules:
// lowercase ASCII start and at least one hyphen.
func validName(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	if !strings.Contains(name, "-") {
		return false
	}
	return name == strings.ToLower(name)
}
