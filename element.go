package ce

import "github.com/go-via/ce/dom"

// Element is one instance of a defined component. It is the custom element
// the document calls back into.
type Element struct {
	reg   *Registry
	kind  *kind
	host  *dom.Node
	root  *dom.Node
	store *Store
	table Table
	wired bool
}

func newElement(r *Registry, k *kind, host *dom.Node) *Element {
	e := &Element{reg: r, kind: k, host: host}
	e.store = newStore(e)
	root, err := host.AttachShadow()
	if err != nil {
		r.logWarn(e, "reusing existing shadow root: %v", err)
	} else {
		root.AppendChild(k.content.CloneNode(true))
	}
	e.root = root
	return e
}

// Lookup returns the component instance a node was upgraded to.
func Lookup(n *dom.Node) (*Element, bool) {
	if n == nil {
		return nil, false
	}
	e, ok := n.Custom().(*Element)
	return e, ok
}

func (e *Element) Host() *dom.Node {
	return e.host
}

func (e *Element) ShadowRoot() *dom.Node {
	return e.root
}

func (e *Element) Store() *Store {
	return e.store
}

// Bindings returns the binding table of the shadow root, discovering it on
// first use.
func (e *Element) Bindings() (Table, error) {
	if e.table != nil {
		return e.table, nil
	}
	t, err := Discover(e.root)
	e.table = t
	return t, err
}

// Slots returns the <slot> elements of the shadow root by name. The unnamed
// slot is keyed by "".
func (e *Element) Slots() map[string]*dom.Node {
	slots := make(map[string]*dom.Node)
	for _, s := range e.root.QueryTag("slot") {
		name := s.GetAttribute("name")
		if _, dup := slots[name]; dup {
			e.reg.logWarn(e, "duplicate slot %q", name)
			continue
		}
		slots[name] = s
	}
	return slots
}

// ConnectedCallback wires event markers once and renders every field.
func (e *Element) ConnectedCallback() {
	if !e.wired {
		e.wireEvents(e.root)
		e.wired = true
	}
	e.render(e.kind.schema.Names()...)
}

// AttributeChangedCallback re-renders the field behind an observed attribute
// and runs its watcher.
func (e *Element) AttributeChangedCallback(name, oldValue, newValue string) {
	field, ok := e.kind.attrField[name]
	if !ok {
		return
	}
	e.reg.logDebug(e, "attribute %q changed %q -> %q", name, oldValue, newValue)
	e.update(field)
}

func (e *Element) update(field string) {
	e.render(field)
	if f, ok := e.kind.schema.Field(field); ok && f.Watcher != nil {
		f.Watcher(e.store, e.store.Get(field))
	}
}

func (e *Element) render(names ...string) {
	table, err := e.Bindings()
	if err != nil {
		e.reg.logErr(e, "binding discovery failed: %v", err)
	}
	r := Renderer{OnClone: func(clone *dom.Node, _ Scope) {
		e.wireEvents(clone)
		e.wireNode(clone)
	}}
	e.reg.logDebug(e, "render fields=%v", names)
	if err := r.Render(names, table, e.store); err != nil {
		e.reg.logErr(e, "render failed: %v", err)
	}
}
