// Package dom is a small in-memory document with the custom-element hooks that
// components are built on: template content, open shadow roots, observed
// attributes, connection callbacks and bubbling events.
//
// Markup is parsed and serialized with golang.org/x/net/html. Shadow roots are
// serialized as declarative shadow DOM (<template shadowrootmode="open">).
package dom

import (
	"slices"
	"strings"
)

type NodeType int

const (
	undefinedNode NodeType = iota
	ElementNode
	TextNode
	CommentNode
	FragmentNode
	DocumentNode
)

// Attr is a single element attribute. Names are stored lowercase.
type Attr struct {
	Name  string
	Value string
}

// Node is an element, text, comment, fragment or document node.
type Node struct {
	Type NodeType
	// Tag is the lowercase element name.
	Tag string
	// Data is the text of text and comment nodes.
	Data string

	doc       *Document
	parent    *Node
	children  []*Node
	attrs     []Attr
	content   *Node
	shadow    *Node
	host      *Node
	listeners map[string][]Listener

	custom    CustomElement
	observed  map[string]bool
	connected bool
}

func (n *Node) Document() *Document {
	return n.doc
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a snapshot of the child nodes.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// ElementChildren returns the child nodes that are elements.
func (n *Node) ElementChildren() []*Node {
	var els []*Node
	for _, c := range n.children {
		if c.Type == ElementNode {
			els = append(els, c)
		}
	}
	return els
}

// Content returns the content fragment of a <template> element.
func (n *Node) Content() *Node {
	return n.content
}

// Custom returns the custom element instance a node was upgraded to, if any.
func (n *Node) Custom() CustomElement {
	return n.custom
}

func (n *Node) Attr(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *Node) GetAttribute(name string) string {
	v, _ := n.Attr(name)
	return v
}

func (n *Node) HasAttribute(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// Attrs returns the attributes in declaration order.
func (n *Node) Attrs() []Attr {
	return slices.Clone(n.attrs)
}

// SetAttribute sets an attribute. Upgraded custom elements are notified through
// AttributeChangedCallback when the attribute is observed and its value changed.
func (n *Node) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	old, had := n.Attr(name)
	if had {
		for i := range n.attrs {
			if n.attrs[i].Name == name {
				n.attrs[i].Value = value
				break
			}
		}
	} else {
		n.attrs = append(n.attrs, Attr{Name: name, Value: value})
	}
	if had && old == value {
		return
	}
	n.attributeChanged(name, old, value)
}

func (n *Node) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	i := slices.IndexFunc(n.attrs, func(a Attr) bool { return a.Name == name })
	if i < 0 {
		return
	}
	old := n.attrs[i].Value
	n.attrs = slices.Delete(n.attrs, i, i+1)
	n.attributeChanged(name, old, "")
}

func (n *Node) attributeChanged(name, old, value string) {
	if n.custom != nil && n.observed[name] {
		n.custom.AttributeChangedCallback(name, old, value)
	}
}

// TextContent returns the concatenated text of all descendant text nodes.
func (n *Node) TextContent() string {
	switch n.Type {
	case TextNode, CommentNode:
		return n.Data
	}
	var b strings.Builder
	var walk func(*Node)
	walk = func(p *Node) {
		for _, c := range p.children {
			if c.Type == TextNode {
				b.WriteString(c.Data)
			} else if c.Type == ElementNode {
				walk(c)
			}
		}
	}
	walk(n)
	return b.String()
}

// SetTextContent replaces all children with a single text node.
func (n *Node) SetTextContent(s string) {
	if n.Type == TextNode || n.Type == CommentNode {
		n.Data = s
		return
	}
	for _, c := range n.Children() {
		n.RemoveChild(c)
	}
	if s != "" {
		n.AppendChild(&Node{Type: TextNode, Data: s, doc: n.doc})
	}
}

// AppendChild appends c, detaching it from its previous parent. Appending a
// fragment moves the fragment's children instead.
func (n *Node) AppendChild(c *Node) *Node {
	return n.InsertBefore(c, nil)
}

// InsertBefore inserts c before ref. A nil ref appends.
func (n *Node) InsertBefore(c, ref *Node) *Node {
	if c.Type == FragmentNode {
		for _, fc := range c.Children() {
			n.InsertBefore(fc, ref)
		}
		return c
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	i := len(n.children)
	if ref != nil {
		if j := slices.Index(n.children, ref); j >= 0 {
			i = j
		}
	}
	n.children = slices.Insert(n.children, i, c)
	c.parent = n
	if n.IsConnected() {
		connectTree(c)
	}
	return c
}

func (n *Node) RemoveChild(c *Node) *Node {
	i := slices.Index(n.children, c)
	if i < 0 {
		return c
	}
	n.children = slices.Delete(n.children, i, i+1)
	c.parent = nil
	disconnectTree(c)
	return c
}

// Remove detaches the node from its parent.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// IsConnected reports whether the node is reachable from a document node,
// crossing shadow roots to their hosts.
func (n *Node) IsConnected() bool {
	for p := n; p != nil; {
		if p.Type == DocumentNode {
			return true
		}
		if p.parent != nil {
			p = p.parent
		} else {
			p = p.host
		}
	}
	return false
}

// CloneNode copies the node. Listeners and shadow roots are not copied.
// Clones of defined custom element tags are upgraded.
func (n *Node) CloneNode(deep bool) *Node {
	c := &Node{
		Type:  n.Type,
		Tag:   n.Tag,
		Data:  n.Data,
		doc:   n.doc,
		attrs: slices.Clone(n.attrs),
	}
	if deep {
		for _, child := range n.children {
			c.AppendChild(child.CloneNode(true))
		}
		if n.content != nil {
			c.content = n.content.CloneNode(true)
		}
	}
	if c.Type == ElementNode && n.doc != nil {
		n.doc.upgrade(c)
	}
	return c
}

// AttachShadow attaches an open shadow root to an element.
func (n *Node) AttachShadow() (*Node, error) {
	if n.Type != ElementNode {
		return nil, ErrNotSupported
	}
	if n.shadow != nil {
		return n.shadow, ErrNotSupported
	}
	n.shadow = &Node{Type: FragmentNode, doc: n.doc, host: n}
	return n.shadow, nil
}

func (n *Node) ShadowRoot() *Node {
	return n.shadow
}

// Host returns the host element of a shadow root.
func (n *Node) Host() *Node {
	return n.host
}

// QueryAll returns the descendant elements matching fn in document order.
// Template content and shadow trees are not searched.
func (n *Node) QueryAll(fn func(*Node) bool) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(p *Node) {
		for _, c := range p.children {
			if c.Type != ElementNode {
				continue
			}
			if fn(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// QueryAttr returns the descendant elements carrying the attribute name.
func (n *Node) QueryAttr(name string) []*Node {
	return n.QueryAll(func(c *Node) bool { return c.HasAttribute(name) })
}

// Query returns the first descendant element matching fn.
func (n *Node) Query(fn func(*Node) bool) *Node {
	if found := n.QueryAll(fn); len(found) > 0 {
		return found[0]
	}
	return nil
}

// QueryTag returns the descendant elements with the given tag name.
func (n *Node) QueryTag(tag string) []*Node {
	tag = strings.ToLower(tag)
	return n.QueryAll(func(c *Node) bool { return c.Tag == tag })
}
