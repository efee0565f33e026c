// Package vtest mounts components into an in-memory document and drives them
// the way a user would: clicking, editing attributes and reading the rendered
// shadow tree.
package vtest

import (
	"regexp"
	"strings"
	"testing"

	"github.com/go-via/ce"
	"github.com/go-via/ce/dom"
	"github.com/go-via/ce/h"
)

// Page is a document with a component registry.
type Page struct {
	doc *dom.Document
	reg *ce.Registry
}

// Visit builds a page from body markup and defines the given components on it.
// The markup carries the templates and the element usages.
func Visit(t any, body h.H, defs ...ce.Definition) *Page {
	tb := t.(testing.TB)
	tb.Helper()

	markup, err := h.Render(body)
	if err != nil {
		tb.Fatalf("failed to render page markup: %v", err)
	}
	return VisitHTML(tb, markup, defs...)
}

// VisitHTML is like Visit with raw markup.
func VisitHTML(t any, markup string, defs ...ce.Definition) *Page {
	tb := t.(testing.TB)
	tb.Helper()

	doc := dom.New()
	if err := doc.AppendHTML(doc.Body(), markup); err != nil {
		tb.Fatalf("failed to parse page markup: %v", err)
	}
	reg := ce.New(doc)
	reg.Config(ce.Options{LogLvl: ce.LogLevelError})
	for _, def := range defs {
		if err := reg.Define(def); err != nil {
			tb.Fatalf("failed to define %q: %v", def.ID, err)
		}
	}
	return &Page{doc: doc, reg: reg}
}

func (p *Page) Document() *dom.Document {
	return p.doc
}

func (p *Page) Registry() *ce.Registry {
	return p.reg
}

// Component returns the component whose host has the given id, falling back
// to the first host with that tag name.
func (p *Page) Component(t any, ref string) *Component {
	tb := t.(testing.TB)
	tb.Helper()

	host := p.doc.Root().Query(func(n *dom.Node) bool {
		_, ok := ce.Lookup(n)
		return ok && n.GetAttribute("id") == ref
	})
	if host == nil {
		host = p.doc.Root().Query(func(n *dom.Node) bool {
			_, ok := ce.Lookup(n)
			return ok && n.Tag == ref
		})
	}
	el, ok := ce.Lookup(host)
	if !ok {
		tb.Fatalf("no component %q on page, html:\n%s", ref, p.doc.Root().OuterHTML())
	}
	return &Component{tb: tb, el: el}
}

// Component is a mounted component instance under test.
type Component struct {
	tb testing.TB
	el *ce.Element
}

func (c *Component) Element() *ce.Element {
	return c.el
}

func (c *Component) Store() *ce.Store {
	return c.el.Store()
}

// Click clicks the first shadow element with a @click marker whose text is
// label or whose marker names label.
func (c *Component) Click(label string) error {
	c.tb.Helper()

	target := c.el.ShadowRoot().Query(func(n *dom.Node) bool {
		method, ok := n.Attr("@click")
		return ok && (method == label || collapse(n.TextContent()) == label)
	})
	if target == nil {
		c.tb.Fatalf("nothing to click for %q, html:\n%s", label, c.HTML())
	}
	return target.Click()
}

// SetAttr sets an attribute on the host, as markup or a parent component would.
func (c *Component) SetAttr(name, value string) {
	c.el.Host().SetAttribute(name, value)
}

// Text returns the visible text of the shadow tree with whitespace collapsed.
func (c *Component) Text() string {
	return collapse(c.el.ShadowRoot().TextContent())
}

// HTML returns the serialized shadow tree.
func (c *Component) HTML() string {
	return c.el.ShadowRoot().InnerHTML()
}

// All returns the shadow elements with the given tag.
func (c *Component) All(tag string) []*dom.Node {
	return c.el.ShadowRoot().QueryTag(tag)
}

// AssertText asserts the shadow tree contains the given text.
func (c *Component) AssertText(t any, text string) {
	tb := t.(testing.TB)
	tb.Helper()

	if !strings.Contains(c.Text(), text) {
		tb.Fatalf("expected component to contain %q, html:\n%s", text, c.HTML())
	}
}

// AssertAttr asserts the first shadow element with tag has attr set to want.
func (c *Component) AssertAttr(t any, tag, attr, want string) {
	tb := t.(testing.TB)
	tb.Helper()

	els := c.All(tag)
	if len(els) == 0 {
		tb.Fatalf("no <%s> in component, html:\n%s", tag, c.HTML())
	}
	if got := els[0].GetAttribute(attr); got != want {
		tb.Fatalf("expected <%s %s=%q>, got %q", tag, attr, want, got)
	}
}

var whitespace = regexp.MustCompile(`\s+`)

func collapse(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
