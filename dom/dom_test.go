package dom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	host         *Node
	connected    int
	disconnected int
	changes      [][3]string
}

func (r *recorder) ConnectedCallback() { r.connected++ }

func (r *recorder) DisconnectedCallback() { r.disconnected++ }

func (r *recorder) AttributeChangedCallback(name, old, value string) {
	r.changes = append(r.changes, [3]string{name, old, value})
}

func TestParse_TemplateContent(t *testing.T) {
	doc, err := ParseString(`<template id="x-t"><p>hi</p></template><div id="d"></div>`)
	require.NoError(t, err)

	content, err := doc.TemplateContent("x-t")
	require.NoError(t, err)
	assert.Equal(t, FragmentNode, content.Type)
	assert.Equal(t, "hi", content.TextContent())
	assert.Empty(t, doc.GetElementByID("x-t").Children(), "template children live in its content")

	_, err = doc.TemplateContent("d")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	_, err = doc.TemplateContent("nope")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestNode_Attributes(t *testing.T) {
	doc := New()
	n := doc.CreateElement("DIV")

	assert.Equal(t, "div", n.Tag)
	n.SetAttribute("Title", "a")
	v, ok := n.Attr("title")
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, []Attr{{Name: "title", Value: "a"}}, n.Attrs())

	n.SetAttribute("title", "b")
	assert.Equal(t, "b", n.GetAttribute("TITLE"))
	assert.Len(t, n.Attrs(), 1)

	n.RemoveAttribute("title")
	assert.False(t, n.HasAttribute("title"))
}

func TestNode_TreeOps(t *testing.T) {
	doc := New()
	parent := doc.CreateElement("ul")
	a := parent.AppendChild(doc.CreateElement("li"))
	c := parent.AppendChild(doc.CreateElement("li"))
	b := parent.InsertBefore(doc.CreateElement("li"), c)
	a.SetTextContent("a")
	b.SetTextContent("b")
	c.SetTextContent("c")

	assert.Equal(t, "abc", parent.TextContent())
	assert.Same(t, parent, b.Parent())

	other := doc.CreateElement("ol")
	other.AppendChild(b)
	assert.Equal(t, "ac", parent.TextContent())
	assert.Equal(t, "b", other.TextContent())

	c.Remove()
	assert.Nil(t, c.Parent())
	assert.Equal(t, "a", parent.TextContent())

	a.SetTextContent("")
	assert.Empty(t, a.Children())
}

func TestNode_AppendFragmentMovesChildren(t *testing.T) {
	doc := New()
	frag, err := doc.ParseFragment(`<b>1</b><i>2</i>`)
	require.NoError(t, err)

	div := doc.CreateElement("div")
	div.AppendChild(frag)

	assert.Len(t, div.ElementChildren(), 2)
	assert.Empty(t, frag.Children())
}

func TestNode_CloneNode(t *testing.T) {
	doc := New()
	frag, err := doc.ParseFragment(`<div class="x"><span>t</span></div>`)
	require.NoError(t, err)
	div := frag.ElementChildren()[0]
	div.AddEventListener("click", func(*Event) error { return nil })

	shallow := div.CloneNode(false)
	assert.Equal(t, "x", shallow.GetAttribute("class"))
	assert.Empty(t, shallow.Children())

	deep := div.CloneNode(true)
	assert.Equal(t, "t", deep.TextContent())
	assert.Equal(t, 0, deep.Listeners("click"))
	assert.Nil(t, deep.Parent())

	deep.SetAttribute("class", "y")
	assert.Equal(t, "x", div.GetAttribute("class"))
}

func TestNode_Query(t *testing.T) {
	doc, err := ParseString(`<div><p data="a"></p><section><p>b</p></section></div><template id="t"><p data="c"></p></template>`)
	require.NoError(t, err)
	root := doc.Root()

	assert.Len(t, root.QueryTag("p"), 2, "template content is not searched")
	assert.Len(t, root.QueryAttr("data"), 1)
	assert.Equal(t, "b", root.Query(func(n *Node) bool { return n.Tag == "p" && !n.HasAttribute("data") }).TextContent())
	assert.Nil(t, root.Query(func(*Node) bool { return false }))
}

func TestEvent_BubblesAcrossShadowRoot(t *testing.T) {
	doc := New()
	host := doc.Body().AppendChild(doc.CreateElement("div"))
	shadow, err := host.AttachShadow()
	require.NoError(t, err)
	button := shadow.AppendChild(doc.CreateElement("button"))

	var path []string
	host.AddEventListener("click", func(e *Event) error {
		path = append(path, "host")
		assert.Same(t, button, e.Target)
		assert.Same(t, host, e.CurrentTarget)
		return nil
	})
	button.AddEventListener("click", func(*Event) error {
		path = append(path, "button")
		return errors.New("boom")
	})

	err = button.Click()
	assert.EqualError(t, err, "boom")
	assert.Equal(t, []string{"button", "host"}, path)
}

func TestEvent_StopPropagation(t *testing.T) {
	doc := New()
	outer := doc.CreateElement("div")
	inner := outer.AppendChild(doc.CreateElement("span"))
	outerHits := 0
	outer.AddEventListener("click", func(*Event) error { outerHits++; return nil })
	inner.AddEventListener("click", func(e *Event) error { e.StopPropagation(); return nil })

	require.NoError(t, inner.Click())
	assert.Equal(t, 0, outerHits)
}

func TestAttachShadow_Twice(t *testing.T) {
	doc := New()
	n := doc.CreateElement("div")
	first, err := n.AttachShadow()
	require.NoError(t, err)

	second, err := n.AttachShadow()
	assert.ErrorIs(t, err, ErrNotSupported)
	assert.Same(t, first, second)
	assert.Same(t, n, first.Host())
}

func TestDefine_UpgradesAndConnects(t *testing.T) {
	doc, err := ParseString(`<x-rec id="a" watched="1"></x-rec>`)
	require.NoError(t, err)

	var recs []*recorder
	err = doc.Define("x-rec", Definition{
		ObservedAttributes: []string{"Watched"},
		New: func(host *Node) CustomElement {
			r := &recorder{host: host}
			recs = append(recs, r)
			return r
		},
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, 1, rec.connected)
	assert.Empty(t, rec.changes, "initial attributes are covered by the connection")

	rec.host.SetAttribute("watched", "2")
	rec.host.SetAttribute("watched", "2")
	rec.host.SetAttribute("ignored", "x")
	rec.host.RemoveAttribute("watched")
	assert.Equal(t, [][3]string{{"watched", "1", "2"}, {"watched", "2", ""}}, rec.changes)

	rec.host.Remove()
	assert.Equal(t, 1, rec.disconnected)
	doc.Body().AppendChild(rec.host)
	assert.Equal(t, 2, rec.connected)

	created := doc.CreateElement("x-rec")
	require.Len(t, recs, 2)
	assert.Equal(t, 0, recs[1].connected)
	doc.Body().AppendChild(created)
	assert.Equal(t, 1, recs[1].connected)
	assert.True(t, doc.Defined("X-REC"))
}

func TestDefine_Errors(t *testing.T) {
	doc := New()
	newRec := func(*Node) CustomElement { return &recorder{} }

	assert.ErrorIs(t, doc.Define("nohyphen", Definition{New: newRec}), ErrInvalidName)
	assert.ErrorIs(t, doc.Define("X-Upper", Definition{New: newRec}), ErrInvalidName)
	assert.ErrorIs(t, doc.Define("1-x", Definition{New: newRec}), ErrInvalidName)
	assert.Error(t, doc.Define("x-nil", Definition{}))

	require.NoError(t, doc.Define("x-ok", Definition{New: newRec}))
	assert.ErrorIs(t, doc.Define("x-ok", Definition{New: newRec}), ErrAlreadyDefined)
}

func TestRender_DeclarativeShadowDOM(t *testing.T) {
	doc := New()
	host := doc.Body().AppendChild(doc.CreateElement("x-card"))
	host.SetAttribute("id", "c")
	shadow, err := host.AttachShadow()
	require.NoError(t, err)
	p := shadow.AppendChild(doc.CreateElement("p"))
	p.SetTextContent("in shadow")
	shadow.AppendChild(doc.CreateComment("anchor"))

	assert.Equal(t,
		`<x-card id="c"><template shadowrootmode="open"><p>in shadow</p><!--anchor--></template></x-card>`,
		host.OuterHTML())
	assert.Equal(t, `<p>in shadow</p><!--anchor-->`, shadow.InnerHTML())
}

func TestRender_TemplateRoundTrip(t *testing.T) {
	doc, err := ParseString(`<template id="t"><li for="x in xs" data="x"></li></template>`)
	require.NoError(t, err)

	assert.Equal(t, `<template id="t"><li for="x in xs" data="x"></li></template>`, doc.GetElementByID("t").OuterHTML())
}
