package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document owns a node tree and its custom element registry.
type Document struct {
	root     *Node
	registry map[string]*Definition
}

// New returns an empty <html><head></head><body></body></html> document.
func New() *Document {
	d, err := ParseString("")
	if err != nil {
		panic(err)
	}
	return d
}

// Parse reads an HTML document. <template> children become template content.
func Parse(r io.Reader) (*Document, error) {
	hn, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	d := &Document{registry: make(map[string]*Definition)}
	d.root = d.fromHTML(hn)
	return d, nil
}

func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func (d *Document) Root() *Node {
	return d.root
}

// Body returns the <body> element, or the root when there is none.
func (d *Document) Body() *Node {
	if b := d.root.Query(func(n *Node) bool { return n.Tag == "body" }); b != nil {
		return b
	}
	return d.root
}

func (d *Document) GetElementByID(id string) *Node {
	return d.root.Query(func(n *Node) bool {
		v, ok := n.Attr("id")
		return ok && v == id
	})
}

// TemplateContent returns the content fragment of the <template> with the
// given id.
func (d *Document) TemplateContent(id string) (*Node, error) {
	n := d.GetElementByID(id)
	if n == nil {
		return nil, fmt.Errorf("%w: no element with id %q", ErrTemplateNotFound, id)
	}
	if n.Tag != "template" || n.content == nil {
		return nil, fmt.Errorf("%w: element %q is a <%s>", ErrTemplateNotFound, id, n.Tag)
	}
	return n.content, nil
}

// CreateElement returns a detached element, upgraded when its tag is defined.
func (d *Document) CreateElement(tag string) *Node {
	n := &Node{Type: ElementNode, Tag: strings.ToLower(tag), doc: d}
	if n.Tag == "template" {
		n.content = &Node{Type: FragmentNode, doc: d}
	}
	d.upgrade(n)
	return n
}

func (d *Document) CreateTextNode(s string) *Node {
	return &Node{Type: TextNode, Data: s, doc: d}
}

func (d *Document) CreateComment(s string) *Node {
	return &Node{Type: CommentNode, Data: s, doc: d}
}

// ParseFragment parses markup in a <body> context into a detached fragment.
func (d *Document) ParseFragment(markup string) (*Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fragment: %w", err)
	}
	frag := &Node{Type: FragmentNode, doc: d}
	for _, hn := range nodes {
		if n := d.fromHTML(hn); n != nil {
			frag.AppendChild(n)
		}
	}
	return frag, nil
}

// AppendHTML parses markup and appends the result to parent.
func (d *Document) AppendHTML(parent *Node, markup string) error {
	frag, err := d.ParseFragment(markup)
	if err != nil {
		return err
	}
	parent.AppendChild(frag)
	return nil
}

func (d *Document) fromHTML(hn *html.Node) *Node {
	var n *Node
	switch hn.Type {
	case html.DocumentNode:
		n = &Node{Type: DocumentNode, doc: d}
	case html.ElementNode:
		n = &Node{Type: ElementNode, Tag: strings.ToLower(hn.Data), doc: d}
		for _, a := range hn.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			n.attrs = append(n.attrs, Attr{Name: strings.ToLower(name), Value: a.Val})
		}
	case html.TextNode:
		return &Node{Type: TextNode, Data: hn.Data, doc: d}
	case html.CommentNode:
		return &Node{Type: CommentNode, Data: hn.Data, doc: d}
	default:
		return nil
	}

	target := n
	if n.Tag == "template" {
		n.content = &Node{Type: FragmentNode, doc: d}
		target = n.content
	}
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		if cn := d.fromHTML(c); cn != nil {
			cn.parent = target
			target.children = append(target.children, cn)
		}
	}
	if n.Type == ElementNode {
		d.upgrade(n)
	}
	return n
}

func toHTML(n *Node) *html.Node {
	var hn *html.Node
	switch n.Type {
	case DocumentNode:
		hn = &html.Node{Type: html.DocumentNode}
	case FragmentNode:
		// fragments are flattened by the caller
		hn = &html.Node{Type: html.DocumentNode}
	case TextNode:
		return &html.Node{Type: html.TextNode, Data: n.Data}
	case CommentNode:
		return &html.Node{Type: html.CommentNode, Data: n.Data}
	case ElementNode:
		hn = &html.Node{Type: html.ElementNode, Data: n.Tag, DataAtom: atom.Lookup([]byte(n.Tag))}
		for _, a := range n.attrs {
			hn.Attr = append(hn.Attr, html.Attribute{Key: a.Name, Val: a.Value})
		}
	default:
		return nil
	}

	if n.shadow != nil {
		sr := &html.Node{
			Type:     html.ElementNode,
			Data:     "template",
			DataAtom: atom.Template,
			Attr:     []html.Attribute{{Key: "shadowrootmode", Val: "open"}},
		}
		appendHTMLChildren(sr, n.shadow)
		hn.AppendChild(sr)
	}
	if n.content != nil {
		appendHTMLChildren(hn, n.content)
	}
	appendHTMLChildren(hn, n)
	return hn
}

func appendHTMLChildren(hn *html.Node, n *Node) {
	for _, c := range n.children {
		if ch := toHTML(c); ch != nil {
			hn.AppendChild(ch)
		}
	}
}

// Render writes the node as HTML. Fragments and shadow roots render their
// children; shadow roots of elements render as declarative shadow DOM.
func Render(w io.Writer, n *Node) error {
	if n.Type == FragmentNode {
		for _, c := range n.children {
			if err := Render(w, c); err != nil {
				return err
			}
		}
		return nil
	}
	return html.Render(w, toHTML(n))
}

func (n *Node) OuterHTML() string {
	var b bytes.Buffer
	_ = Render(&b, n)
	return b.String()
}

// InnerHTML renders the children of the node.
func (n *Node) InnerHTML() string {
	var b bytes.Buffer
	for _, c := range n.children {
		_ = Render(&b, c)
	}
	return b.String()
}
