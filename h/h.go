// Package h provides markup helpers for authoring component templates in Go.
// Nodes are gomponents nodes; the binding markers render as the plain
// attributes the ce binder discovers.
package h

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"
)

// H is a renderable markup node.
type H interface {
	Render(w io.Writer) error
}

func Text(s string) H {
	return g.Text(s)
}

func Textf(format string, a ...any) H {
	return g.Textf(format, a...)
}

// Attr renders an arbitrary attribute. Without a value it renders as a
// boolean attribute.
func Attr(name string, value ...string) H {
	return g.Attr(name, value...)
}

// El renders an element with an arbitrary tag, e.g. a custom element.
func El(tag string, children ...H) H {
	return g.El(tag, retype(children)...)
}

// Group renders its children without a wrapping element.
func Group(children ...H) H {
	return g.Group(retype(children))
}

// Render renders a node to a string.
func Render(node H) (string, error) {
	var b strings.Builder
	if err := node.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
