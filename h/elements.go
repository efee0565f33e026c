package h

import (
	g "maragu.dev/gomponents"
	gh "maragu.dev/gomponents/html"
)

func A(children ...H) H {
	return gh.A(retype(children)...)
}

func Button(children ...H) H {
	return gh.Button(retype(children)...)
}

func Div(children ...H) H {
	return gh.Div(retype(children)...)
}

func H1(children ...H) H {
	return gh.H1(retype(children)...)
}

func H2(children ...H) H {
	return gh.H2(retype(children)...)
}

func Input(children ...H) H {
	return gh.Input(retype(children)...)
}

func Label(children ...H) H {
	return gh.Label(retype(children)...)
}

func Li(children ...H) H {
	return gh.Li(retype(children)...)
}

func Ol(children ...H) H {
	return gh.Ol(retype(children)...)
}

func P(children ...H) H {
	return gh.P(retype(children)...)
}

func Section(children ...H) H {
	return gh.Section(retype(children)...)
}

func Span(children ...H) H {
	return gh.Span(retype(children)...)
}

func Strong(children ...H) H {
	return gh.Strong(retype(children)...)
}

func Ul(children ...H) H {
	return gh.Ul(retype(children)...)
}

// Slot renders a <slot> element. Pass Name to make it a named slot.
func Slot(children ...H) H {
	return g.El("slot", retype(children)...)
}

// Template renders the <template> a component is defined from. The id is also
// the custom element name.
func Template(id string, children ...H) H {
	return gh.Template(append([]g.Node{gh.ID(id)}, retype(children)...)...)
}
