package h

import g "maragu.dev/gomponents"

// Field binds the element's text to a field: data="name".
func Field(name string) H {
	return g.Attr("data", name)
}

// For repeats the element once per item of a sequence field.
// The expression has the form "item in items" or "item of items".
func For(expr string) H {
	return g.Attr("for", expr)
}

// Bind marks an element whose Prop attributes are computed from fields.
func Bind() H {
	return g.Attr("bind")
}

// Prop sets attr from field on an element marked with Bind: :attr="field".
// When several are given the last one applies.
func Prop(attr, field string) H {
	return g.Attr(":"+attr, field)
}

// BindProp is Bind followed by a single Prop.
func BindProp(attr, field string) H {
	return g.Group([]g.Node{g.Attr("bind"), g.Attr(":"+attr, field)})
}

// OnClick dispatches clicks to the named component method: @click="method".
func OnClick(method string) H {
	return g.Attr("@click", method)
}

// On dispatches the named event to a component listener: @event="listener".
func On(event, listener string) H {
	return g.Attr("@"+event, listener)
}
