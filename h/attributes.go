package h

import gh "maragu.dev/gomponents/html"

func Href(v string) H {
	return gh.Href(v)
}

func Type(v string) H {
	return gh.Type(v)
}

func ID(v string) H {
	return gh.ID(v)
}

func Value(v string) H {
	return gh.Value(v)
}

func Name(v string) H {
	return gh.Name(v)
}

func Placeholder(v string) H {
	return gh.Placeholder(v)
}

func Class(v string) H {
	return gh.Class(v)
}

// Data attributes automatically have their name prefixed with "data-".
// Use Field for the data binding marker.
func Data(name, v string) H {
	return gh.Data(name, v)
}

func AriaLabel(v string) H {
	return gh.Aria("label", v)
}
