package main

import (
	"fmt"

	"github.com/go-via/ce"
	"github.com/go-via/ce/dom"
	"github.com/go-via/ce/h"
)

// NewCounterPage builds a document with a counter whose step is an attribute.
func NewCounterPage() (*dom.Document, error) {
	doc := dom.New()
	markup, err := h.Render(h.Group(
		h.Template("x-counter",
			h.H1(h.Text("Counter Example")),
			h.P(h.Text("Count: "), h.Span(h.Field("count"))),
			h.P(h.Text("Step: "), h.Span(h.Field("step"))),
			h.Button(h.OnClick("decrement"), h.Text("-")),
			h.Button(h.OnClick("increment"), h.Text("+")),
		),
		h.El("x-counter", h.ID("counter"), h.Attr("step", "1")),
	))
	if err != nil {
		return nil, err
	}
	if err := doc.AppendHTML(doc.Body(), markup); err != nil {
		return nil, err
	}

	add := func(sign int) ce.Method {
		return func(s *ce.Store) {
			count, _ := ce.Value[int](s, "count")
			step, _ := ce.Value[int](s, "step")
			s.Set("count", count+sign*step)
		}
	}

	r := ce.New(doc)
	r.Config(ce.Options{LogLvl: ce.LogLevelInfo})
	err = r.Define(ce.Definition{
		ID:   "x-counter",
		Data: map[string]any{"count": 0, "step": 1},
		Methods: map[string]ce.Method{
			"increment": add(1),
			"decrement": add(-1),
		},
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func main() {
	doc, err := NewCounterPage()
	if err != nil {
		panic(err)
	}
	counter := doc.GetElementByID("counter")
	el, _ := ce.Lookup(counter)
	for _, label := range []string{"+", "+", "-", "+"} {
		btn := el.ShadowRoot().Query(func(n *dom.Node) bool {
			return n.Tag == "button" && n.TextContent() == label
		})
		if err := btn.Click(); err != nil {
			panic(err)
		}
	}
	fmt.Println(counter.OuterHTML())
}
