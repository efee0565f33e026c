package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-via/ce"
	"github.com/go-via/ce/dom"
	"github.com/go-via/ce/h"
)

type book struct {
	Title string
	URL   string
}

func (b book) String() string {
	return b.Title
}

var library = []book{
	{Title: "Dune", URL: "/books/dune"},
	{Title: "Emma", URL: "/books/emma"},
	{Title: "Ulysses", URL: "/books/ulysses"},
}

func page() h.H {
	return h.Group(
		h.Template("x-book-count", h.Strong(h.Field("count")), h.Text(" books")),
		h.Template("x-shelf",
			h.H2(h.Field("title")),
			h.Input(h.Placeholder("filter"), h.On("input", "filter")),
			h.Ul(
				h.Li(h.For("b in books"),
					h.A(h.BindProp("title", "b"), h.Span(h.Field("b"))),
				),
			),
			h.El("x-book-count"),
			h.Button(h.OnClick("reset"), h.Text("Show all")),
		),
		h.El("x-shelf", h.ID("shelf")),
	)
}

func filtered(query string) []book {
	var out []book
	for _, b := range library {
		if strings.Contains(strings.ToLower(b.Title), strings.ToLower(query)) {
			out = append(out, b)
		}
	}
	return out
}

// setCount pushes the visible book count into the nested counter component.
func setCount(s *ce.Store, n int) {
	counter := s.Host().ShadowRoot().Query(func(n *dom.Node) bool { return n.Tag == "x-book-count" })
	if el, ok := ce.Lookup(counter); ok {
		el.Store().Set("count", n)
	}
}

// components is the plugin defining the shelf components.
func components() ce.Definitions {
	return ce.Definitions{
		{ID: "x-book-count", Data: map[string]any{"count": 0}},
		{
			ID: "x-shelf",
			Data: map[string]any{
				"title": "Shelf",
				"books": ce.Field{
					Default: library,
					Watcher: func(s *ce.Store, v any) {
						books, _ := v.([]book)
						setCount(s, len(books))
					},
				},
			},
			Methods: map[string]ce.Method{
				"reset": func(s *ce.Store) { s.Set("books", library) },
			},
			Listeners: map[string]ce.Listener{
				"filter": func(s *ce.Store, e *dom.Event) {
					query, _ := e.Detail.(string)
					s.Set("books", filtered(query))
				},
			},
		},
	}
}

// NewShelfPage builds a document with a filterable book shelf.
func NewShelfPage() (*dom.Document, error) {
	markup, err := h.Render(page())
	if err != nil {
		return nil, err
	}
	doc := dom.New()
	if err := doc.AppendHTML(doc.Body(), markup); err != nil {
		return nil, err
	}
	r := ce.New(doc)
	r.Config(ce.Options{LogLvl: ce.LogLevelWarn, Plugins: []ce.Plugin{components()}})
	if !doc.Defined("x-shelf") {
		return nil, fmt.Errorf("x-shelf was not defined")
	}
	return doc, nil
}

func main() {
	doc, err := NewShelfPage()
	if err != nil {
		log.Fatalf("[fatal] %v", err)
	}
	shelf := doc.GetElementByID("shelf")
	el, _ := ce.Lookup(shelf)
	input := el.ShadowRoot().QueryTag("input")[0]
	if err := input.Dispatch(&dom.Event{Type: "input", Detail: "e"}); err != nil {
		log.Fatalf("[fatal] %v", err)
	}
	fmt.Println(shelf.OuterHTML())
}
