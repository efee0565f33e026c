package vtest

import (
	"github.com/go-via/ce"
	"github.com/go-via/ce/h"
)

// CounterPage renders a counter template and one counter instance.
func CounterPage() h.H {
	return h.Group(
		h.Template("x-counter",
			h.H1(h.Text("Counter")),
			h.P(h.Text("Count: "), h.Span(h.Field("count"))),
			h.Button(h.OnClick("decrement"), h.Text("-")),
			h.Button(h.OnClick("increment"), h.Text("+")),
		),
		h.El("x-counter", h.ID("counter")),
	)
}

// Counter defines x-counter. Count is reflected as an attribute.
func Counter() ce.Definition {
	step := func(s *ce.Store, delta int) {
		n, _ := ce.Value[int](s, "count")
		s.Set("count", n+delta)
	}
	return ce.Definition{
		ID:   "x-counter",
		Data: map[string]any{"count": 0},
		Methods: map[string]ce.Method{
			"increment": func(s *ce.Store) { step(s, 1) },
			"decrement": func(s *ce.Store) { step(s, -1) },
		},
	}
}

// TodoPage renders a todo list template and one instance.
func TodoPage() h.H {
	return h.Group(
		h.Template("x-todo",
			h.H1(h.Field("title")),
			h.Ul(h.Li(h.For("todo in todos"), h.Field("todo"))),
			h.Button(h.OnClick("add"), h.Text("Add")),
			h.Button(h.OnClick("clear"), h.Text("Clear")),
		),
		h.El("x-todo", h.ID("todo")),
	)
}

// Todo defines x-todo. The todo list is a sequence field and re-renders
// without attribute reflection.
func Todo() ce.Definition {
	return ce.Definition{
		ID: "x-todo",
		Data: map[string]any{
			"title": "Todo List",
			"todos": []string{},
		},
		Methods: map[string]ce.Method{
			"add": func(s *ce.Store) {
				todos, _ := s.Get("todos").([]string)
				s.Set("todos", append(todos, "New todo"))
			},
			"clear": func(s *ce.Store) {
				s.Set("todos", []string{})
			},
		},
	}
}

// GreeterPage renders a greeter whose link title follows the name field.
func GreeterPage() h.H {
	return h.Group(
		h.Template("x-greeter",
			h.P(h.Text("Hello, "), h.Span(h.Field("name")), h.Text("!")),
			h.A(h.Href("#"), h.BindProp("title", "name"), h.Text("who?")),
			h.Button(h.OnClick("greet"), h.Text("Greet")),
			h.Button(h.OnClick("reset"), h.Text("Reset")),
		),
		h.El("x-greeter", h.ID("greeter")),
	)
}

func Greeter() ce.Definition {
	return ce.Definition{
		ID:   "x-greeter",
		Data: map[string]any{"name": "World"},
		Methods: map[string]ce.Method{
			"greet": func(s *ce.Store) { s.Set("name", "Alice") },
			"reset": func(s *ce.Store) { s.Set("name", "World") },
		},
	}
}
