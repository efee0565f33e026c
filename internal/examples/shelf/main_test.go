package main

import (
	"testing"

	"github.com/go-via/ce"
	"github.com/go-via/ce/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(el *ce.Element) []string {
	var out []string
	for _, a := range el.ShadowRoot().QueryTag("a") {
		out = append(out, a.TextContent())
	}
	return out
}

func countText(t *testing.T, el *ce.Element) string {
	t.Helper()
	counters := el.ShadowRoot().QueryTag("x-book-count")
	require.Len(t, counters, 1)
	c, ok := ce.Lookup(counters[0])
	require.True(t, ok)
	return c.ShadowRoot().QueryTag("strong")[0].TextContent()
}

func TestShelf(t *testing.T) {
	t.Parallel()

	doc, err := NewShelfPage()
	require.NoError(t, err)
	el, ok := ce.Lookup(doc.GetElementByID("shelf"))
	require.True(t, ok)

	assert.Equal(t, []string{"Dune", "Emma", "Ulysses"}, titles(el))
	assert.Equal(t, "Dune", el.ShadowRoot().QueryTag("a")[0].GetAttribute("title"))
	assert.Equal(t, "0", countText(t, el), "watchers do not run on connection")

	input := el.ShadowRoot().QueryTag("input")[0]
	require.NoError(t, input.Dispatch(&dom.Event{Type: "input", Detail: "u"}))
	assert.Equal(t, []string{"Dune", "Ulysses"}, titles(el))
	assert.Equal(t, "2", countText(t, el))

	require.NoError(t, input.Dispatch(&dom.Event{Type: "input", Detail: "zzz"}))
	assert.Empty(t, titles(el))
	assert.Equal(t, "0", countText(t, el))

	reset := el.ShadowRoot().QueryTag("button")[0]
	require.NoError(t, reset.Click())
	assert.Len(t, titles(el), 3)
	assert.Equal(t, "3", countText(t, el))
}
