package ce_test

import (
	"testing"

	"github.com/go-via/ce"
	"github.com/go-via/ce/vtest"
	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Parallel()

	page := vtest.VisitHTML(t, `<template id="x-v"><b data="n"></b></template><x-v></x-v>`,
		ce.Definition{ID: "x-v", Data: map[string]any{"n": 3, "ratio": 0.5, "on": true, "label": "hi"}})
	s := page.Component(t, "x-v").Store()

	n, ok := ce.Value[int](s, "n")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	s.Set("n", 10)
	n, ok = ce.Value[int](s, "n")
	assert.True(t, ok)
	assert.Equal(t, 10, n, "reflected string is parsed back")

	f, ok := ce.Value[float64](s, "n")
	assert.True(t, ok)
	assert.Equal(t, 10.0, f)

	r, ok := ce.Value[float32](s, "ratio")
	assert.True(t, ok)
	assert.Equal(t, float32(0.5), r)

	on, ok := ce.Value[bool](s, "on")
	assert.True(t, ok)
	assert.True(t, on)

	label, ok := ce.Value[string](s, "label")
	assert.True(t, ok)
	assert.Equal(t, "hi", label)

	_, ok = ce.Value[int](s, "label")
	assert.False(t, ok)

	_, ok = ce.Value[int](s, "missing")
	assert.False(t, ok)
}
