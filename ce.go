// Package ce turns HTML templates into reactive custom elements.
//
// A component is declared with a template id, a data schema and event handlers.
// Defining it registers a custom element whose shadow tree is kept in sync
// with its reactive fields through markers in the template:
//
//	<template id="x-todo">
//		<h1 data="title"></h1>
//		<ul><li for="item in items" data="item"></li></ul>
//		<a bind :href="link">more</a>
//		<button @click="add">add</button>
//	</template>
//
// Fields are read and written through the element's Store. Primitive writes
// are reflected as attributes and re-render through the attribute change
// callback; sequence writes re-render directly.
package ce

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/go-via/ce/dom"
)

// Registry defines components on a document.
type Registry struct {
	cfg        Options
	doc        *dom.Document
	kinds      map[string]*kind
	kindsMutex sync.RWMutex
}

// Definition declares a component.
type Definition struct {
	// ID is both the template id and the custom element name.
	ID string
	// Data maps field names to a default value, a Watcher, a Field or a
	// sequence (slice, array or iter.Seq[any]).
	Data map[string]any
	// Methods are the handlers @click markers dispatch to.
	Methods map[string]Method
	// Listeners are the handlers other @event markers dispatch to.
	Listeners map[string]Listener
}

type kind struct {
	id        string
	content   *dom.Node
	schema    Schema
	attrField map[string]string
	methods   map[string]Method
	listeners map[string]Listener
}

func (r *Registry) logErr(e *Element, format string, a ...any) {
	log.Printf("[error] %smsg=%q", elRef(e), fmt.Sprintf(format, a...))
}

func (r *Registry) logWarn(e *Element, format string, a ...any) {
	if r.cfg.LogLvl >= LogLevelWarn {
		log.Printf("[warn] %smsg=%q", elRef(e), fmt.Sprintf(format, a...))
	}
}

func (r *Registry) logInfo(e *Element, format string, a ...any) {
	if r.cfg.LogLvl >= LogLevelInfo {
		log.Printf("[info] %smsg=%q", elRef(e), fmt.Sprintf(format, a...))
	}
}

func (r *Registry) logDebug(e *Element, format string, a ...any) {
	if r.cfg.LogLvl == LogLevelDebug {
		log.Printf("[debug] %smsg=%q", elRef(e), fmt.Sprintf(format, a...))
	}
}

func elRef(e *Element) string {
	if e == nil || e.host == nil {
		return ""
	}
	ref := e.host.Tag
	if id, ok := e.host.Attr("id"); ok {
		ref += "#" + id
	}
	return fmt.Sprintf("ce-el=%q ", ref)
}

// New creates a registry for the given document with default configuration.
func New(doc *dom.Document) *Registry {
	return &Registry{
		doc:   doc,
		kinds: make(map[string]*kind),
		cfg: Options{
			LogLvl: LogLevelInfo,
		},
	}
}

// Config overrides the default configuration with the given options.
func (r *Registry) Config(cfg Options) {
	if cfg.LogLvl != undefined && cfg.LogLvl != r.cfg.LogLvl {
		r.cfg.LogLvl = cfg.LogLvl
	}
	for _, plugin := range cfg.Plugins {
		if plugin != nil {
			plugin.Register(r)
		}
	}
}

func (r *Registry) Document() *dom.Document {
	return r.doc
}

// DefineID defines a component without reactive data.
func (r *Registry) DefineID(id string) error {
	return r.Define(Definition{ID: id})
}

// Define resolves the template, computes the field schema and registers the
// custom element. A missing template is an error.
func (r *Registry) Define(def Definition) error {
	content, err := r.doc.TemplateContent(def.ID)
	if err != nil {
		return fmt.Errorf("failed to define %q: %w", def.ID, err)
	}

	k := &kind{
		id:        def.ID,
		content:   content,
		schema:    NewSchema(def.Data),
		attrField: make(map[string]string),
		methods:   def.Methods,
		listeners: def.Listeners,
	}
	observed := make([]string, 0, k.schema.Len())
	for _, name := range k.schema.Names() {
		attr := strings.ToLower(name)
		k.attrField[attr] = name
		observed = append(observed, attr)
	}

	r.kindsMutex.Lock()
	if _, ok := r.kinds[def.ID]; ok {
		r.kindsMutex.Unlock()
		return fmt.Errorf("failed to define %q: %w", def.ID, dom.ErrAlreadyDefined)
	}
	r.kinds[def.ID] = k
	r.kindsMutex.Unlock()

	err = r.doc.Define(def.ID, dom.Definition{
		ObservedAttributes: observed,
		New: func(host *dom.Node) dom.CustomElement {
			return newElement(r, k, host)
		},
	})
	if err != nil {
		r.kindsMutex.Lock()
		delete(r.kinds, def.ID)
		r.kindsMutex.Unlock()
		return fmt.Errorf("failed to define %q: %w", def.ID, err)
	}
	r.logInfo(nil, "defined %q fields=%v", def.ID, k.schema.Names())
	return nil
}

// MustDefine is like Define but panics on error.
func (r *Registry) MustDefine(def Definition) {
	if err := r.Define(def); err != nil {
		panic(err)
	}
}

// Schema returns the field schema of a defined component.
func (r *Registry) Schema(id string) (Schema, bool) {
	r.kindsMutex.RLock()
	defer r.kindsMutex.RUnlock()
	if k, ok := r.kinds[id]; ok {
		return k.schema, true
	}
	return Schema{}, false
}
