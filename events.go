package ce

import (
	"fmt"
	"strings"

	"github.com/go-via/ce/dom"
)

// Method is a @click handler. It runs with the instance store as its context.
type Method func(s *Store)

// Listener handles any other @event marker.
type Listener func(s *Store, e *dom.Event)

const eventPrefix = "@"

// wireEvents attaches listeners to the descendants of root that carry event markers.
func (e *Element) wireEvents(root *dom.Node) {
	for _, n := range root.QueryAll(hasEventMarker) {
		e.wireNode(n)
	}
}

func hasEventMarker(n *dom.Node) bool {
	for _, a := range n.Attrs() {
		if strings.HasPrefix(a.Name, eventPrefix) {
			return true
		}
	}
	return false
}

// wireNode attaches one listener per event marker on n. Handlers are resolved
// at dispatch time, so an unknown name fails when the event fires.
func (e *Element) wireNode(n *dom.Node) {
	for _, a := range n.Attrs() {
		event, ok := strings.CutPrefix(a.Name, eventPrefix)
		if !ok || event == "" {
			continue
		}
		if a.Value == "" {
			e.reg.logWarn(e, "empty handler name for %s%s on <%s>", eventPrefix, event, n.Tag)
			continue
		}
		if event == "click" {
			n.AddEventListener(event, e.methodListener(a.Value))
		} else {
			n.AddEventListener(event, e.eventListener(a.Value))
		}
	}
}

func (e *Element) methodListener(name string) dom.Listener {
	return func(*dom.Event) error {
		m, ok := e.kind.methods[name]
		if !ok || m == nil {
			return fmt.Errorf("%w: %q on <%s>", ErrUnknownMethod, name, e.kind.id)
		}
		m(e.store)
		return nil
	}
}

func (e *Element) eventListener(name string) dom.Listener {
	return func(ev *dom.Event) error {
		l, ok := e.kind.listeners[name]
		if !ok || l == nil {
			return fmt.Errorf("%w: %q on <%s>", ErrUnknownListener, name, e.kind.id)
		}
		l(e.store, ev)
		return nil
	}
}
