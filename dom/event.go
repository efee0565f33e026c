package dom

import "errors"

// Listener handles a dispatched event. Returned errors are collected by
// Dispatch; they do not stop propagation.
type Listener func(e *Event) error

type Event struct {
	Type string
	// Target is the node the event was dispatched on.
	Target *Node
	// CurrentTarget is the node whose listener is running.
	CurrentTarget *Node
	Detail        any

	stopped bool
}

func (e *Event) StopPropagation() {
	e.stopped = true
}

func (n *Node) AddEventListener(typ string, l Listener) {
	if l == nil {
		return
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]Listener)
	}
	n.listeners[typ] = append(n.listeners[typ], l)
}

// Listeners returns the number of listeners registered for typ.
func (n *Node) Listeners(typ string) int {
	return len(n.listeners[typ])
}

// Dispatch runs the listeners of the target and then bubbles through its
// ancestors, crossing shadow roots to their hosts. Listener errors are joined.
func (n *Node) Dispatch(e *Event) error {
	e.Target = n
	var errs []error
	for p := n; p != nil && !e.stopped; {
		e.CurrentTarget = p
		for _, l := range p.listeners[e.Type] {
			if err := l(e); err != nil {
				errs = append(errs, err)
			}
		}
		if p.parent != nil {
			p = p.parent
		} else {
			p = p.host
		}
	}
	return errors.Join(errs...)
}

// Click dispatches a click event on the node.
func (n *Node) Click() error {
	return n.Dispatch(&Event{Type: "click"})
}
