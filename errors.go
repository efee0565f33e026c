package ce

import (
	"errors"

	"github.com/go-via/ce/dom"
)

var (
	// ErrTemplateNotFound is returned by Define when the id does not resolve
	// to a <template> element.
	ErrTemplateNotFound = dom.ErrTemplateNotFound
	// ErrBadForExpr reports a for marker that is not "var in field" or "var of field".
	ErrBadForExpr = errors.New("malformed for expression")
	// ErrNotIterable reports a list binding whose source value is not a sequence.
	ErrNotIterable = errors.New("value is not iterable")
	// ErrUnknownMethod reports a @click marker naming a method that was not registered.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrUnknownListener reports an @event marker naming a listener that was not registered.
	ErrUnknownListener = errors.New("unknown listener")
)
