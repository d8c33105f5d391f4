package vbind

import "github.com/pthm/vbind/lib/host"

// extractor reads an element's user-facing value and converts it to the
// type stored in data.
type extractor func(el host.Element) any

// renderer pushes a resolved value into an element.
type renderer func(el host.Element, value any)

// modelBinding is a writable binding: input on the element is written to key.
type modelBinding struct {
	key     string
	extract extractor
}

// renderBinding is a renderable binding: key's value is pushed into the element.
type renderBinding struct {
	key    string
	render renderer
}

// bindings is an insertion-ordered map keyed by element identity.
// Setting an element that is already present replaces its value in place.
type bindings[V any] struct {
	index map[host.Element]int
	elems []host.Element
	vals  []V
}

func newBindings[V any]() *bindings[V] {
	return &bindings[V]{index: make(map[host.Element]int)}
}

func (b *bindings[V]) set(el host.Element, v V) {
	if i, ok := b.index[el]; ok {
		b.vals[i] = v
		return
	}
	b.index[el] = len(b.elems)
	b.elems = append(b.elems, el)
	b.vals = append(b.vals, v)
}

func (b *bindings[V]) get(el host.Element) (V, bool) {
	i, ok := b.index[el]
	if !ok {
		var zero V
		return zero, false
	}
	return b.vals[i], true
}

// each visits entries in insertion order. The set of entries visited is
// fixed when each starts.
func (b *bindings[V]) each(fn func(el host.Element, v V)) {
	elems, vals := b.elems, b.vals
	for i := range elems {
		fn(elems[i], vals[i])
	}
}

func (b *bindings[V]) len() int {
	return len(b.elems)
}

func (b *bindings[V]) clear() {
	b.index = make(map[host.Element]int)
	b.elems = nil
	b.vals = nil
}

// attached records a listener the instance added, so unmount can remove it.
type attached struct {
	el       host.Element
	event    string
	listener *host.Listener
}

// ledger is the append-only list of attached listeners.
type ledger struct {
	entries []attached
}

func (l *ledger) add(el host.Element, event string, listener *host.Listener) {
	l.entries = append(l.entries, attached{el: el, event: event, listener: listener})
}

// drain detaches every listener, most recently added first, and returns how
// many were detached.
func (l *ledger) drain() int {
	n := len(l.entries)
	for len(l.entries) > 0 {
		last := l.entries[len(l.entries)-1]
		l.entries = l.entries[:len(l.entries)-1]
		last.el.RemoveEventListener(last.event, last.listener)
	}
	return n
}

func (l *ledger) len() int {
	return len(l.entries)
}
