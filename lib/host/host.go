// Package host defines the markup capabilities the binding engine consumes.
//
// The engine never reaches for a global document. A mount root and the
// elements below it are handed in through these interfaces, so the same
// engine runs against a browser bridge, a server-side tree, or the
// in-memory tree in lib/dom.
package host

// Event is delivered to listeners when an element fires an event.
type Event struct {
	Type   string
	Target Element
}

// Listener wraps an event handler. Listeners are compared by pointer, which
// is what lets RemoveEventListener find the exact handler AddEventListener
// attached.
type Listener struct {
	handle func(Event)
}

// NewListener returns a listener that calls fn for each event.
func NewListener(fn func(Event)) *Listener {
	return &Listener{handle: fn}
}

// HandleEvent invokes the wrapped handler. A nil listener ignores the event.
func (l *Listener) HandleEvent(e Event) {
	if l == nil || l.handle == nil {
		return
	}
	l.handle(e)
}

// Element is a node of the host markup tree.
//
// Implementations must return the same Element value for the same node on
// every query: the engine keys its registries by element identity.
type Element interface {
	// TagName returns the lower-case tag name ("input", "span").
	TagName() string

	// AttributeNames returns the element's attribute names in source order.
	AttributeNames() []string
	// Attribute returns the value of the named attribute.
	Attribute(name string) (string, bool)

	// QueryAll returns every descendant element in document order.
	QueryAll() []Element
	// QueryAttr returns every descendant carrying the named attribute.
	QueryAttr(name string) []Element

	AddEventListener(event string, l *Listener)
	RemoveEventListener(event string, l *Listener)

	// Value is the current value of a form control.
	Value() string
	SetValue(v string)

	// TextContent is the displayed text of the element.
	TextContent() string
	SetTextContent(s string)
}

// Document locates mount points.
type Document interface {
	QuerySelector(selector string) (Element, bool)
}
