package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/pthm/vbind/lib/host"
)

// Element is a parsed element node.
type Element struct {
	doc       *Document
	node      *html.Node
	listeners map[string][]*host.Listener
}

var _ host.Element = (*Element)(nil)

// TagName returns the lower-case tag name.
func (e *Element) TagName() string {
	return e.node.Data
}

// AttributeNames returns attribute names in source order.
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.node.Attr))
	for _, a := range e.node.Attr {
		names = append(names, a.Key)
	}
	return names
}

// Attribute returns the named attribute's value.
func (e *Element) Attribute(name string) (string, bool) {
	return attr(e.node, name)
}

// SetAttribute adds or replaces an attribute.
func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute deletes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		attrs = append(attrs, a)
	}
	e.node.Attr = attrs
}

// QueryAll returns every descendant element in document order.
func (e *Element) QueryAll() []host.Element {
	var out []host.Element
	walk(e.node, func(n *html.Node) bool {
		out = append(out, e.doc.wrap(n))
		return true
	})
	return out
}

// QueryAttr returns every descendant carrying the named attribute.
func (e *Element) QueryAttr(name string) []host.Element {
	var out []host.Element
	walk(e.node, func(n *html.Node) bool {
		if _, ok := attr(n, name); ok {
			out = append(out, e.doc.wrap(n))
		}
		return true
	})
	return out
}

// Find returns the first descendant matching selector, or nil.
func (e *Element) Find(selector string) *Element {
	match := compileSelector(selector)
	if match == nil {
		return nil
	}
	var found *Element
	walk(e.node, func(n *html.Node) bool {
		if match(n) {
			found = e.doc.wrap(n)
			return false
		}
		return true
	})
	return found
}

// AddEventListener attaches l for event. Attaching the same listener twice
// for the same event is a no-op.
func (e *Element) AddEventListener(event string, l *host.Listener) {
	if l == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*host.Listener)
	}
	for _, existing := range e.listeners[event] {
		if existing == l {
			return
		}
	}
	e.listeners[event] = append(e.listeners[event], l)
}

// RemoveEventListener detaches l from event.
func (e *Element) RemoveEventListener(event string, l *host.Listener) {
	ls := e.listeners[event]
	for i, existing := range ls {
		if existing == l {
			e.listeners[event] = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	if len(e.listeners[event]) == 0 {
		delete(e.listeners, event)
	}
}

// ListenerCount reports how many listeners are attached for event.
func (e *Element) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// Dispatch fires event at the element. Listeners attached or removed while
// dispatching take effect from the next dispatch.
func (e *Element) Dispatch(event string) {
	ls := append([]*host.Listener(nil), e.listeners[event]...)
	ev := host.Event{Type: event, Target: e}
	for _, l := range ls {
		l.HandleEvent(ev)
	}
}

// Input simulates a user typing v: form controls take it as their value,
// other elements as their text. An input event follows.
func (e *Element) Input(v string) {
	if e.isFormControl() {
		e.SetValue(v)
	} else {
		e.SetTextContent(v)
	}
	e.Dispatch("input")
}

// Change is Input followed by a change event, as when a control loses focus
// after editing.
func (e *Element) Change(v string) {
	e.Input(v)
	e.Dispatch("change")
}

// Click fires a click event.
func (e *Element) Click() {
	e.Dispatch("click")
}

func (e *Element) isFormControl() bool {
	switch e.node.Data {
	case "input", "textarea", "select":
		return true
	}
	return false
}

// Value returns the control's value. Textarea values are their text; other
// elements reflect the value attribute.
func (e *Element) Value() string {
	if e.node.Data == "textarea" {
		return e.TextContent()
	}
	v, _ := attr(e.node, "value")
	return v
}

// SetValue updates the control's value.
func (e *Element) SetValue(v string) {
	if e.node.Data == "textarea" {
		e.SetTextContent(v)
		return
	}
	e.SetAttribute("value", v)
}

// TextContent returns the concatenated text of all descendants.
func (e *Element) TextContent() string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			}
			collect(c)
		}
	}
	collect(e.node)
	return sb.String()
}

// SetTextContent replaces all children with a single text node.
func (e *Element) SetTextContent(s string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	if s != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
}

// OuterHTML renders the element including its own tag.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML renders the element's children.
func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}
