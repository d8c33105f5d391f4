// Package dom is an in-memory markup tree that satisfies lib/host.
//
// Markup is parsed with golang.org/x/net/html. Each parsed element node is
// wrapped exactly once, so the Element returned for a node is stable across
// queries and safe to use as a map key. Event dispatch is synchronous: every
// listener runs to completion before Dispatch returns.
package dom

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/pthm/vbind/lib/host"
)

// Document is a parsed markup tree.
type Document struct {
	root  *html.Node
	elems map[*html.Node]*Element
}

// Parse reads HTML from r. Fragments are accepted; the parser supplies the
// missing html/head/body structure.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{
		root:  root,
		elems: make(map[*html.Node]*Element),
	}, nil
}

// ParseString parses markup held in a string.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// wrap returns the Element for n, creating it on first use.
func (d *Document) wrap(n *html.Node) *Element {
	if el, ok := d.elems[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elems[n] = el
	return el
}

// QuerySelector returns the first element matching selector in document order.
func (d *Document) QuerySelector(selector string) (host.Element, bool) {
	el := d.Find(selector)
	if el == nil {
		return nil, false
	}
	return el, true
}

// Find is QuerySelector returning the concrete type, or nil on no match.
func (d *Document) Find(selector string) *Element {
	match := compileSelector(selector)
	if match == nil {
		return nil
	}
	var found *Element
	walk(d.root, func(n *html.Node) bool {
		if match(n) {
			found = d.wrap(n)
			return false
		}
		return true
	})
	return found
}

// FindAll returns every element matching selector in document order.
func (d *Document) FindAll(selector string) []*Element {
	match := compileSelector(selector)
	if match == nil {
		return nil
	}
	var out []*Element
	walk(d.root, func(n *html.Node) bool {
		if match(n) {
			out = append(out, d.wrap(n))
		}
		return true
	})
	return out
}

// HTML renders the whole document.
func (d *Document) HTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return ""
	}
	return buf.String()
}

// walk visits element descendants of n in document order, stopping when
// visit returns false. n itself is not visited.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			if !visit(c) {
				return false
			}
		}
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

// compileSelector supports a single simple selector: "#id", ".class",
// "[attr]", "[attr=value]" or a tag name. Anything else matches nothing.
func compileSelector(sel string) func(*html.Node) bool {
	sel = strings.TrimSpace(sel)
	if sel == "" || strings.ContainsAny(sel, " >+~,") {
		return nil
	}
	switch sel[0] {
	case '#':
		id := sel[1:]
		return func(n *html.Node) bool {
			v, ok := attr(n, "id")
			return ok && v == id
		}
	case '.':
		class := sel[1:]
		return func(n *html.Node) bool {
			v, _ := attr(n, "class")
			for _, c := range strings.Fields(v) {
				if c == class {
					return true
				}
			}
			return false
		}
	case '[':
		if !strings.HasSuffix(sel, "]") {
			return nil
		}
		body := sel[1 : len(sel)-1]
		name, want, hasValue := strings.Cut(body, "=")
		want = strings.Trim(want, `"'`)
		return func(n *html.Node) bool {
			v, ok := attr(n, name)
			if !ok {
				return false
			}
			return !hasValue || v == want
		}
	default:
		tag := strings.ToLower(sel)
		return func(n *html.Node) bool {
			return n.Data == tag
		}
	}
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
