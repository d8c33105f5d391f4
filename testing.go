package vbind

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/pthm/vbind/lib/dom"
)

// TestApp is an App mounted on an in-memory document, with helpers for
// simulating user interaction and asserting on the rendered markup.
//
//	app, err := vbind.TestMount(`<div id="app"><input v-model.number="n"></div>`, vbind.Options{
//	    Data: map[string]any{"n": 0},
//	})
//	app.Input("input", "5")
//	if !app.HTMLContains(`value="5"`) {
//	    t.Fatal("input not re-rendered")
//	}
type TestApp struct {
	*App
	Doc *dom.Document
}

// TestMount parses markup and mounts an App on it. opts.El defaults to
// "#app".
func TestMount(markup string, opts Options) (*TestApp, error) {
	doc, err := dom.ParseString(markup)
	if err != nil {
		return nil, err
	}
	if opts.El == "" {
		opts.El = "#app"
	}
	app, err := NewApp(doc, opts)
	if err != nil {
		return nil, err
	}
	return &TestApp{App: app, Doc: doc}, nil
}

// Find returns the first element matching selector.
func (t *TestApp) Find(selector string) (*dom.Element, error) {
	el := t.Doc.Find(selector)
	if el == nil {
		return nil, fmt.Errorf("%w: %q", ErrElementNotFound, selector)
	}
	return el, nil
}

// Input simulates typing value into the element matching selector.
func (t *TestApp) Input(selector, value string) error {
	el, err := t.Find(selector)
	if err != nil {
		return err
	}
	el.Input(value)
	return nil
}

// Change simulates editing then leaving the element matching selector.
func (t *TestApp) Change(selector, value string) error {
	el, err := t.Find(selector)
	if err != nil {
		return err
	}
	el.Change(value)
	return nil
}

// Fire dispatches event at the element matching selector.
func (t *TestApp) Fire(selector, event string) error {
	el, err := t.Find(selector)
	if err != nil {
		return err
	}
	el.Dispatch(event)
	return nil
}

// Click dispatches a click at the element matching selector.
func (t *TestApp) Click(selector string) error {
	return t.Fire(selector, "click")
}

// Text returns the text content of the element matching selector, or "".
func (t *TestApp) Text(selector string) string {
	if el := t.Doc.Find(selector); el != nil {
		return el.TextContent()
	}
	return ""
}

// Value returns the value of the element matching selector, or "".
func (t *TestApp) Value(selector string) string {
	if el := t.Doc.Find(selector); el != nil {
		return el.Value()
	}
	return ""
}

// HTML renders the mount root through App.Component.
func (t *TestApp) HTML() string {
	var buf bytes.Buffer
	if err := t.Component().Render(context.Background(), &buf); err != nil {
		return ""
	}
	return buf.String()
}

// HTMLContains checks if the rendered root contains a substring.
func (t *TestApp) HTMLContains(substr string) bool {
	return strings.Contains(t.HTML(), substr)
}

// HTMLContainsAll checks if the rendered root contains all the given substrings.
func (t *TestApp) HTMLContainsAll(substrs ...string) bool {
	html := t.HTML()
	for _, s := range substrs {
		if !strings.Contains(html, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the rendered root contains any of the given substrings.
func (t *TestApp) HTMLContainsAny(substrs ...string) bool {
	html := t.HTML()
	for _, s := range substrs {
		if strings.Contains(html, s) {
			return true
		}
	}
	return false
}

// Listeners reports how many listeners for event are attached to the
// element matching selector.
func (t *TestApp) Listeners(selector, event string) int {
	if el := t.Doc.Find(selector); el != nil {
		return el.ListenerCount(event)
	}
	return 0
}
