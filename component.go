package vbind

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// outerHTMLer is implemented by hosts that can serialize an element.
type outerHTMLer interface {
	OuterHTML() string
}

// attributeSetter is implemented by hosts whose attributes are writable.
type attributeSetter interface {
	SetAttribute(name, value string)
}

// Component returns a templ component that writes the mount root as it is
// currently rendered. Use it to embed a server-side render in a page:
//
//	@app.Component()
//
// The root must implement OuterHTML() string, as lib/dom elements do.
func (a *App) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		r, ok := a.root.(outerHTMLer)
		if !ok {
			return fmt.Errorf("%w: %T", ErrNotRenderable, a.root)
		}
		_, err := io.WriteString(w, r.OuterHTML())
		return err
	})
}

// StampState writes a snapshot of the current data onto the mount root as
// its v-state attribute, so a later NewApp over the same markup resumes
// from this state.
func (a *App) StampState(sensitive bool) error {
	attrs, err := a.StateAttrs(sensitive)
	if err != nil {
		return err
	}
	s, ok := a.root.(attributeSetter)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotRenderable, a.root)
	}
	for name, v := range attrs {
		s.SetAttribute(name, fmt.Sprint(v))
	}
	return nil
}
