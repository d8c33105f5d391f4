package vbind

import (
	"fmt"
	"log"

	"github.com/a-h/templ"

	"github.com/pthm/vbind/lib/host"
)

// Options configures NewApp.
type Options struct {
	// El selects the mount root, e.g. "#app".
	El string
	// Data is either a map[string]any or a func() map[string]any.
	Data any
	// Computed and Methods are passed through to the instance.
	Computed map[string]ComputedFunc
	Methods  map[string]MethodFunc
	// Logger receives diagnostics. Nil discards them.
	Logger *log.Logger
	// Encoder enables restoring a v-state snapshot found on the mount root.
	Encoder *Encoder
	// Sensitive selects encrypted rather than signed snapshots.
	Sensitive bool
}

// App is a mounted instance together with its mount root.
//
//	doc, _ := dom.ParseString(markup)
//	app, err := vbind.NewApp(doc, vbind.Options{
//	    El:   "#app",
//	    Data: map[string]any{"count": 0},
//	})
type App struct {
	inst      *Instance
	root      host.Element
	encoder   *Encoder
	sensitive bool
}

// NewApp locates the mount root in doc, creates an instance from opts and
// mounts it.
func NewApp(doc host.Document, opts Options) (*App, error) {
	data, err := normalizeData(opts.Data)
	if err != nil {
		return nil, err
	}

	root, ok := doc.QuerySelector(opts.El)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMountPointNotFound, opts.El)
	}

	inst := New(Config{
		Data:     data,
		Computed: opts.Computed,
		Methods:  opts.Methods,
		Logger:   opts.Logger,
	})

	app := &App{
		inst:      inst,
		root:      root,
		encoder:   opts.Encoder,
		sensitive: opts.Sensitive,
	}
	if err := app.restore(); err != nil {
		return nil, err
	}

	if err := inst.Mount(root); err != nil {
		return nil, err
	}
	return app, nil
}

// normalizeData turns the accepted data forms into a data constructor.
func normalizeData(data any) (func() map[string]any, error) {
	switch d := data.(type) {
	case func() map[string]any:
		return d, nil
	case map[string]any:
		return func() map[string]any { return d }, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidData, data)
	}
}

// restore seeds the data store from the root's v-state attribute, if an
// encoder is configured and the attribute is present.
func (a *App) restore() error {
	if a.encoder == nil {
		return nil
	}
	encoded, ok := a.root.Attribute(AttrState)
	if !ok || encoded == "" {
		return nil
	}
	snapshot, err := a.encoder.Decode(encoded, a.sensitive)
	if err != nil {
		return wrapEncodingError(err)
	}
	n := a.inst.seed(snapshot)
	a.inst.logger.Printf("vbind: restored %d keys from %s", n, AttrState)
	return nil
}

// Instance returns the underlying instance.
func (a *App) Instance() *Instance {
	return a.inst
}

// Accessor returns the instance's accessor.
func (a *App) Accessor() *Accessor {
	return a.inst.vm
}

// Root returns the mount root.
func (a *App) Root() host.Element {
	return a.root
}

// Unmount unmounts the instance.
func (a *App) Unmount() {
	a.inst.Unmount()
}

// Snapshot encodes the current data store.
func (a *App) Snapshot(sensitive bool) (string, error) {
	if a.encoder == nil {
		return "", ErrNoEncoder
	}
	return a.encoder.Encode(a.inst.data, sensitive)
}

// StateAttrs returns the v-state attribute carrying a snapshot, for
// spreading onto a mount root in a templ template:
//
//	<div id="app" { attrs... }>
func (a *App) StateAttrs(sensitive bool) (templ.Attributes, error) {
	encoded, err := a.Snapshot(sensitive)
	if err != nil {
		return nil, err
	}
	return templ.Attributes{AttrState: encoded}, nil
}
