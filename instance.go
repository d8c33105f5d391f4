package vbind

import (
	"io"
	"log"
	"maps"

	"github.com/pthm/vbind/lib/host"
)

// Config describes a binding session.
type Config struct {
	// Data produces the data store. It is called once, by New.
	Data func() map[string]any
	// Computed values, evaluated on every read.
	Computed map[string]ComputedFunc
	// Methods, invoked by v-on directives or Accessor.Call.
	Methods map[string]MethodFunc
	// Logger receives lifecycle and directive diagnostics. Nil discards them.
	Logger *log.Logger
}

// Instance is one binding session: a data store, the bindings discovered in
// a mounted subtree, and the listeners attached to it.
//
// An Instance is not safe for concurrent use. All calls, including those
// made from listeners, are expected on the host's event loop.
type Instance struct {
	data     map[string]any
	computed map[string]func() any
	methods  map[string]func()
	vm       *Accessor

	models    *bindings[modelBinding]
	renders   *bindings[renderBinding]
	listeners ledger

	mounted bool
	passes  uint64
	logger  *log.Logger
}

// New creates an unmounted instance. Computed values and methods are bound
// to the instance's Accessor here.
func New(cfg Config) *Instance {
	inst := &Instance{
		computed: make(map[string]func() any, len(cfg.Computed)),
		methods:  make(map[string]func(), len(cfg.Methods)),
		models:   newBindings[modelBinding](),
		renders:  newBindings[renderBinding](),
		logger:   cfg.Logger,
	}
	if inst.logger == nil {
		inst.logger = log.New(io.Discard, "", 0)
	}
	inst.vm = &Accessor{inst: inst}

	if cfg.Data != nil {
		inst.data = cfg.Data()
	}
	if inst.data == nil {
		inst.data = make(map[string]any)
	}

	for key, fn := range cfg.Computed {
		inst.computed[key] = func() any { return fn(inst.vm) }
	}
	for key, fn := range cfg.Methods {
		inst.methods[key] = func() { fn(inst.vm) }
	}
	return inst
}

// Accessor returns the instance's read/write surface.
func (inst *Instance) Accessor() *Accessor {
	return inst.vm
}

// Mounted reports whether the instance is mounted.
func (inst *Instance) Mounted() bool {
	return inst.mounted
}

// Passes returns the number of render passes run so far.
func (inst *Instance) Passes() uint64 {
	return inst.passes
}

// Data returns a copy of the data store.
func (inst *Instance) Data() map[string]any {
	return maps.Clone(inst.data)
}

// Mount binds the subtree under root: v-model directives are scanned first,
// then v-text, then v-on, and finally every bound element is rendered once.
// Mounting a mounted instance fails with ErrAlreadyMounted.
func (inst *Instance) Mount(root host.Element) error {
	if inst.mounted {
		return ErrAlreadyMounted
	}
	if root == nil {
		return ErrMountPointNotFound
	}

	inst.scanModels(root)
	inst.scanTexts(root)
	inst.scanEvents(root)
	inst.RenderAll()
	inst.mounted = true

	inst.logger.Printf("vbind: mounted <%s>: %d render bindings, %d model bindings, %d listeners",
		root.TagName(), inst.renders.len(), inst.models.len(), inst.listeners.len())
	return nil
}

// Unmount detaches every listener the instance attached, newest first, and
// drops its bindings. It is a no-op when not mounted. The data store is
// kept, and the instance may be mounted again.
func (inst *Instance) Unmount() {
	if !inst.mounted {
		return
	}
	inst.renders.clear()
	inst.models.clear()
	n := inst.listeners.drain()
	inst.mounted = false

	inst.logger.Printf("vbind: unmounted: %d listeners detached", n)
}

// seed overwrites data keys from a restored snapshot without rendering.
// Keys the data store does not declare are ignored.
func (inst *Instance) seed(snapshot map[string]any) int {
	n := 0
	for k, v := range snapshot {
		if _, ok := inst.data[k]; ok {
			inst.data[k] = v
			n++
		}
	}
	return n
}
