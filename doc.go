// Package vbind binds a flat data store to a tree of markup elements.
//
// Elements declare their bindings with attributes. Writes to the data store
// re-render every bound element, and user input on bound controls writes
// back into the data store.
//
// # Directives
//
//	<input v-model="name">            two-way binding to data["name"]
//	<input v-model.number="count">    same, coerced to float64
//	<input v-model.trim.lazy="q">     trimmed, written on change instead of input
//	<span v-text="total"></span>      one-way binding
//	<button v-on:click="inc">+</button>
//	<button @click="inc">+</button>   shorthand for v-on:click
//
// Directive values name keys. v-model and v-text keys resolve through the
// Accessor, so they may name data or computed values. v-on keys name methods.
//
// # Accessor
//
// The Accessor is the single read/write surface over the three key spaces:
//
//	vm.Get("count")       // data, then computed, then methods, else nil
//	vm.Set("count", 1)    // data keys only; returns false otherwise
//
// Every successful Set runs one full render pass before returning. There is
// no dependency tracking and no batching: the whole render set is refreshed
// on every write.
//
// Computed values and methods receive the Accessor they were bound to:
//
//	inst := vbind.New(vbind.Config{
//	    Data: func() map[string]any { return map[string]any{"count": 0} },
//	    Computed: map[string]vbind.ComputedFunc{
//	        "double": func(vm *vbind.Accessor) any { return vbind.ToNumber(vm.Get("count")) * 2 },
//	    },
//	    Methods: map[string]vbind.MethodFunc{
//	        "inc": func(vm *vbind.Accessor) { vm.Set("count", vbind.ToNumber(vm.Get("count"))+1) },
//	    },
//	})
//
// # Lifecycle
//
// Mount scans the subtree under a root element (v-model, then v-text, then
// v-on), attaches listeners and runs the initial render. Mounting a mounted
// instance fails with ErrAlreadyMounted. Unmount detaches every listener the
// instance attached and drops its bindings; the data store survives.
//
// # Host
//
// The engine only talks to markup through lib/host interfaces. lib/dom
// provides an in-memory implementation backed by golang.org/x/net/html,
// which NewApp, the test harness and the vbind command use.
//
// # State handoff
//
// A server render can stamp an encoded snapshot of the data store on the
// mount root (the v-state attribute). NewApp with an Encoder restores it
// before the first render. Snapshots are signed by default or encrypted when
// sensitive.
package vbind
