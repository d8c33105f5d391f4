package vbind

import "github.com/pthm/vbind/lib/host"

// Element is an alias for host.Element for convenience.
type Element = host.Element

// Document is an alias for host.Document for convenience.
type Document = host.Document

// Listener is an alias for host.Listener for convenience.
type Listener = host.Listener

// Event is an alias for host.Event for convenience.
type Event = host.Event

// ComputedFunc derives a value from the current state. It is evaluated on
// every read and never cached.
type ComputedFunc func(vm *Accessor) any

// MethodFunc responds to a user action. It may write through vm.
type MethodFunc func(vm *Accessor)
