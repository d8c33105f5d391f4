package vbind

// Accessor is the read/write surface over an instance's data, computed
// values and methods.
//
// Reads resolve data first, then computed, then methods. Writes are only
// accepted for data keys and each accepted write runs a full render pass
// before returning.
type Accessor struct {
	inst *Instance
}

// Get resolves key. Data values are returned as stored, computed values are
// evaluated, and methods are returned as a callable func(). A key found
// nowhere yields nil.
func (vm *Accessor) Get(key string) any {
	v, _ := vm.Lookup(key)
	return v
}

// Lookup is Get reporting whether key resolved at all.
func (vm *Accessor) Lookup(key string) (any, bool) {
	inst := vm.inst
	if v, ok := inst.data[key]; ok {
		return v, true
	}
	if fn, ok := inst.computed[key]; ok {
		return fn(), true
	}
	if fn, ok := inst.methods[key]; ok {
		return fn, true
	}
	return nil, false
}

// Set writes value under a data key and re-renders. It reports false, and
// changes nothing, when key is not a data key.
func (vm *Accessor) Set(key string, value any) bool {
	inst := vm.inst
	if _, ok := inst.data[key]; !ok {
		return false
	}
	inst.data[key] = value
	inst.RenderAll()
	return true
}

// Call invokes the method named key. It reports false when key does not
// resolve to a method.
func (vm *Accessor) Call(key string) bool {
	fn, ok := vm.Get(key).(func())
	if !ok {
		return false
	}
	fn()
	return true
}
