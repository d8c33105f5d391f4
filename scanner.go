package vbind

import "github.com/pthm/vbind/lib/host"

// listen attaches fn to el for event and records it in the ledger.
func (inst *Instance) listen(el host.Element, event string, fn func(host.Event)) *host.Listener {
	l := host.NewListener(fn)
	el.AddEventListener(event, l)
	inst.listeners.add(el, event, l)
	return l
}

// scanModels registers every v-model directive under root. Each directive
// attaches its own listener; the listener reads the element's current model
// binding when it fires, so a later directive on the same element wins.
func (inst *Instance) scanModels(root host.Element) {
	for _, el := range root.QueryAll() {
		for _, name := range el.AttributeNames() {
			d, ok := parseDirective(name)
			if !ok || d.kind != directiveModel {
				continue
			}
			key, _ := el.Attribute(name)

			event := "input"
			if d.has(ModLazy) {
				event = "change"
			}
			inst.listen(el, event, func(e host.Event) {
				inst.writeBack(el)
			})

			inst.models.set(el, modelBinding{key: key, extract: extractorFor(el, d)})
			inst.renders.set(el, renderBinding{key: key, render: rendererFor(el)})
		}
	}
}

// scanTexts registers every v-text directive under root.
func (inst *Instance) scanTexts(root host.Element) {
	for _, el := range root.QueryAttr(AttrText) {
		key, _ := el.Attribute(AttrText)
		inst.renders.set(el, renderBinding{key: key, render: rendererFor(el)})
	}
}

// scanEvents attaches a listener for every v-on directive under root.
func (inst *Instance) scanEvents(root host.Element) {
	for _, el := range root.QueryAll() {
		for _, name := range el.AttributeNames() {
			d, ok := parseDirective(name)
			if !ok || d.kind != directiveOn {
				continue
			}
			key, _ := el.Attribute(name)
			inst.bindEvent(el, d, key)
		}
	}
}

func (inst *Instance) bindEvent(el host.Element, d directive, key string) {
	once := d.has(ModOnce)
	var l *host.Listener
	l = inst.listen(el, d.event, func(e host.Event) {
		if once {
			el.RemoveEventListener(d.event, l)
		}
		if !inst.vm.Call(key) {
			inst.logger.Printf("vbind: %s on <%s>: %q is not a method", d.event, el.TagName(), key)
		}
	})
}

// writeBack copies el's current value into data through the accessor.
func (inst *Instance) writeBack(el host.Element) {
	b, ok := inst.models.get(el)
	if !ok {
		return
	}
	if !inst.vm.Set(b.key, b.extract(el)) {
		inst.logger.Printf("vbind: v-model on <%s>: %q is not a data key", el.TagName(), b.key)
	}
}
