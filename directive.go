package vbind

import "strings"

// Directive attribute names.
const (
	AttrModel = "v-model"
	AttrText  = "v-text"
	AttrOn    = "v-on:"
	AttrOnAlt = "@"
	// AttrState carries an encoded data snapshot on a mount root.
	AttrState = "v-state"
)

// Modifiers understood by v-model and v-on.
const (
	ModNumber = "number" // v-model: store the value as a float64
	ModTrim   = "trim"   // v-model: strip surrounding whitespace
	ModLazy   = "lazy"   // v-model: write back on change instead of input
	ModOnce   = "once"   // v-on: detach after the first event
)

type directiveKind int

const (
	directiveModel directiveKind = iota + 1
	directiveText
	directiveOn
)

// directive is a parsed directive attribute name.
type directive struct {
	kind      directiveKind
	event     string // v-on only
	modifiers []string
}

func (d directive) has(mod string) bool {
	for _, m := range d.modifiers {
		if m == mod {
			return true
		}
	}
	return false
}

// parseDirective recognizes a directive attribute name. Names that are not
// directives, or are malformed, report false.
//
//	v-model, v-model.number, v-model.trim.lazy
//	v-text
//	v-on:click, v-on:click.once, @click
func parseDirective(name string) (directive, bool) {
	switch {
	case name == AttrText:
		return directive{kind: directiveText}, true

	case strings.HasPrefix(name, AttrModel):
		rest := name[len(AttrModel):]
		if rest != "" && rest[0] != '.' {
			return directive{}, false
		}
		mods, ok := parseModifiers(rest)
		if !ok {
			return directive{}, false
		}
		return directive{kind: directiveModel, modifiers: mods}, true

	case strings.HasPrefix(name, AttrOn):
		return parseEvent(name[len(AttrOn):])

	case strings.HasPrefix(name, AttrOnAlt):
		return parseEvent(name[len(AttrOnAlt):])
	}
	return directive{}, false
}

func parseEvent(rest string) (directive, bool) {
	event, mods, hasMods := strings.Cut(rest, ".")
	if !isEventName(event) {
		return directive{}, false
	}
	var modifiers []string
	if hasMods {
		var ok bool
		if modifiers, ok = parseModifiers("." + mods); !ok {
			return directive{}, false
		}
	}
	return directive{kind: directiveOn, event: event, modifiers: modifiers}, true
}

// parseModifiers splits ".a.b" into [a b]. Each modifier must be a word.
func parseModifiers(s string) ([]string, bool) {
	if s == "" {
		return nil, true
	}
	parts := strings.Split(s[1:], ".")
	for _, p := range parts {
		if !isWord(p) {
			return nil, false
		}
	}
	return parts, true
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

// isEventName allows word characters plus '-' and ':' for namespaced
// custom events such as "item-saved" or "todo:done".
func isEventName(s string) bool {
	if s == "" || s[0] == '-' || s[0] == ':' {
		return false
	}
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == ':' }) {
		if !isWord(part) {
			return false
		}
	}
	return true
}
