package vbind

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pthm/vbind/lib/host"
)

// RenderAll pushes the current value of every render binding into its
// element, in binding order. Keys that resolve to nothing render as empty.
func (inst *Instance) RenderAll() {
	inst.passes++
	inst.renders.each(func(el host.Element, b renderBinding) {
		b.render(el, inst.vm.Get(b.key))
	})
}

// isInputLike reports whether el's user-facing value is its value rather
// than its text.
func isInputLike(el host.Element) bool {
	switch el.TagName() {
	case "input", "textarea":
		return true
	}
	return false
}

// rendererFor picks how values are pushed into el.
func rendererFor(el host.Element) renderer {
	if isInputLike(el) {
		return func(el host.Element, value any) {
			el.SetValue(FormatValue(value))
		}
	}
	return func(el host.Element, value any) {
		el.SetTextContent(FormatValue(value))
	}
}

// extractorFor picks how el's value is read back for a v-model binding.
func extractorFor(el host.Element, d directive) extractor {
	if !isInputLike(el) {
		if d.has(ModTrim) {
			return func(el host.Element) any { return strings.TrimSpace(el.TextContent()) }
		}
		return func(el host.Element) any { return el.TextContent() }
	}
	switch {
	case d.has(ModNumber):
		return func(el host.Element) any { return ToNumber(el.Value()) }
	case d.has(ModTrim):
		return func(el host.Element) any { return strings.TrimSpace(el.Value()) }
	default:
		return func(el host.Element) any { return el.Value() }
	}
}

// FormatValue converts a data value to the text shown in an element.
//
// nil renders as "". Floats use the shortest representation that round
// trips, so float64(5) renders as "5".
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64:
		return fmt.Sprint(v)
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return fmt.Sprint(v)
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

// ToNumber coerces v to a float64 the way a .number binding does.
//
// Strings are trimmed; an empty string is 0 and an unparsable one is NaN.
// Booleans are 1 or 0. nil and other types are NaN.
func ToNumber(v any) float64 {
	switch v := v.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
