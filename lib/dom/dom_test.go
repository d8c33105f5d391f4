package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pthm/vbind/lib/host"
)

func mustParse(t *testing.T, markup string) *Document {
	t.Helper()
	doc, err := ParseString(markup)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	return doc
}

func TestQuerySelector(t *testing.T) {
	doc := mustParse(t, `<div id="app"><p class="a b">one</p><span data-x="1">two</span><span>three</span></div>`)

	tests := []struct {
		selector string
		wantTag  string
		wantText string
		found    bool
	}{
		{"#app", "div", "onetwothree", true},
		{".b", "p", "one", true},
		{"[data-x]", "span", "two", true},
		{"[data-x=1]", "span", "two", true},
		{"[data-x=2]", "", "", false},
		{"span", "span", "two", true},
		{"#missing", "", "", false},
		{"div span", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			el, ok := doc.QuerySelector(tt.selector)
			if ok != tt.found {
				t.Fatalf("QuerySelector(%q) found = %v, want %v", tt.selector, ok, tt.found)
			}
			if !ok {
				return
			}
			if el.TagName() != tt.wantTag {
				t.Errorf("TagName() = %q, want %q", el.TagName(), tt.wantTag)
			}
			if el.TextContent() != tt.wantText {
				t.Errorf("TextContent() = %q, want %q", el.TextContent(), tt.wantText)
			}
		})
	}
}

func TestElementIdentityIsStable(t *testing.T) {
	doc := mustParse(t, `<div id="app"><input id="x"></div>`)
	root := doc.Find("#app")

	a := doc.Find("#x")
	b := root.QueryAll()[0]
	if host.Element(a) != b {
		t.Error("same node should yield the same Element")
	}
}

func TestAttributeNamesKeepSourceOrder(t *testing.T) {
	doc := mustParse(t, `<div id="app"><input v-model.number="n" v-on:input="log" @click="go" type="text"></div>`)
	el := doc.Find("input")

	want := []string{"v-model.number", "v-on:input", "@click", "type"}
	if diff := cmp.Diff(want, el.AttributeNames()); diff != "" {
		t.Errorf("AttributeNames() mismatch (-want +got):\n%s", diff)
	}
	if v, ok := el.Attribute("v-model.number"); !ok || v != "n" {
		t.Errorf("Attribute(v-model.number) = %q, %v", v, ok)
	}
}

func TestQueryAttr(t *testing.T) {
	doc := mustParse(t, `<div id="app"><span v-text="a"></span><p><b v-text="b"></b></p><i></i></div>`)
	root := doc.Find("#app")

	var keys []string
	for _, el := range root.QueryAttr("v-text") {
		v, _ := el.Attribute("v-text")
		keys = append(keys, v)
	}
	if diff := cmp.Diff([]string{"a", "b"}, keys); diff != "" {
		t.Errorf("QueryAttr mismatch (-want +got):\n%s", diff)
	}
	if n := len(root.QueryAll()); n != 4 {
		t.Errorf("QueryAll() returned %d elements, want 4", n)
	}
}

func TestListeners(t *testing.T) {
	doc := mustParse(t, `<button id="b">go</button>`)
	btn := doc.Find("#b")

	var got []string
	l1 := host.NewListener(func(e host.Event) { got = append(got, "l1:"+e.Type) })
	l2 := host.NewListener(func(e host.Event) { got = append(got, "l2:"+e.Type) })

	btn.AddEventListener("click", l1)
	btn.AddEventListener("click", l2)
	btn.AddEventListener("click", l1) // duplicate ignored
	btn.Click()

	if diff := cmp.Diff([]string{"l1:click", "l2:click"}, got); diff != "" {
		t.Errorf("dispatch mismatch (-want +got):\n%s", diff)
	}

	btn.RemoveEventListener("click", l1)
	if n := btn.ListenerCount("click"); n != 1 {
		t.Errorf("ListenerCount() = %d, want 1", n)
	}
	btn.RemoveEventListener("click", l2)
	if n := btn.ListenerCount("click"); n != 0 {
		t.Errorf("ListenerCount() = %d, want 0", n)
	}

	got = nil
	btn.Click()
	if len(got) != 0 {
		t.Errorf("removed listeners fired: %v", got)
	}
}

func TestDispatchTargetsElement(t *testing.T) {
	doc := mustParse(t, `<input id="i">`)
	in := doc.Find("#i")

	var target host.Element
	in.AddEventListener("input", host.NewListener(func(e host.Event) { target = e.Target }))
	in.Input("hello")

	if target != host.Element(in) {
		t.Error("event target should be the dispatching element")
	}
	if in.Value() != "hello" {
		t.Errorf("Value() = %q, want hello", in.Value())
	}
}

func TestValueAndText(t *testing.T) {
	doc := mustParse(t, `<input id="i" value="x"><textarea id="t">abc</textarea><span id="s">old <b>bold</b></span>`)

	in := doc.Find("#i")
	if in.Value() != "x" {
		t.Errorf("input Value() = %q, want x", in.Value())
	}
	in.SetValue("y")
	if in.OuterHTML() != `<input id="i" value="y"/>` {
		t.Errorf("OuterHTML() = %q", in.OuterHTML())
	}

	ta := doc.Find("#t")
	if ta.Value() != "abc" {
		t.Errorf("textarea Value() = %q, want abc", ta.Value())
	}
	ta.SetValue("def")
	if ta.TextContent() != "def" {
		t.Errorf("textarea TextContent() = %q, want def", ta.TextContent())
	}

	span := doc.Find("#s")
	if span.TextContent() != "old bold" {
		t.Errorf("TextContent() = %q", span.TextContent())
	}
	span.SetTextContent("new")
	if span.InnerHTML() != "new" {
		t.Errorf("InnerHTML() = %q, want new", span.InnerHTML())
	}
	span.SetTextContent("")
	if span.OuterHTML() != `<span id="s"></span>` {
		t.Errorf("OuterHTML() = %q", span.OuterHTML())
	}
}

func TestInputOnNonControlSetsText(t *testing.T) {
	doc := mustParse(t, `<div id="d" contenteditable>a</div>`)
	d := doc.Find("#d")
	d.Input("typed")
	if d.TextContent() != "typed" {
		t.Errorf("TextContent() = %q, want typed", d.TextContent())
	}
}

func TestChangeFiresInputThenChange(t *testing.T) {
	doc := mustParse(t, `<input id="i">`)
	in := doc.Find("#i")

	var got []string
	rec := host.NewListener(func(e host.Event) { got = append(got, e.Type) })
	in.AddEventListener("input", rec)
	in.AddEventListener("change", rec)
	in.Change("v")

	if diff := cmp.Diff([]string{"input", "change"}, got); diff != "" {
		t.Errorf("event order mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributeEdits(t *testing.T) {
	doc := mustParse(t, `<div id="d" a="1"></div>`)
	d := doc.Find("#d")

	d.SetAttribute("a", "2")
	d.SetAttribute("b", "3")
	d.RemoveAttribute("id")

	if diff := cmp.Diff([]string{"a", "b"}, d.AttributeNames()); diff != "" {
		t.Errorf("AttributeNames() mismatch (-want +got):\n%s", diff)
	}
	if v, _ := d.Attribute("a"); v != "2" {
		t.Errorf("Attribute(a) = %q, want 2", v)
	}
}
