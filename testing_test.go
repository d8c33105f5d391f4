package vbind

import (
	"testing"
)

func TestTestMountDefaultsToApp(t *testing.T) {
	app, err := TestMount(`<section id="app"><i id="t" v-text="t"></i></section>`, Options{
		Data: map[string]any{"t": "ok"},
	})
	if err != nil {
		t.Fatalf("TestMount() error = %v", err)
	}
	if app.Root().TagName() != "section" {
		t.Errorf("root = <%s>, want <section>", app.Root().TagName())
	}
	if !app.HTMLContains(`<i id="t" v-text="t">ok</i>`) {
		t.Errorf("unexpected HTML: %s", app.HTML())
	}
}

func TestTestMountCustomEl(t *testing.T) {
	app, err := TestMount(`<div id="app"></div><div class="widget"><b id="b" v-text="v"></b></div>`, Options{
		El:   ".widget",
		Data: map[string]any{"v": 1},
	})
	if err != nil {
		t.Fatalf("TestMount() error = %v", err)
	}
	if app.Text("#b") != "1" {
		t.Errorf("text = %q, want 1", app.Text("#b"))
	}
}

func TestTestMountErrors(t *testing.T) {
	if _, err := TestMount(`<div></div>`, Options{Data: map[string]any{}}); !IsNotFound(err) {
		t.Errorf("TestMount() without #app error = %v, want not found", err)
	}
}

func TestTestAppMissingElements(t *testing.T) {
	app, err := TestMount(`<div id="app"></div>`, Options{Data: map[string]any{}})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		call func() error
	}{
		{"Input", func() error { return app.Input("#x", "v") }},
		{"Change", func() error { return app.Change("#x", "v") }},
		{"Fire", func() error { return app.Fire("#x", "click") }},
		{"Click", func() error { return app.Click("#x") }},
		{"Find", func() error {
			_, err := app.Find("#x")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !IsNotFound(err) {
				t.Errorf("%s() error = %v, want ErrElementNotFound", tt.name, err)
			}
		})
	}

	if app.Text("#x") != "" || app.Value("#x") != "" || app.Listeners("#x", "click") != 0 {
		t.Error("lookups on missing elements should return zero values")
	}
}

func TestHTMLContainsHelpers(t *testing.T) {
	app, err := TestMount(`<div id="app"><span v-text="a"></span><span v-text="b"></span></div>`, Options{
		Data: map[string]any{"a": "alpha", "b": "beta"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if !app.HTMLContainsAll("alpha", "beta") {
		t.Error("HTMLContainsAll should find both values")
	}
	if app.HTMLContainsAll("alpha", "gamma") {
		t.Error("HTMLContainsAll should fail on a missing value")
	}
	if !app.HTMLContainsAny("gamma", "beta") {
		t.Error("HTMLContainsAny should find beta")
	}
	if app.HTMLContainsAny("gamma", "delta") {
		t.Error("HTMLContainsAny should fail when nothing matches")
	}
}
