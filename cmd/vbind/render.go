package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/pthm/vbind"
	"github.com/pthm/vbind/lib/dom"
)

func runRender(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "scenario file")
	state := fs.Bool("state", false, "stamp a v-state snapshot on the mount root")
	sensitive := fs.Bool("sensitive", false, "encrypt the snapshot")
	verbose := fs.Bool("v", false, "log diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("render takes exactly one markup file")
	}

	cfg, err := loadEnv()
	if err != nil {
		return err
	}

	sc := &Scenario{}
	if *configPath != "" {
		if sc, err = loadScenario(*configPath); err != nil {
			return err
		}
	}
	el := sc.El
	if el == "" {
		el = cfg.El
	}
	data := sc.Data
	if data == nil {
		data = map[string]any{}
	}

	var enc *vbind.Encoder
	if cfg.Key != "" {
		if enc, err = vbind.NewEncoder([]byte(cfg.Key)); err != nil {
			return err
		}
	}
	if *state && enc == nil {
		return errors.New("--state requires VBIND_KEY")
	}

	var logger *log.Logger
	if *verbose {
		logger = log.New(stderr, "", 0)
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", fs.Arg(0), err)
	}

	app, err := vbind.NewApp(doc, vbind.Options{
		El:        el,
		Data:      data,
		Methods:   sc.methods(),
		Logger:    logger,
		Encoder:   enc,
		Sensitive: *sensitive,
	})
	if err != nil {
		return err
	}

	for i, step := range sc.Steps {
		if err := applyStep(doc, app, step); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	if *state {
		if err := app.StampState(*sensitive); err != nil {
			return err
		}
	}

	if err := app.Component().Render(context.Background(), stdout); err != nil {
		return err
	}
	if out, ok := stdout.(*os.File); ok && isatty.IsTerminal(out.Fd()) {
		fmt.Fprintln(stdout)
	}
	return nil
}

func applyStep(doc *dom.Document, app *vbind.App, step Step) error {
	find := func(sel string) (*dom.Element, error) {
		el := doc.Find(sel)
		if el == nil {
			return nil, fmt.Errorf("%w: %q", vbind.ErrElementNotFound, sel)
		}
		return el, nil
	}

	switch {
	case step.Input != "":
		el, err := find(step.Input)
		if err != nil {
			return err
		}
		el.Input(step.Value)
	case step.Change != "":
		el, err := find(step.Change)
		if err != nil {
			return err
		}
		el.Change(step.Value)
	case step.Fire != "":
		el, err := find(step.Fire)
		if err != nil {
			return err
		}
		event := step.Event
		if event == "" {
			event = "click"
		}
		el.Dispatch(event)
	case step.Set != "":
		if !app.Accessor().Set(step.Set, step.To) {
			return fmt.Errorf("%q is not a data key", step.Set)
		}
	default:
		return errors.New("empty step")
	}
	return nil
}
