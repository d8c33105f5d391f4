package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/pthm/vbind"
)

// Env is configuration read from the environment.
type Env struct {
	Key string `env:"VBIND_KEY"`
	El  string `env:"VBIND_EL" envDefault:"#app"`
}

func loadEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Scenario is the YAML file given to render with --config.
//
//	el: "#app"
//	data:
//	  count: 0
//	methods:
//	  inc:
//	    - set: count
//	      add: 1
//	steps:
//	  - input: "#n"
//	    value: "5"
//	  - fire: "#plus"
//	    event: click
type Scenario struct {
	El      string          `yaml:"el"`
	Data    map[string]any  `yaml:"data"`
	Methods map[string][]Op `yaml:"methods"`
	Steps   []Step          `yaml:"steps"`
}

// Op is one write performed by a scenario method: either Set=To, or
// Set+=Add when Add is given.
type Op struct {
	Set string   `yaml:"set"`
	To  any      `yaml:"to"`
	Add *float64 `yaml:"add"`
}

// Step is one simulated interaction. Exactly one of Input, Change, Fire or
// Set should be given.
type Step struct {
	Input  string `yaml:"input"`
	Change string `yaml:"change"`
	Value  string `yaml:"value"`
	Fire   string `yaml:"fire"`
	Event  string `yaml:"event"`
	Set    string `yaml:"set"`
	To     any    `yaml:"to"`
}

func loadScenario(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &sc, nil
}

// methods turns the declarative method table into MethodFuncs.
func (sc *Scenario) methods() map[string]vbind.MethodFunc {
	out := make(map[string]vbind.MethodFunc, len(sc.Methods))
	for name, ops := range sc.Methods {
		out[name] = func(vm *vbind.Accessor) {
			for _, op := range ops {
				if op.Add != nil {
					vm.Set(op.Set, vbind.ToNumber(vm.Get(op.Set))+*op.Add)
					continue
				}
				vm.Set(op.Set, op.To)
			}
		}
	}
	return out
}
