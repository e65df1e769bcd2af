// Package config loads the scenario configuration of the bindchain CLI.
//
// A configuration file is YAML and only needs to name the values it changes;
// everything else keeps the value from Default:
//
//	sequence:
//	  seed: [start]
//	  steps:
//	    - [A, B]
//	    - ["1", "2", "3"]
//	optional:
//	  inputs: [5, 3.14, 8]
//	  steps: [add1, multiply_by_2, halve]
//	annotated:
//	  seed: 3
//	  steps: [square, add1, double]
//	  emoji: ["🍕", "🍺"]
//
// Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes the three demonstration scenarios.
type Config struct {
	Sequence  Sequence  `yaml:"sequence"`
	Optional  Optional  `yaml:"optional"`
	Annotated Annotated `yaml:"annotated"`
}

// Sequence is bound once per entry of Steps; each entry lists the suffixes
// appended to every element.
type Sequence struct {
	Seed  []string   `yaml:"seed"`
	Steps [][]string `yaml:"steps"`
}

// Optional runs every input through the named steps.
type Optional struct {
	Inputs []float64 `yaml:"inputs"`
	Steps  []string  `yaml:"steps"`
}

// Annotated runs Seed through the named steps and decorates an empty string
// with every Emoji.
type Annotated struct {
	Seed  int      `yaml:"seed"`
	Steps []string `yaml:"steps"`
	Emoji []string `yaml:"emoji"`
}

// Default returns the built-in scenarios.
func Default() Config {
	return Config{
		Sequence: Sequence{
			Seed:  []string{"start"},
			Steps: [][]string{{"A", "B"}, {"1", "2", "3"}},
		},
		Optional: Optional{
			Inputs: []float64{5, 3.14, 8},
			Steps:  []string{"add1", "multiply_by_2", "halve"},
		},
		Annotated: Annotated{
			Seed:  3,
			Steps: []string{"square", "add1", "double"},
			Emoji: []string{"🍕", "🍺", "🎉"},
		},
	}
}

// Load reads the YAML file at path on top of Default. An empty path returns
// Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads YAML from r on top of Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that no step or emoji entry is blank. Step names are
// resolved later by the demo runner.
func (c Config) Validate() error {
	var errs []error

	for i, name := range c.Optional.Steps {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("optional.steps[%d]: empty step name", i))
		}
	}
	for i, name := range c.Annotated.Steps {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("annotated.steps[%d]: empty step name", i))
		}
	}
	for i, e := range c.Annotated.Emoji {
		if e == "" {
			errs = append(errs, fmt.Errorf("annotated.emoji[%d]: empty entry", i))
		}
	}

	return errors.Join(errs...)
}
