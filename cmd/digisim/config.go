// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Instant-Reactive-Systems/digisim/sim"
)

// runConfig is the optional YAML sidecar read via -config: it overrides the
// wheel size and default tick count without touching the circuit file
// itself.
type runConfig struct {
	MaxDelay uint32 `yaml:"maxDelay"`
	Ticks    int    `yaml:"ticks"`
}

func loadRunConfig(path string) (runConfig, error) {
	var rc runConfig
	if path == "" {
		return rc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return rc, err
	}
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return rc, err
	}
	return rc, nil
}

func (rc runConfig) simConfig() sim.Config {
	return sim.Config{MaxDelay: rc.MaxDelay}
}
