// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command digisim elaborates a CircuitDefinition JSON file against the
// prebuilt registry and runs it for a fixed number of ticks, logging the
// resulting circuit state.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Instant-Reactive-Systems/digisim/circuit"
	"github.com/Instant-Reactive-Systems/digisim/component"
	"github.com/Instant-Reactive-Systems/digisim/sim"
)

func main() {
	configPath := flag.String("config", "", "optional YAML file overriding wheel size and default tick count")
	flag.Parse()
	args := flag.Args()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	if len(args) < 1 {
		log.Fatal("usage: digisim [-config file.yaml] <circuit.json> [ticks]")
	}

	rc, err := loadRunConfig(*configPath)
	if err != nil {
		log.Fatal("loading run config", zap.Error(err))
	}

	var def circuit.CircuitDefinition
	f, err := os.Open(args[0])
	if err != nil {
		log.Fatal("opening circuit definition", zap.Error(err))
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&def); err != nil {
		log.Fatal("decoding circuit definition", zap.Error(err))
	}

	ticks := rc.Ticks
	if ticks == 0 {
		ticks = 64
	}
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			ticks = n
		}
	}

	reg := circuit.NewRegistry()
	component.Install(reg)

	s := sim.New(rc.simConfig(), log)
	if err := s.SetCircuit(def, reg); err != nil {
		log.Fatal("elaborating circuit", zap.Error(err))
	}
	if err := s.Init(); err != nil {
		log.Fatal("initializing simulation", zap.Error(err))
	}
	if err := s.TickFor(ticks); err != nil {
		log.Fatal("running simulation", zap.Error(err))
	}

	state, err := s.CircuitState()
	if err != nil {
		log.Fatal("reading circuit state", zap.Error(err))
	}
	for id, raw := range state {
		log.Info("component state", zap.Uint32("componentId", uint32(id)), zap.ByteString("state", raw))
	}
}
