package config

import (
	"fmt"
	"os"

	"github.com/go-yaml/yaml"
)

const (
	// DoorOpenTicks is how long a car holds its doors after anyone boards
	// or alights.
	DoorOpenTicks = 2

	// DispatchBatchSize bounds how many unassigned requests the dispatcher
	// scores per tick, regardless of backlog.
	DispatchBatchSize = 16

	// SameDirBias is added to the score of a car already moving toward the
	// request so that an idle car at equal distance wins.
	SameDirBias = 2

	// WrongDirPenalty is added when a car is moving away or has already
	// passed the origin. A penalty, not an exclusion.
	WrongDirPenalty = 50

	// Capacity is tracked per car but never enforced when boarding.
	Capacity = 12
)

type ScriptEntry struct {
	Origin      int `yaml:"Origin"`
	Destination int `yaml:"Destination"`
	Tick        int `yaml:"Tick"`
}

type Config struct {
	MinFloor   int           `yaml:"MinFloor"`
	MaxFloor   int           `yaml:"MaxFloor"`
	Elevators  int           `yaml:"Elevators"`
	StartFloor int           `yaml:"StartFloor"`
	TotalTicks int           `yaml:"TotalTicks"`
	PrintEvery int           `yaml:"PrintEvery"`
	Script     []ScriptEntry `yaml:"Script"`
}

// Default mirrors the scripted morning-traffic run the simulator ships with.
func Default() Config {
	return Config{
		MinFloor:   1,
		MaxFloor:   30,
		Elevators:  3,
		StartFloor: 1,
		TotalTicks: 120,
		PrintEvery: 2,
		Script: []ScriptEntry{
			{Origin: 1, Destination: 18, Tick: 0},
			{Origin: 4, Destination: 2, Tick: 1},
			{Origin: 16, Destination: 27, Tick: 5},
			{Origin: 27, Destination: 3, Tick: 7},
			{Origin: 8, Destination: 22, Tick: 10},
			{Origin: 22, Destination: 5, Tick: 12},
			{Origin: 3, Destination: 30, Tick: 20},
			{Origin: 15, Destination: 1, Tick: 25},
			{Origin: 12, Destination: 25, Tick: 40},
			{Origin: 25, Destination: 11, Tick: 45},
		},
	}
}

// Load reads a complete simulation config from a yaml file. Partial files
// are rejected by validation rather than silently mixed with defaults.
func Load(path string) (Config, error) {
	var c Config
	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.MinFloor >= c.MaxFloor {
		return fmt.Errorf("MinFloor %d must be below MaxFloor %d", c.MinFloor, c.MaxFloor)
	}
	if c.Elevators < 1 {
		return fmt.Errorf("need at least one elevator, got %d", c.Elevators)
	}
	if c.StartFloor < c.MinFloor || c.StartFloor > c.MaxFloor {
		return fmt.Errorf("StartFloor %d outside [%d, %d]", c.StartFloor, c.MinFloor, c.MaxFloor)
	}
	if c.TotalTicks < 0 {
		return fmt.Errorf("TotalTicks must not be negative, got %d", c.TotalTicks)
	}
	if c.PrintEvery < 1 {
		return fmt.Errorf("PrintEvery must be at least 1, got %d", c.PrintEvery)
	}
	for _, e := range c.Script {
		if e.Origin == e.Destination {
			return fmt.Errorf("script entry %d->%d: origin and destination must differ", e.Origin, e.Destination)
		}
		if e.Origin < c.MinFloor || e.Origin > c.MaxFloor ||
			e.Destination < c.MinFloor || e.Destination > c.MaxFloor {
			return fmt.Errorf("script entry %d->%d outside [%d, %d]", e.Origin, e.Destination, c.MinFloor, c.MaxFloor)
		}
	}
	return nil
}
