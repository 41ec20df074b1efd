package sim

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario holds an airport setup, loadable from a YAML file.
// Nil pointer fields in Config mean "not set in YAML"; they do not override
// the base Config passed to Apply.
type Scenario struct {
	Config  ScenarioConfig `yaml:"config"`
	Flights []FlightSpec   `yaml:"flights"`
}

// ScenarioConfig mirrors Config with optional fields.
type ScenarioConfig struct {
	RegistrationCounters *int           `yaml:"registration_counters"`
	SecurityCheckpoints  *int           `yaml:"security_checkpoints"`
	BoardingRate         *int           `yaml:"boarding_rate"`
	SpawnProbability     *float64       `yaml:"spawn_probability"`
	TickDelay            *time.Duration `yaml:"tick_delay"`
}

// FlightSpec describes one startup flight.
type FlightSpec struct {
	Number      string `yaml:"number"`
	Destination string `yaml:"destination"`
	Departure   int64  `yaml:"departure"`
	Capacity    int    `yaml:"capacity"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses YAML scenario data. Unknown fields are errors so that
// typos do not silently fall back to defaults.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &s, nil
}

// Apply overlays the fields set in the scenario onto base.
func (s *Scenario) Apply(base Config) Config {
	c := s.Config
	if c.RegistrationCounters != nil {
		base.RegistrationCounters = *c.RegistrationCounters
	}
	if c.SecurityCheckpoints != nil {
		base.SecurityCheckpoints = *c.SecurityCheckpoints
	}
	if c.BoardingRate != nil {
		base.BoardingRate = *c.BoardingRate
	}
	if c.SpawnProbability != nil {
		base.SpawnProbability = *c.SpawnProbability
	}
	if c.TickDelay != nil {
		base.TickDelay = *c.TickDelay
	}
	return base
}

// Build creates a Simulator with cfg and adds the scenario's flights in
// file order.
func (s *Scenario) Build(cfg Config, key SimulationKey) (*Simulator, error) {
	sim, err := NewSimulator(cfg, key)
	if err != nil {
		return nil, err
	}
	for i, f := range s.Flights {
		if err := sim.AddFlight(f.Number, f.Destination, f.Departure, f.Capacity); err != nil {
			return nil, fmt.Errorf("scenario flight %d: %w", i, err)
		}
	}
	return sim, nil
}
