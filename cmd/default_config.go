package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sim "github.com/airport-sim/airport-sim/sim"
)

// DefaultScenario returns the startup flight list used when no --scenario
// file is given. Its config section is empty, so the stock tunables apply.
func DefaultScenario() *sim.Scenario {
	return &sim.Scenario{
		Flights: []sim.FlightSpec{
			{Number: "PS101", Destination: "Kyiv", Departure: 8, Capacity: 6},
			{Number: "PS202", Destination: "Lviv", Departure: 10, Capacity: 4},
			{Number: "PS303", Destination: "Odesa", Departure: 12, Capacity: 5},
		},
	}
}

// templateScenario is DefaultScenario with every config field filled in, for
// use as a starting point for custom scenario files.
func templateScenario() *sim.Scenario {
	cfg := sim.DefaultConfig()
	s := DefaultScenario()
	s.Config = sim.ScenarioConfig{
		RegistrationCounters: &cfg.RegistrationCounters,
		SecurityCheckpoints:  &cfg.SecurityCheckpoints,
		BoardingRate:         &cfg.BoardingRate,
		SpawnProbability:     &cfg.SpawnProbability,
		TickDelay:            &cfg.TickDelay,
	}
	return s
}

// scenarioCmd prints the template scenario as YAML to stdout.
var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Print the default scenario as YAML",
	Long:  "Print the built-in flight list and tunables as a scenario YAML file. Output is written to stdout for piping into a file passed to run --scenario.",
	Run: func(cmd *cobra.Command, args []string) {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(templateScenario()); err != nil {
			logrus.Fatalf("Failed to encode scenario: %v", err)
		}
		if err := enc.Close(); err != nil {
			logrus.Fatalf("Failed to flush scenario: %v", err)
		}
	},
}
