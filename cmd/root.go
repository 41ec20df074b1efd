package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goforj/godump"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/airport-sim/airport-sim/sim"
	"github.com/airport-sim/airport-sim/sim/trace"
)

var (
	// CLI flags for the run command
	seed         int64         // Seed for arrivals, names and passenger IDs
	numTicks     int64         // Number of ticks to run (0 = until stopped)
	tickDelay    time.Duration // Pause between ticks (0 = unlimited rate)
	regCounters  int           // Registration counters
	secChecks    int           // Security checkpoints
	boardingRate int           // Passengers boarded per flight per tick
	spawnProb    float64       // Arrival burst probability per tick
	scenarioPath string        // Optional YAML scenario file
	logLevel     string        // Log verbosity level
	logFile      string        // Optional rotated log file
	traceOut     string        // Optional trace output path
	traceLevel   string        // Trace verbosity
	interactive  bool          // Full-screen terminal mode
	dumpConfig   bool          // Dump the resolved scenario before running
	quietMetrics bool          // Suppress the end-of-run metrics summary
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "airport-sim",
	Short: "Discrete-time simulator for airport passenger flow",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the airport simulation",
	Run: func(cmd *cobra.Command, args []string) {
		closeLog, err := setupLogging(logLevel, logFile, interactive)
		if err != nil {
			logrus.Fatalf("Invalid logging setup: %v", err)
		}
		defer closeLog()

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q", traceLevel)
		}

		scenario := DefaultScenario()
		if scenarioPath != "" {
			scenario, err = sim.LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("Unable to load scenario: %v", err)
			}
		}
		cfg := resolveConfig(cmd, scenario)

		if dumpConfig {
			godump.Dump(cfg, scenario.Flights)
		}

		s, err := scenario.Build(cfg, sim.NewSimulationKey(seed))
		if err != nil {
			logrus.Fatalf("Unable to set up simulation: %v", err)
		}

		logrus.Infof("Starting simulation with %d flights, seed=%d, ticks=%d, config=%+v",
			len(scenario.Flights), seed, numTicks, cfg)

		var st *trace.SimulationTrace
		if traceOut != "" {
			level := trace.TraceLevel(traceLevel)
			if level == "" || level == trace.TraceLevelNone {
				level = trace.TraceLevelFull
			}
			st = trace.NewSimulationTrace(trace.TraceConfig{Level: level, Seed: seed})
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		startTime := time.Now()
		if interactive {
			err = runInteractive(ctx, s, numTicks, st)
		} else {
			err = runLoop(ctx, s, numTicks, os.Stdout, st)
		}
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		if st != nil {
			if err := trace.WriteFile(traceOut, st); err != nil {
				logrus.Fatalf("Unable to write trace: %v", err)
			}
			logrus.Infof("Wrote %d tick records to %s", len(st.Ticks), traceOut)
		}
		if !quietMetrics {
			s.Metrics.Print(os.Stdout, s.Clock)
		}
		logrus.Infof("Simulation complete after %d ticks in %v.", s.Clock, time.Since(startTime))
	},
}

// resolveConfig layers defaults, scenario values and explicitly set flags,
// in increasing priority.
func resolveConfig(cmd *cobra.Command, scenario *sim.Scenario) sim.Config {
	cfg := scenario.Apply(sim.DefaultConfig())
	flags := cmd.Flags()
	if flags.Changed("reg-counters") {
		cfg.RegistrationCounters = regCounters
	}
	if flags.Changed("sec-checks") {
		cfg.SecurityCheckpoints = secChecks
	}
	if flags.Changed("boarding-rate") {
		cfg.BoardingRate = boardingRate
	}
	if flags.Changed("spawn-prob") {
		cfg.SpawnProbability = spawnProb
	}
	if flags.Changed("tick-delay") {
		cfg.TickDelay = tickDelay
	}
	return cfg
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for passenger arrivals, names and IDs")
	runCmd.Flags().Int64Var(&numTicks, "ticks", 0, "Number of ticks to simulate (0 = run until interrupted)")
	runCmd.Flags().DurationVar(&tickDelay, "tick-delay", sim.DefaultTickDelay, "Pause between ticks (0 = unlimited rate)")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file with rotation instead of stderr")

	// Airport tunables
	runCmd.Flags().IntVar(&regCounters, "reg-counters", sim.DefaultRegistrationCounters, "Passengers registered per tick")
	runCmd.Flags().IntVar(&secChecks, "sec-checks", sim.DefaultSecurityCheckpoints, "Passengers screened per tick")
	runCmd.Flags().IntVar(&boardingRate, "boarding-rate", sim.DefaultBoardingRate, "Passengers boarded per flight per tick")
	runCmd.Flags().Float64Var(&spawnProb, "spawn-prob", sim.DefaultSpawnProbability, "Probability of new arrivals each tick")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file with config and startup flights")

	// Output
	runCmd.Flags().StringVar(&traceOut, "trace-out", "", "Write a msgpack tick trace to this path (.zst suffix compresses)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelFull), "Trace verbosity (none, events, full)")
	runCmd.Flags().BoolVar(&interactive, "interactive", false, "Full-screen terminal view; press Q to quit")
	runCmd.Flags().BoolVar(&dumpConfig, "dump-config", false, "Dump the resolved config and flight list before running")
	runCmd.Flags().BoolVar(&quietMetrics, "no-metrics", false, "Do not print the metrics summary at exit")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(scenarioCmd)
}
