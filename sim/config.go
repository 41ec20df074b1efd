package sim

import (
	"errors"
	"fmt"
	"time"
)

// Default tunables, matching the airport the simulator was first built for.
const (
	DefaultRegistrationCounters = 3
	DefaultSecurityCheckpoints  = 2
	DefaultBoardingRate         = 5
	DefaultSpawnProbability     = 0.6
	DefaultTickDelay            = 400 * time.Millisecond
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config groups the simulation tunables. All of them are injected; none are
// compiled into the stages.
type Config struct {
	RegistrationCounters int           // passengers registered per tick (≥0)
	SecurityCheckpoints  int           // passengers screened per tick (≥0)
	BoardingRate         int           // passengers boarded per flight per tick (≥0)
	SpawnProbability     float64       // chance of an arrival burst per tick, in [0, 1]
	TickDelay            time.Duration // driver pacing between ticks; 0 = unlimited
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		RegistrationCounters: DefaultRegistrationCounters,
		SecurityCheckpoints:  DefaultSecurityCheckpoints,
		BoardingRate:         DefaultBoardingRate,
		SpawnProbability:     DefaultSpawnProbability,
		TickDelay:            DefaultTickDelay,
	}
}

// NewConfig creates a Config with all fields explicitly set.
func NewConfig(regCounters, secCheckpoints, boardingRate int, spawnProb float64, tickDelay time.Duration) Config {
	return Config{
		RegistrationCounters: regCounters,
		SecurityCheckpoints:  secCheckpoints,
		BoardingRate:         boardingRate,
		SpawnProbability:     spawnProb,
		TickDelay:            tickDelay,
	}
}

// Validate checks parameter ranges.
func (c Config) Validate() error {
	if c.RegistrationCounters < 0 {
		return fmt.Errorf("%w: registration counters must be non-negative, got %d", ErrInvalidConfig, c.RegistrationCounters)
	}
	if c.SecurityCheckpoints < 0 {
		return fmt.Errorf("%w: security checkpoints must be non-negative, got %d", ErrInvalidConfig, c.SecurityCheckpoints)
	}
	if c.BoardingRate < 0 {
		return fmt.Errorf("%w: boarding rate must be non-negative, got %d", ErrInvalidConfig, c.BoardingRate)
	}
	if c.SpawnProbability < 0 || c.SpawnProbability > 1 {
		return fmt.Errorf("%w: spawn probability must be in [0, 1], got %f", ErrInvalidConfig, c.SpawnProbability)
	}
	if c.TickDelay < 0 {
		return fmt.Errorf("%w: tick delay must be non-negative, got %v", ErrInvalidConfig, c.TickDelay)
	}
	return nil
}
