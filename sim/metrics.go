// Tracks run-wide passenger flow counters and per-flight departure outcomes.

package sim

import (
	"fmt"
	"io"
)

// DepartureRecord captures how full a flight was when it left.
type DepartureRecord struct {
	Flight      string
	Destination string
	Tick        int64
	Boarded     int
	Capacity    int
	Missed      int
}

// LoadFactor is Boarded/Capacity, or 0 for a zero-capacity flight.
func (d DepartureRecord) LoadFactor() float64 {
	if d.Capacity == 0 {
		return 0
	}
	return float64(d.Boarded) / float64(d.Capacity)
}

// Metrics aggregates statistics about the simulation
// for final reporting.
type Metrics struct {
	Spawned    int // passengers created by the spawner or injected
	Registered int
	Rejected   int // dropped at registration for an unknown flight
	Screened   int
	Boarded    int
	Missed     int

	PeakRegistrationQueue int
	PeakSecurityQueue     int

	Departures []DepartureRecord
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{Departures: make([]DepartureRecord, 0)}
}

func (m *Metrics) observeQueues(reg, sec int) {
	m.PeakRegistrationQueue = max(m.PeakRegistrationQueue, reg)
	m.PeakSecurityQueue = max(m.PeakSecurityQueue, sec)
}

// Print writes the aggregated metrics at the end of the simulation.
func (m *Metrics) Print(w io.Writer, ticks int64) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Ticks Simulated      : %d\n", ticks)
	fmt.Fprintf(w, "Passengers Spawned   : %d\n", m.Spawned)
	fmt.Fprintf(w, "Registered           : %d\n", m.Registered)
	fmt.Fprintf(w, "Rejected             : %d\n", m.Rejected)
	fmt.Fprintf(w, "Screened             : %d\n", m.Screened)
	fmt.Fprintf(w, "Boarded              : %d\n", m.Boarded)
	fmt.Fprintf(w, "Missed Flights       : %d\n", m.Missed)
	fmt.Fprintf(w, "Peak Registration Q  : %d\n", m.PeakRegistrationQueue)
	fmt.Fprintf(w, "Peak Security Q      : %d\n", m.PeakSecurityQueue)
	if len(m.Departures) > 0 {
		fmt.Fprintln(w, "--- Departures ---")
		for _, d := range m.Departures {
			fmt.Fprintf(w, "%-8s -> %-12s @ %4d  %d/%d (%.0f%%), missed %d\n",
				d.Flight, d.Destination, d.Tick, d.Boarded, d.Capacity, 100*d.LoadFactor(), d.Missed)
		}
	}
}
