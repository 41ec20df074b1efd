package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// quietConfig returns the default tunables with spawning disabled, so tests
// drive arrivals through InjectPassenger only.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.SpawnProbability = 0
	return cfg
}

// newTestSimulator builds a simulator with cfg and seed 42.
func newTestSimulator(t *testing.T, cfg Config) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg, NewSimulationKey(42))
	require.NoError(t, err)
	return s
}

func mustAddFlight(t *testing.T, s *Simulator, number, dest string, departure int64, capacity int) {
	t.Helper()
	require.NoError(t, s.AddFlight(number, dest, departure, capacity))
}

// advanceTo runs ticks until the clock reaches tick, returning every result.
func advanceTo(s *Simulator, tick int64) []TickResult {
	var results []TickResult
	for s.Clock < tick {
		results = append(results, s.Advance())
	}
	return results
}

// eventsOfKind filters a tick's events by kind.
func eventsOfKind(r TickResult, kind EventKind) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func queueNames(q *PassengerQueue) []string {
	names := make([]string, 0, q.Len())
	for _, p := range q.Items() {
		names = append(names, p.Name)
	}
	return names
}

// checkWorldInvariants asserts the structural invariants that must hold
// between ticks.
func checkWorldInvariants(t *testing.T, s *Simulator) {
	t.Helper()
	for _, f := range s.flights {
		if len(f.PassengersOnBoard) > f.Capacity {
			t.Errorf("tick %d: flight %s over capacity: %d/%d", s.Clock, f.Number, len(f.PassengersOnBoard), f.Capacity)
		}
		if f.Status == StatusDeparted {
			t.Errorf("tick %d: departed flight %s still active", s.Clock, f.Number)
		}
	}
	seen := make(map[*Passenger]string)
	for _, p := range s.RegistrationQ.Items() {
		if p.HasTicket || p.IsOnBoard {
			t.Errorf("tick %d: %s in registration queue with ticket=%t onboard=%t", s.Clock, p.Name, p.HasTicket, p.IsOnBoard)
		}
		seen[p] = "registration"
	}
	for _, p := range s.SecurityQ.Items() {
		if !p.HasTicket || p.PassedSecurity || p.IsOnBoard {
			t.Errorf("tick %d: %s in security queue with inconsistent flags", s.Clock, p.Name)
		}
		if q, dup := seen[p]; dup {
			t.Errorf("tick %d: %s in both %s and security queues", s.Clock, p.Name, q)
		}
	}
	indexed := 0
	for number, list := range s.byFlight {
		indexed += len(list)
		for _, p := range list {
			if p.FlightNumber != number {
				t.Errorf("tick %d: %s indexed under %s but booked on %s", s.Clock, p.Name, number, p.FlightNumber)
			}
		}
	}
	if indexed != len(s.passengers) {
		t.Errorf("tick %d: index holds %d passengers, global set %d", s.Clock, indexed, len(s.passengers))
	}
}
