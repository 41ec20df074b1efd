// sim/simulator.go
package sim

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidFlight is returned by AddFlight for malformed flight data.
	ErrInvalidFlight = errors.New("invalid flight")
	// ErrDuplicateFlight is returned by AddFlight when the number is already active.
	ErrDuplicateFlight = errors.New("duplicate flight number")
	// ErrSimulationStarted is returned by setup-only operations after the first tick.
	ErrSimulationStarted = errors.New("simulation already started")
)

// Simulator is the core object that owns the airport's world state and the
// tick counter. All collections are owned exclusively by the Simulator and
// mutated only during Advance (or setup calls before the first Advance).
//
// Thread-safety: NOT thread-safe.
type Simulator struct {
	// Clock is the current tick. It is 0 before the first Advance.
	Clock int64

	// RegistrationQ holds passengers without a ticket, in arrival order.
	RegistrationQ *PassengerQueue
	// SecurityQ holds ticketed passengers awaiting screening.
	SecurityQ *PassengerQueue

	Metrics *Metrics

	// NameGen labels spawned passengers. Defaults to RandomNames on the
	// names subsystem; may be replaced before the first Advance.
	NameGen NameGenerator

	cfg Config
	rng *PartitionedRNG

	// flights holds active flights in insertion order, which is the order
	// the boarding stage visits them.
	flights         []*Flight
	flightsByNumber map[string]*Flight

	// passengers is the global passenger set in arrival order.
	passengers []*Passenger
	// byFlight indexes passengers by flight number, each slice in the same
	// relative order as passengers.
	byFlight map[string][]*Passenger

	nextSeq int
}

// NewSimulator creates a Simulator with no flights and empty queues.
func NewSimulator(cfg Config, key SimulationKey) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := NewPartitionedRNG(key)
	return &Simulator{
		RegistrationQ:   &PassengerQueue{},
		SecurityQ:       &PassengerQueue{},
		Metrics:         NewMetrics(),
		NameGen:         NewRandomNames(rng.ForSubsystem(SubsystemNames)),
		cfg:             cfg,
		rng:             rng,
		flightsByNumber: make(map[string]*Flight),
		byFlight:        make(map[string][]*Passenger),
		nextSeq:         1,
	}, nil
}

// Config returns the tunables the simulator was built with.
func (sim *Simulator) Config() Config {
	return sim.cfg
}

// AddFlight registers a flight before the simulation starts.
func (sim *Simulator) AddFlight(number, destination string, departureTime int64, capacity int) error {
	if sim.Clock > 0 {
		return fmt.Errorf("adding flight %q at tick %d: %w", number, sim.Clock, ErrSimulationStarted)
	}
	if number == "" {
		return fmt.Errorf("%w: flight number must not be empty", ErrInvalidFlight)
	}
	if capacity < 0 {
		return fmt.Errorf("%w: flight %s capacity must be non-negative, got %d", ErrInvalidFlight, number, capacity)
	}
	if _, ok := sim.flightsByNumber[number]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateFlight, number)
	}
	f := &Flight{
		Number:            number,
		Destination:       destination,
		DepartureTime:     departureTime,
		Status:            StatusOnTime,
		Capacity:          capacity,
		PassengersOnBoard: make([]*Passenger, 0, capacity),
	}
	sim.flights = append(sim.flights, f)
	sim.flightsByNumber[number] = f
	logrus.Debugf("Added flight %s to %s, departure %d, capacity %d", number, destination, departureTime, capacity)
	return nil
}

// InjectPassenger places an externally created passenger at the tail of the
// registration queue. The flight number is not validated here; registration
// rejects passengers whose flight is not active. An empty name is replaced
// with a generated one.
func (sim *Simulator) InjectPassenger(name, flightNumber string) *Passenger {
	p := sim.newPassenger(name, flightNumber)
	logrus.Debugf("[tick %04d] Injected %s for flight %s", sim.Clock, p.Name, flightNumber)
	return p
}

// Advance runs exactly one tick: the clock is incremented, then the spawn,
// registration, security and boarding/departure stages run in that order.
func (sim *Simulator) Advance() TickResult {
	sim.Clock++
	log := &eventLog{tick: sim.Clock}

	sim.spawnPassengers(log)
	sim.processRegistration(log)
	sim.processSecurity(log)
	sim.processFlights(log)

	sim.Metrics.observeQueues(sim.RegistrationQ.Len(), sim.SecurityQ.Len())
	logrus.Debugf("[tick %04d] %d events, regQ=%d secQ=%d flights=%d",
		sim.Clock, len(log.events), sim.RegistrationQ.Len(), sim.SecurityQ.Len(), len(sim.flights))

	return TickResult{
		Tick:     sim.Clock,
		Events:   log.events,
		Snapshot: sim.Snapshot(),
	}
}

// RegistrationQueueLen returns the number of passengers waiting to register.
func (sim *Simulator) RegistrationQueueLen() int {
	return sim.RegistrationQ.Len()
}

// SecurityQueueLen returns the number of passengers waiting for screening.
func (sim *Simulator) SecurityQueueLen() int {
	return sim.SecurityQ.Len()
}

// WaitingAtGate counts cleared passengers not yet on board whose flight is
// still active.
func (sim *Simulator) WaitingAtGate() int {
	n := 0
	for _, p := range sim.passengers {
		if _, active := sim.flightsByNumber[p.FlightNumber]; active && p.Cleared() && !p.IsOnBoard {
			n++
		}
	}
	return n
}

// Passengers returns a copy of every tracked passenger in arrival order.
func (sim *Simulator) Passengers() []Passenger {
	out := make([]Passenger, len(sim.passengers))
	for i, p := range sim.passengers {
		out[i] = *p
	}
	return out
}

// newPassenger creates a passenger and adds it to the global set, the flight
// index and the registration queue tail.
func (sim *Simulator) newPassenger(name, flightNumber string) *Passenger {
	seq := sim.nextSeq
	sim.nextSeq++
	if name == "" {
		name = sim.NameGen.Name(seq)
	}
	id, err := uuid.NewRandomFromReader(sim.rng.ForSubsystem(SubsystemIDs))
	if err != nil {
		// math/rand readers never fail.
		panic(fmt.Sprintf("generating passenger id: %v", err))
	}
	p := &Passenger{
		ID:           id,
		Name:         name,
		FlightNumber: flightNumber,
		ArrivalTick:  sim.Clock,
	}
	sim.passengers = append(sim.passengers, p)
	sim.byFlight[flightNumber] = append(sim.byFlight[flightNumber], p)
	sim.RegistrationQ.Enqueue(p)
	sim.Metrics.Spawned++
	return p
}

// dropPassenger removes a single passenger from the global set and the index.
func (sim *Simulator) dropPassenger(p *Passenger) {
	sim.passengers = removePassenger(sim.passengers, p)
	idx := removePassenger(sim.byFlight[p.FlightNumber], p)
	if len(idx) == 0 {
		delete(sim.byFlight, p.FlightNumber)
	} else {
		sim.byFlight[p.FlightNumber] = idx
	}
}

func removePassenger(list []*Passenger, p *Passenger) []*Passenger {
	for i, q := range list {
		if q == p {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
