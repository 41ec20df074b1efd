package sim

import "github.com/sirupsen/logrus"

// maxArrivalsPerTick bounds a single arrival burst; each burst is 1..max.
const maxArrivalsPerTick = 2

// spawnPassengers rolls for an arrival burst and, on success, creates one or
// two passengers on uniformly chosen active flights. With no active flights
// it does nothing.
func (sim *Simulator) spawnPassengers(log *eventLog) {
	if len(sim.flights) == 0 {
		return
	}
	rng := sim.rng.ForSubsystem(SubsystemArrivals)
	if rng.Float64() >= sim.cfg.SpawnProbability {
		return
	}
	count := 1 + rng.Intn(maxArrivalsPerTick)
	for i := 0; i < count; i++ {
		f := sim.flights[rng.Intn(len(sim.flights))]
		p := sim.newPassenger("", f.Number)
		log.add(Event{Kind: EventPassengerArrived, Passenger: p.Name, Flight: f.Number})
		logrus.Debugf("[tick %04d] Arrival: %s -> %s", sim.Clock, p.Name, f.Number)
	}
}
