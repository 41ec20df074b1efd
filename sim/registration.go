package sim

import "github.com/sirupsen/logrus"

// processRegistration serves up to RegistrationCounters passengers from the
// head of the registration queue. Passengers whose flight is active get a
// ticket and join the security queue; the rest are dropped from the world
// and never retried.
func (sim *Simulator) processRegistration(log *eventLog) {
	toServe := min(sim.cfg.RegistrationCounters, sim.RegistrationQ.Len())
	for i := 0; i < toServe; i++ {
		p := sim.RegistrationQ.Dequeue()
		if _, ok := sim.flightsByNumber[p.FlightNumber]; !ok {
			sim.dropPassenger(p)
			sim.Metrics.Rejected++
			log.add(Event{Kind: EventRegistrationRejected, Passenger: p.Name, Flight: p.FlightNumber})
			logrus.Debugf("[tick %04d] Registration rejected %s: no flight %s", sim.Clock, p.Name, p.FlightNumber)
			continue
		}
		p.HasTicket = true
		sim.SecurityQ.Enqueue(p)
		sim.Metrics.Registered++
		log.add(Event{Kind: EventRegistered, Passenger: p.Name, Flight: p.FlightNumber})
	}
}
