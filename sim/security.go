package sim

// processSecurity screens up to SecurityCheckpoints passengers from the head
// of the security queue. Screening always succeeds.
func (sim *Simulator) processSecurity(log *eventLog) {
	toServe := min(sim.cfg.SecurityCheckpoints, sim.SecurityQ.Len())
	for i := 0; i < toServe; i++ {
		p := sim.SecurityQ.Dequeue()
		p.PassedSecurity = true
		sim.Metrics.Screened++
		log.add(Event{Kind: EventScreened, Passenger: p.Name, Flight: p.FlightNumber})
	}
}
