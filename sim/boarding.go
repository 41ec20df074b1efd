package sim

import "github.com/sirupsen/logrus"

// processFlights visits every active flight in insertion order. For each
// flight the boarding-start check, boarding and the departure check run in
// that order, so a passenger screened on the last tick of the window can
// still board. Departed flights are purged only after every flight has been
// visited.
func (sim *Simulator) processFlights(log *eventLog) {
	now := sim.Clock
	for _, f := range sim.flights {
		if f.Status == StatusOnTime && f.inBoardingWindow(now) {
			f.advanceStatus(StatusBoarding)
			log.add(Event{Kind: EventBoardingStarted, Flight: f.Number, Destination: f.Destination})
			logrus.Debugf("[tick %04d] Boarding started: %s", now, f.Number)
		}

		if f.Status == StatusBoarding && now < f.DepartureTime {
			sim.boardFlight(f, log)
		}

		if now >= f.DepartureTime && f.Status != StatusDeparted {
			sim.departFlight(f, log)
		}
	}
	sim.removeDepartedFlights()
}

// boardFlight takes up to BoardingRate eligible passengers, in arrival order,
// and boards them until the batch runs out or the flight is full.
func (sim *Simulator) boardFlight(f *Flight, log *eventLog) {
	batch := make([]*Passenger, 0, sim.cfg.BoardingRate)
	for _, p := range sim.byFlight[f.Number] {
		if len(batch) == sim.cfg.BoardingRate {
			break
		}
		if p.canBoard(f.Number) {
			batch = append(batch, p)
		}
	}
	for _, p := range batch {
		if f.Full() {
			break
		}
		f.board(p)
		sim.Metrics.Boarded++
		log.add(Event{Kind: EventBoarded, Passenger: p.Name, Flight: f.Number})
	}
}

// departFlight marks f Departed and reports every passenger of f who is not
// on board. Those passengers are removed with the rest of the flight's
// passengers in removeDepartedFlights.
func (sim *Simulator) departFlight(f *Flight, log *eventLog) {
	f.advanceStatus(StatusDeparted)
	missed := 0
	for _, p := range sim.byFlight[f.Number] {
		if p.IsOnBoard {
			continue
		}
		missed++
		log.add(Event{Kind: EventMissedFlight, Passenger: p.Name, Flight: f.Number})
	}
	sim.Metrics.Missed += missed
	boarded := len(f.PassengersOnBoard)
	log.add(Event{
		Kind:        EventFlightDeparted,
		Flight:      f.Number,
		Destination: f.Destination,
		OnBoard:     boarded,
		Capacity:    f.Capacity,
	})
	sim.Metrics.Departures = append(sim.Metrics.Departures, DepartureRecord{
		Flight:      f.Number,
		Destination: f.Destination,
		Tick:        sim.Clock,
		Boarded:     boarded,
		Capacity:    f.Capacity,
		Missed:      missed,
	})
	logrus.Infof("[tick %04d] Flight %s departed to %s with %d/%d on board, %d missed",
		sim.Clock, f.Number, f.Destination, boarded, f.Capacity, missed)
}

// removeDepartedFlights purges every departed flight together with all of
// its passengers: from the global set, the flight index and both queues.
// Remaining queue entries keep their relative order.
func (sim *Simulator) removeDepartedFlights() {
	departed := make(map[string]bool)
	for _, f := range sim.flights {
		if f.Status == StatusDeparted {
			departed[f.Number] = true
		}
	}
	if len(departed) == 0 {
		return
	}

	notDeparted := func(p *Passenger) bool { return !departed[p.FlightNumber] }

	kept := sim.passengers[:0]
	for _, p := range sim.passengers {
		if notDeparted(p) {
			kept = append(kept, p)
		}
	}
	clear(sim.passengers[len(kept):])
	sim.passengers = kept

	sim.RegistrationQ.Filter(notDeparted)
	sim.SecurityQ.Filter(notDeparted)

	active := sim.flights[:0]
	for _, f := range sim.flights {
		if departed[f.Number] {
			delete(sim.flightsByNumber, f.Number)
			delete(sim.byFlight, f.Number)
			continue
		}
		active = append(active, f)
	}
	clear(sim.flights[len(active):])
	sim.flights = active
}
