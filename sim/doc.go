// Package sim provides the discrete-time simulation engine for airport-sim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - passenger.go, flight.go: entities and the closed FlightStatus variant
//   - simulator.go: the Simulator aggregate and Advance, the single step operation
//   - spawner.go, registration.go, security.go, boarding.go: the per-tick stages
//
// # Tick Pipeline
//
// Every call to Advance increments the clock and then runs, in fixed order:
//
//	spawn -> register -> screen -> board/depart -> cleanup
//
// Each stage mutates the Simulator in place and appends to the tick's event
// log. No stage may be skipped or reordered.
//
// # Determinism
//
// All randomness flows through PartitionedRNG. Two simulators built with the
// same SimulationKey, Config and flight list produce identical event logs.
//
// Decision traces for offline analysis live in sim/trace.
package sim
