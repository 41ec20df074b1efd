package cmd

import (
	"fmt"
	"io"

	sim "github.com/airport-sim/airport-sim/sim"
)

// renderTick writes the post-tick status board and event log in plain text.
func renderTick(w io.Writer, r sim.TickResult) {
	snap := r.Snapshot
	fmt.Fprintf(w, "\n=== Tick %d ===\n", r.Tick)

	if len(snap.Flights) == 0 {
		fmt.Fprintln(w, "No active flights.")
	} else {
		for _, f := range snap.Flights {
			fmt.Fprintln(w, f.String())
		}
	}

	fmt.Fprintf(w, "Registration queue: %d\n", snap.RegistrationQueueLen)
	fmt.Fprintf(w, "Security queue:     %d\n", snap.SecurityQueueLen)
	fmt.Fprintf(w, "Waiting at gate:    %d\n", snap.WaitingAtGate)

	if len(r.Events) > 0 {
		fmt.Fprintln(w, "\nEvents:")
		for _, line := range r.Lines() {
			fmt.Fprintln(w, "• "+line)
		}
	}
}
