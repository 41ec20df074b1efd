package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/airport-sim/airport-sim/sim/trace"
)

// summarizeCmd reports aggregate statistics for a saved trace.
var summarizeCmd = &cobra.Command{
	Use:   "summarize <trace-file>",
	Short: "Summarize a trace written by run --trace-out",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st, err := trace.ReadFile(args[0])
		if err != nil {
			logrus.Fatalf("Unable to read trace: %v", err)
		}
		printSummary(os.Stdout, st, trace.Summarize(st))
	},
}

func printSummary(w io.Writer, st *trace.SimulationTrace, s *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Trace Summary ===")
	fmt.Fprintf(w, "Seed                 : %d\n", st.Config.Seed)
	fmt.Fprintf(w, "Trace Level          : %s\n", st.Config.Level)
	fmt.Fprintf(w, "Ticks                : %d\n", s.Ticks)
	fmt.Fprintf(w, "Events               : %d\n", s.TotalEvents)
	fmt.Fprintf(w, "Busiest Tick         : %d\n", s.BusiestTick)
	fmt.Fprintf(w, "Peak Registration Q  : %d\n", s.PeakRegistrationQueue)
	fmt.Fprintf(w, "Peak Security Q      : %d\n", s.PeakSecurityQueue)
	fmt.Fprintf(w, "Peak Waiting at Gate : %d\n", s.PeakWaitingAtGate)

	kinds := make([]string, 0, len(s.EventsByKind))
	for k := range s.EventsByKind {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-22s %d\n", k, s.EventsByKind[k])
	}
}
