package cmd

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	sim "github.com/airport-sim/airport-sim/sim"
	"github.com/airport-sim/airport-sim/sim/trace"
)

// runLoop advances s until ticks have run (0 = unbounded) or ctx is done,
// rendering each tick to out and recording it in st when st is non-nil.
// Ticks are paced by the simulator's TickDelay.
func runLoop(ctx context.Context, s *sim.Simulator, ticks int64, out io.Writer, st *trace.SimulationTrace) error {
	delay := s.Config().TickDelay
	var pace *time.Ticker
	if delay > 0 {
		pace = time.NewTicker(delay)
		defer pace.Stop()
	}

	for ran := int64(0); ticks == 0 || ran < ticks; ran++ {
		if err := ctx.Err(); err != nil {
			logrus.Infof("[tick %04d] Stopping: %v", s.Clock, err)
			return nil
		}

		r := s.Advance()
		renderTick(out, r)
		if st != nil {
			st.RecordTick(r.TraceRecord())
		}

		if pace == nil || ran+1 == ticks {
			continue
		}
		select {
		case <-ctx.Done():
			logrus.Infof("[tick %04d] Stopping: %v", s.Clock, ctx.Err())
			return nil
		case <-pace.C:
		}
	}
	return nil
}
