package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	sim "github.com/airport-sim/airport-sim/sim"
	"github.com/airport-sim/airport-sim/sim/trace"
)

// maxEventHistory bounds the scrollback kept for the events pane.
const maxEventHistory = 200

// board is the full-screen status view.
type board struct {
	screen   tcell.Screen
	last     sim.TickResult
	history  []string
	paused   bool
	finished bool
}

// runInteractive drives the simulation on a full-screen terminal until ticks
// have run and the user quits, the user quits early, or ctx is done.
func runInteractive(ctx context.Context, s *sim.Simulator, ticks int64, st *trace.SimulationTrace) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorReset).
		Foreground(tcell.ColorReset))

	return driveScreen(ctx, screen, s, ticks, st)
}

// driveScreen is the interactive event loop, split out so it can run on a
// simulation screen.
func driveScreen(ctx context.Context, screen tcell.Screen, s *sim.Simulator, ticks int64, st *trace.SimulationTrace) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	delay := s.Config().TickDelay
	if delay <= 0 {
		delay = time.Millisecond
	}
	pace := time.NewTicker(delay)
	defer pace.Stop()

	b := &board{screen: screen, last: sim.TickResult{Snapshot: s.Snapshot()}}
	b.draw()

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("[tick %04d] Stopping: %v", s.Clock, ctx.Err())
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return nil
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
					b.paused = !b.paused
				}
			}
			b.draw()

		case <-pace.C:
			if b.paused || b.finished {
				continue
			}
			r := s.Advance()
			if st != nil {
				st.RecordTick(r.TraceRecord())
			}
			b.record(r)
			b.finished = ticks > 0 && s.Clock >= ticks
			b.draw()
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// record keeps r as the current view and appends its events to the history.
func (b *board) record(r sim.TickResult) {
	b.last = r
	for _, line := range r.Lines() {
		b.history = append(b.history, fmt.Sprintf("[%d] %s", r.Tick, line))
	}
	if over := len(b.history) - maxEventHistory; over > 0 {
		b.history = b.history[over:]
	}
}

func statusStyle(status sim.FlightStatus) tcell.Style {
	switch status {
	case sim.StatusOnTime:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case sim.StatusDelayed:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case sim.StatusBoarding:
		return tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
	case sim.StatusDeparted:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
	return tcell.StyleDefault
}

// draw renders the whole board.
func (b *board) draw() {
	screen := b.screen
	screen.Clear()
	width, height := screen.Size()

	styleHeader := tcell.StyleDefault.Bold(true).Reverse(true)
	styleLabel := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleMuted := tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEvents := tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)

	snap := b.last.Snapshot
	title := fmt.Sprintf(" Airport  tick %d ", snap.Tick)
	if b.paused {
		title += "[paused] "
	} else if b.finished {
		title += "[finished] "
	}
	help := " [Space]=Pause [Q]=Quit "
	drawText(screen, 0, 0, width, styleHeader, title+strings.Repeat(" ", max(0, width-len(title)-len(help)))+help)

	y := 2
	if len(snap.Flights) == 0 {
		drawText(screen, 0, y, width, styleMuted, "No active flights.")
		y++
	}
	for _, f := range snap.Flights {
		drawText(screen, 0, y, width, statusStyle(f.Status), f.String())
		y++
	}

	y++
	drawText(screen, 0, y, width, styleLabel, fmt.Sprintf("Registration queue: %d", snap.RegistrationQueueLen))
	drawText(screen, 0, y+1, width, styleLabel, fmt.Sprintf("Security queue:     %d", snap.SecurityQueueLen))
	drawText(screen, 0, y+2, width, styleLabel, fmt.Sprintf("Waiting at gate:    %d", snap.WaitingAtGate))
	y += 4

	drawText(screen, 0, y, width, styleEvents, "Events:")
	y++
	rows := height - y
	if rows <= 0 {
		screen.Show()
		return
	}
	start := max(0, len(b.history)-rows)
	for _, line := range b.history[start:] {
		drawText(screen, 0, y, width, tcell.StyleDefault, "• "+line)
		y++
	}
	screen.Show()
}

// drawText writes text at (x, y), clipped and padded to maxWidth.
func drawText(screen tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		if col >= maxWidth {
			break
		}
		screen.SetContent(x+col, y, r, nil, style)
		col++
	}
	for col < maxWidth {
		screen.SetContent(x+col, y, ' ', nil, style)
		col++
	}
}
