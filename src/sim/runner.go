package sim

import (
	"fmt"
	"io"
	"os"

	"liftbank/src/dispatcher"
	"liftbank/src/logger"
	"liftbank/src/types"
)

var Log = logger.GetLogger()

// Runner drives a dispatcher through a fixed number of ticks, submitting due
// requests before each tick and printing a fleet snapshot at the configured
// cadence.
type Runner struct {
	Dispatcher *dispatcher.Dispatcher
	Source     Source
	TotalTicks int
	PrintEvery int
	Out        io.Writer
}

func (r *Runner) Run() types.FleetSnapshot {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	printEvery := r.PrintEvery
	if printEvery < 1 {
		printEvery = 1
	}

	var snap types.FleetSnapshot
	for tick := 0; tick <= r.TotalTicks; tick++ {
		if r.Source != nil {
			for _, req := range r.Source.Due(tick) {
				if err := r.Dispatcher.Submit(req); err != nil {
					Log.Warn().Err(err).Int("tick", tick).Msg("Dropping invalid request")
				}
			}
		}

		snap = r.Dispatcher.Tick(tick)

		if tick%printEvery == 0 {
			fmt.Fprint(out, snap)
		}
	}

	Log.Info().Int("ticks", r.TotalTicks).Int("stillWaiting", snap.Waiting).
		Msg("Simulation complete")
	return snap
}
