package executor

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"scanvator/src/dispatcher"
	"scanvator/src/elev"
	"scanvator/src/timer"
	"scanvator/src/types"
	"scanvator/src/utils"

	"github.com/google/uuid"
)

// Simulation is the dispatcher as seen by the driving loop. elev.StateMgr implements it.
type Simulation interface {
	Start() error
	Step() ([]types.Event, error)
	IsIdle() bool
	Snapshot() (dispatcher.Snapshot, error)
}

// Summary counts what happened during one run.
type Summary struct {
	RunID        string
	Steps        int
	Boardings    int
	Unboardings  int
	Moves        int
	Malfunctions int
	FinalFloor   int
}

// Run drives sim floor by floor until it is idle, writing every event to w.
//   - waits on pacer between floor visits
//   - stops early with ctx.Err() when ctx ends
func Run(ctx context.Context, sim Simulation, pacer *timer.Pacer, w io.Writer) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}
	logger := slog.With("run", summary.RunID)

	if err := sim.Start(); err != nil {
		return summary, fmt.Errorf("start run: %w", err)
	}
	logger.Info("Run started", "delay", pacer.Delay())

	for {
		if err := ctx.Err(); err != nil {
			logger.Warn("Run cancelled", "steps", summary.Steps)
			return summary, err
		}

		fmt.Fprintln(w, "--------")
		events, err := sim.Step()
		if err != nil {
			return summary, fmt.Errorf("step %d: %w", summary.Steps, err)
		}
		summary.Steps++
		for _, ev := range events {
			record(&summary, ev)
			fmt.Fprintln(w, elev.FormatEvent(ev))
		}
		fmt.Fprintln(w, "--------")

		if sim.IsIdle() {
			break
		}
		if err := pacer.Wait(ctx); err != nil {
			logger.Warn("Run cancelled", "steps", summary.Steps)
			return summary, err
		}
	}

	fmt.Fprintln(w, "No one is waiting, and no one is looking to go anywhere.")
	fmt.Fprintln(w, "Elevator is idle now.")

	snap, err := sim.Snapshot()
	if err != nil {
		return summary, fmt.Errorf("final snapshot: %w", err)
	}
	summary.FinalFloor = snap.Floor
	utils.PrintStatus(w, snap)
	logger.Info("Run finished",
		"steps", summary.Steps,
		"boardings", summary.Boardings,
		"unboardings", summary.Unboardings,
		"finalFloor", summary.FinalFloor)
	return summary, nil
}

func record(summary *Summary, ev types.Event) {
	switch ev.Kind {
	case types.EvBoard:
		summary.Boardings++
	case types.EvUnboard:
		summary.Unboardings++
	case types.EvMove:
		summary.Moves++
	case types.EvMalfunction:
		summary.Malfunctions++
	}
}
