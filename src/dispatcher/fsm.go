// Contains the floor-visit state machine of the cabin.
package dispatcher

import (
	"log/slog"

	"scanvator/src/types"
)

// ProcessCurrentFloor handles one floor visit:
//  1. riders aboard for this floor get off
//  2. every rider waiting here gets on, whatever their direction
//  3. the cabin advances
//
// Calling it on an idle dispatcher does nothing until Start is called again.
func (d *Dispatcher) ProcessCurrentFloor() []types.Event {
	if d.IsIdle() {
		slog.Debug("Floor visit ignored - dispatcher idle", "floor", d.floor)
		return nil
	}
	var events []types.Event
	if ev, ok := d.unboard(); ok {
		events = append(events, ev)
	}
	if ev, ok := d.board(); ok {
		events = append(events, ev)
	}
	return append(events, d.Advance()...)
}

// Advance decides the next direction and moves one floor.
//   - goes idle when nobody is waiting and nobody is aboard
//   - bounces at the edge floors without looking ahead for requests
func (d *Dispatcher) Advance() []types.Event {
	if !d.hasWork() {
		d.dir = types.DirIdle
		slog.Info("No one is waiting, and no one is looking to go anywhere", "floor", d.floor)
		return []types.Event{{Kind: types.EvIdle, Floor: d.floor}}
	}

	if d.isInvalidFloor(d.floor + int(d.dir)) {
		switch d.dir {
		case types.DirUp:
			d.dir = types.DirDown
		case types.DirDown:
			d.dir = types.DirUp
		}
		slog.Debug("Reversing at edge floor", "floor", d.floor, "direction", d.dir)
	}

	switch d.dir {
	case types.DirUp, types.DirDown:
		d.floor += int(d.dir)
		slog.Debug("Moving", "floor", d.floor, "direction", d.dir)
		return []types.Event{{Kind: types.EvMove, Floor: d.floor, Dir: d.dir}}
	default:
		slog.Error("Elevator malfunctioned", "floor", d.floor, "direction", d.dir)
		d.dir = types.DirIdle
		return []types.Event{{Kind: types.EvMalfunction, Floor: d.floor}}
	}
}
