package dispatcher

import (
	"log/slog"

	"scanvator/src/types"
)

// unboard clears the dropoff at the current floor.
func (d *Dispatcher) unboard() (types.Event, bool) {
	if _, ok := d.dropoffs[d.floor]; !ok {
		return types.Event{}, false
	}
	delete(d.dropoffs, d.floor)
	slog.Debug("Un-boarding", "floor", d.floor)
	return types.Event{Kind: types.EvUnboard, Floor: d.floor}, true
}

// board takes every rider waiting at the current floor and schedules their destinations.
func (d *Dispatcher) board() (types.Event, bool) {
	destinations, ok := d.pending[d.floor]
	if !ok {
		return types.Event{}, false
	}
	for _, dest := range destinations {
		d.dropoffs[dest] = struct{}{}
	}
	delete(d.pending, d.floor)
	slog.Debug("Boarding", "floor", d.floor, "destinations", destinations)
	return types.Event{Kind: types.EvBoard, Floor: d.floor, Destinations: destinations}, true
}

func (d *Dispatcher) hasWork() bool {
	return len(d.pending) > 0 || len(d.dropoffs) > 0
}

func (d *Dispatcher) isInvalidFloor(floor int) bool {
	return floor < d.minFloor || floor > d.maxFloor
}
