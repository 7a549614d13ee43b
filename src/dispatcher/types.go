package dispatcher

import (
	"errors"

	"scanvator/src/types"
)

var (
	ErrInvalidFloor      = errors.New("floor outside served range")
	ErrDegenerateRequest = errors.New("origin equals destination")
	ErrInvalidRange      = errors.New("min floor must be below max floor")
)

// Dispatcher is the state of one cabin for one simulation run.
// It is not safe for concurrent use; see elev.StateMgr.
type Dispatcher struct {
	minFloor int
	maxFloor int
	floor    int
	dir      types.Direction
	pending  map[int][]int    // origin floor -> destinations, in submission order
	dropoffs map[int]struct{} // floors where someone aboard wants to get off
}

// Snapshot is a copy of the dispatcher state that shares no memory with it.
type Snapshot struct {
	Floor    int
	Dir      types.Direction
	Pending  map[int][]int
	Dropoffs []int
}

type Option func(*Dispatcher)

// WithStartFloor places the cabin at floor instead of the lowest floor.
func WithStartFloor(floor int) Option {
	return func(d *Dispatcher) {
		d.floor = floor
	}
}
