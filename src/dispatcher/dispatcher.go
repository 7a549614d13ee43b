package dispatcher

import (
	"fmt"
	"log/slog"
	"slices"

	"scanvator/src/types"

	"github.com/tiendc/go-deepcopy"
)

// New creates a dispatcher serving floors [minFloor, maxFloor], parked at minFloor and heading up.
func New(minFloor, maxFloor int, opts ...Option) (*Dispatcher, error) {
	if minFloor >= maxFloor {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, minFloor, maxFloor)
	}
	d := &Dispatcher{
		minFloor: minFloor,
		maxFloor: maxFloor,
		floor:    minFloor,
		dir:      types.DirUp,
		pending:  make(map[int][]int),
		dropoffs: make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.isInvalidFloor(d.floor) {
		return nil, fmt.Errorf("start %w: %d", ErrInvalidFloor, d.floor)
	}
	slog.Debug("Dispatcher initialized", "minFloor", minFloor, "maxFloor", maxFloor, "floor", d.floor)
	return d, nil
}

// SubmitRequest registers a rider waiting at origin for destination.
// Rejected requests leave the dispatcher untouched.
func (d *Dispatcher) SubmitRequest(origin, destination int) error {
	var err error
	switch {
	case origin == destination:
		err = fmt.Errorf("request %d -> %d: %w", origin, destination, ErrDegenerateRequest)
	case d.isInvalidFloor(origin) || d.isInvalidFloor(destination):
		err = fmt.Errorf("request %d -> %d: %w [%d, %d]", origin, destination, ErrInvalidFloor, d.minFloor, d.maxFloor)
	}
	if err != nil {
		slog.Warn("Request rejected", "origin", origin, "destination", destination, "err", err)
		return err
	}
	d.pending[origin] = append(d.pending[origin], destination)
	slog.Debug("Request accepted", "origin", origin, "destination", destination, "waiting", len(d.pending[origin]))
	return nil
}

// Start arms the cabin for a run by heading up, like a fresh press of the start button.
// It also resumes service after an idle run if requests arrived late.
func (d *Dispatcher) Start() {
	d.dir = types.DirUp
	slog.Debug("Dispatcher started", "floor", d.floor, "pending", len(d.pending))
}

func (d *Dispatcher) CurrentFloor() int {
	return d.floor
}

func (d *Dispatcher) Direction() types.Direction {
	return d.dir
}

func (d *Dispatcher) IsIdle() bool {
	return d.dir == types.DirIdle
}

func (d *Dispatcher) Bounds() (minFloor, maxFloor int) {
	return d.minFloor, d.maxFloor
}

// Snapshot returns a deep copy of the current state. Dropoffs are sorted ascending.
func (d *Dispatcher) Snapshot() Snapshot {
	snap := Snapshot{
		Floor:    d.floor,
		Dir:      d.dir,
		Pending:  make(map[int][]int, len(d.pending)),
		Dropoffs: make([]int, 0, len(d.dropoffs)),
	}
	if err := deepcopy.Copy(&snap.Pending, d.pending); err != nil {
		panic(err)
	}
	for floor := range d.dropoffs {
		snap.Dropoffs = append(snap.Dropoffs, floor)
	}
	slices.Sort(snap.Dropoffs)
	return snap
}
