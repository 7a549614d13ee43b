package types

// Direction of the cabin. Up and Down double as the floor increment.
type Direction int

const (
	DirUp   Direction = 1
	DirDown Direction = -1
	DirIdle Direction = 0
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirIdle:
		return "Idle"
	}
	return "Undefined"
}

// Request is a rider waiting at Origin who wants to go to Destination.
type Request struct {
	Origin      int
	Destination int
}

type EventKind int

const (
	EvUnboard EventKind = iota
	EvBoard
	EvMove
	EvIdle
	EvMalfunction
)

func (k EventKind) String() string {
	return [...]string{"Unboard", "Board", "Move", "Idle", "Malfunction"}[k]
}

// Event is reported by the dispatcher for every observable step.
//   - Floor is where the event happened, or the new floor for EvMove
//   - Dir is the direction travelled for EvMove
//   - Destinations lists the destinations of riders boarding on EvBoard
type Event struct {
	Kind         EventKind
	Floor        int
	Dir          Direction
	Destinations []int
}

type Mode int

const (
	ModeManual Mode = iota
	ModeAuto
	ModeQuit
)

func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "manual"
	case ModeAuto:
		return "auto"
	}
	return "quit"
}
