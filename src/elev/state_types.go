// State types are defined in elev package to make method receivers possible in elev_state.go.
package elev

import (
	"errors"
	"sync"

	"scanvator/src/dispatcher"
)

var ErrMgrClosed = errors.New("state manager closed")

// StateCmd is an operation run on the dispatcher inside the manager goroutine.
type StateCmd struct {
	Exec func(d *dispatcher.Dispatcher)
}

// StateMgr owns one dispatcher and serializes its access.
type StateMgr struct {
	cmds      chan StateCmd
	done      chan struct{}
	closeOnce sync.Once
}

// Submitter accepts rider requests.
type Submitter interface {
	Submit(origin, destination int) error
}
