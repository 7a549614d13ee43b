package elev

import (
	"scanvator/src/dispatcher"
	"scanvator/src/types"
)

// StartStateMgr starts the goroutine that serializes access to the dispatcher.
func StartStateMgr(d *dispatcher.Dispatcher) *StateMgr {
	mgr := &StateMgr{
		cmds: make(chan StateCmd),
		done: make(chan struct{}),
	}
	go func() {
		for {
			select {
			case cmd := <-mgr.cmds:
				cmd.Exec(d)
			case <-mgr.done:
				return
			}
		}
	}()
	return mgr
}

// Close stops the manager goroutine. Later calls return ErrMgrClosed or zero values.
func (mgr *StateMgr) Close() {
	mgr.closeOnce.Do(func() { close(mgr.done) })
}

// exec runs fn in the manager goroutine and waits for it to finish.
func (mgr *StateMgr) exec(fn func(d *dispatcher.Dispatcher)) error {
	finished := make(chan struct{})
	cmd := StateCmd{Exec: func(d *dispatcher.Dispatcher) {
		fn(d)
		close(finished)
	}}
	select {
	case mgr.cmds <- cmd:
	case <-mgr.done:
		return ErrMgrClosed
	}
	<-finished
	return nil
}

func (mgr *StateMgr) Submit(origin, destination int) error {
	var err error
	if mgrErr := mgr.exec(func(d *dispatcher.Dispatcher) {
		err = d.SubmitRequest(origin, destination)
	}); mgrErr != nil {
		return mgrErr
	}
	return err
}

func (mgr *StateMgr) Start() error {
	return mgr.exec(func(d *dispatcher.Dispatcher) {
		d.Start()
	})
}

// Step processes the current floor and returns its events.
func (mgr *StateMgr) Step() ([]types.Event, error) {
	var events []types.Event
	err := mgr.exec(func(d *dispatcher.Dispatcher) {
		events = d.ProcessCurrentFloor()
	})
	return events, err
}

// IsIdle reports true once the manager is closed.
func (mgr *StateMgr) IsIdle() bool {
	idle := true
	_ = mgr.exec(func(d *dispatcher.Dispatcher) {
		idle = d.IsIdle()
	})
	return idle
}

func (mgr *StateMgr) Snapshot() (dispatcher.Snapshot, error) {
	var snap dispatcher.Snapshot
	err := mgr.exec(func(d *dispatcher.Dispatcher) {
		snap = d.Snapshot()
	})
	return snap, err
}
