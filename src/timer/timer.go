package timer

import (
	"context"
	"log/slog"
	"time"
)

// Pacer spaces out floor visits by a fixed delay. A zero delay makes Wait return at once.
type Pacer struct {
	delay time.Duration
	timer *time.Timer
}

func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{delay: delay}
}

func (p *Pacer) Delay() time.Duration {
	return p.delay
}

// Wait blocks for one delay or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	if p.timer == nil {
		p.timer = time.NewTimer(p.delay)
	} else {
		resetTimer(p.timer, p.delay)
	}
	select {
	case <-p.timer.C:
		return nil
	case <-ctx.Done():
		p.timer.Stop()
		slog.Debug("Pacer interrupted", "err", ctx.Err())
		return ctx.Err()
	}
}

// Stops the timer and resets it.
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
