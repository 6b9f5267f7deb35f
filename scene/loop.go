package scene

import (
	"context"
	"time"
)

// Loop drives an Animator from a host frame callback.
type Loop struct {
	animator *Animator
	frames   int64
}

func NewLoop(a *Animator) *Loop {
	return &Loop{animator: a}
}

// Frame ticks and renders one frame at now, the time since the loop
// started. It returns false once the animator is no longer running, and the
// host should stop scheduling frames.
func (l *Loop) Frame(now time.Duration) bool {
	if l.animator.State() != Running {
		return false
	}
	l.animator.Tick(now.Seconds())
	l.animator.Render()
	l.frames++
	return l.animator.State() == Running
}

// Frames returns the number of frames completed.
func (l *Loop) Frames() int64 {
	return l.frames
}

// Run calls Frame every interval until ctx is cancelled or the animator is disposed.
func (l *Loop) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if !l.Frame(now.Sub(start)) {
				return
			}
		}
	}
}
