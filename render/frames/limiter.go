package frames

import (
	"context"
	"sync"

	"github.com/lixenwraith/bounce/engine"
)

// Limiter forwards a fixed number of frames to a renderer, then cancels the run driving it.
// Frames arriving after the limit are dropped
type Limiter struct {
	mu        sync.Mutex
	next      engine.Renderer
	remaining int
	cancel    context.CancelFunc
	onFrame   func()
}

// NewLimiter wraps next; onFrame may be nil
func NewLimiter(next engine.Renderer, frames int, cancel context.CancelFunc, onFrame func()) *Limiter {
	return &Limiter{
		next:      next,
		remaining: frames,
		cancel:    cancel,
		onFrame:   onFrame,
	}
}

// Render implements engine.Renderer
func (l *Limiter) Render(snap engine.Snapshot) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.remaining <= 0 {
		l.cancel()
		return nil
	}
	if err := l.next.Render(snap); err != nil {
		return err
	}

	l.remaining--
	if l.onFrame != nil {
		l.onFrame()
	}
	if l.remaining == 0 {
		l.cancel()
	}
	return nil
}
