package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/physics"
)

// SessionConfig holds the initial ball state and arena
type SessionConfig struct {
	Position core.Point2D
	Velocity core.Velocity2D
	Radius   float64
	Bounds   core.Bounds
	Mode     physics.Mode
}

// Snapshot is an immutable copy of session state handed to renderers
type Snapshot struct {
	Position core.Point2D
	Velocity core.Velocity2D
	Radius   core.Radius
	Bounds   core.Bounds
	Score    int
	Frame    uint64
	Paused   bool
	Contact  physics.Contact // Walls touched during the step that produced this snapshot
	Elapsed  time.Duration   // Play time excluding pauses
}

// Renderer consumes one snapshot per produced frame
type Renderer interface {
	Render(snap Snapshot) error
}

// Session owns the ball state for one game.
// Step (frame path) and Click (input path) may run on different goroutines;
// every mutation of position, velocity and score happens under mu
type Session struct {
	mu sync.Mutex

	position core.Point2D
	velocity core.Velocity2D
	radius   core.Radius
	bounds   core.Bounds
	mode     physics.Mode

	score   int
	frame   uint64
	paused  bool
	closed  bool
	contact physics.Contact

	clock  *PlayClock
	router *EventRouter
}

// NewSession validates the configuration and creates a session
func NewSession(cfg SessionConfig) (*Session, error) {
	pos, err := core.NewPoint(cfg.Position.X, cfg.Position.Y)
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	vel, err := core.NewVelocity(cfg.Velocity.DX, cfg.Velocity.DY)
	if err != nil {
		return nil, fmt.Errorf("velocity: %w", err)
	}
	radius, err := core.NewRadius(cfg.Radius)
	if err != nil {
		return nil, err
	}
	bounds, err := core.NewBounds(cfg.Bounds.Width, cfg.Bounds.Height)
	if err != nil {
		return nil, fmt.Errorf("bounds: %w", err)
	}
	if cfg.Mode != physics.ModeDiscrete && cfg.Mode != physics.ModeSwept {
		return nil, fmt.Errorf("unsupported collision mode %v", cfg.Mode)
	}

	return &Session{
		position: pos,
		velocity: vel,
		radius:   radius,
		bounds:   bounds,
		mode:     cfg.Mode,
		clock:    NewPlayClock(),
		router:   NewEventRouter(),
	}, nil
}

// RegisterEventHandler adds an event handler, must be called before Run
func (s *Session) RegisterEventHandler(handler EventHandler) {
	s.router.Register(handler)
}

// Step advances the ball one frame unless paused or closed, and returns the resulting state.
// Bounce events are dispatched after the lock is released
func (s *Session) Step() Snapshot {
	s.mu.Lock()
	if s.closed {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}

	s.frame++
	s.contact = physics.ContactNone
	if !s.paused {
		s.position, s.velocity, s.contact = physics.Step(s.mode, s.position, s.velocity, s.radius, s.bounds)
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if snap.Contact != physics.ContactNone && s.router.HasHandlers(EventBounce) {
		s.router.Dispatch(Event{
			Type:     EventBounce,
			Frame:    snap.Frame,
			Position: snap.Position,
			Contact:  snap.Contact,
			Score:    snap.Score,
		})
	}
	return snap
}

// Click tests the pointer position against the ball and scores on a hit.
// Returns false while paused or closed
func (s *Session) Click(p core.Point2D) bool {
	s.mu.Lock()
	if s.closed || s.paused || !physics.Contains(p, s.position, float64(s.radius)) {
		s.mu.Unlock()
		return false
	}

	s.score++
	ev := Event{
		Type:     EventHit,
		Frame:    s.frame,
		Position: s.position,
		Score:    s.score,
	}
	s.mu.Unlock()

	s.router.Dispatch(ev)
	return true
}

// Snapshot returns the current state without advancing
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Score returns the number of successful clicks
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Resize replaces the arena bounds; the ball is not moved
func (s *Session) Resize(b core.Bounds) error {
	bounds, err := core.NewBounds(b.Width, b.Height)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}

	s.mu.Lock()
	s.bounds = bounds
	s.mu.Unlock()
	return nil
}

// SetPaused freezes or resumes motion. No effect after Close
func (s *Session) SetPaused(paused bool) {
	s.mu.Lock()
	s.setPausedLocked(paused)
	s.mu.Unlock()
}

// TogglePause flips the pause state and returns the new value.
// After Close the state is left unchanged and returned as is
func (s *Session) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setPausedLocked(!s.paused)
	return s.paused
}

func (s *Session) setPausedLocked(paused bool) {
	if s.closed {
		return
	}
	s.paused = paused
	if paused {
		s.clock.Pause()
	} else {
		s.clock.Resume()
	}
}

// Close ends the session. Safe to call multiple times
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.clock.Pause()
	s.mu.Unlock()
}

// Closed reports whether Close was called
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Run steps and renders once per interval until ctx is done or the session is closed.
// Render always observes the post-step state
func (s *Session) Run(ctx context.Context, interval time.Duration, r Renderer) error {
	if interval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if s.Closed() {
				return nil
			}
			if err := s.Frame(r); err != nil {
				return err
			}
		}
	}
}

// Frame performs one step followed by one render
func (s *Session) Frame(r Renderer) error {
	snap := s.Step()
	if err := r.Render(snap); err != nil {
		return fmt.Errorf("render frame %d: %w", snap.Frame, err)
	}
	return nil
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Position: s.position,
		Velocity: s.velocity,
		Radius:   s.radius,
		Bounds:   s.bounds,
		Score:    s.score,
		Frame:    s.frame,
		Paused:   s.paused,
		Contact:  s.contact,
		Elapsed:  s.clock.Elapsed(),
	}
}
