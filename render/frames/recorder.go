// Package frames renders session snapshots to numbered PNG files.
package frames

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
)

// Background is the arena fill
var Background = gg.RGB(0.08, 0.08, 0.1)

// Recorder implements engine.Renderer by writing one PNG per frame
type Recorder struct {
	mu     sync.Mutex
	dir    string
	dc     *gg.Context
	ball   gg.RGBA
	frames int
	closed bool
}

// NewRecorder creates dir if needed and sizes the canvas to the world, one pixel per unit
func NewRecorder(dir string, world core.Bounds, r, g, b float64) (*Recorder, error) {
	w, h := int(world.Width), int(world.Height)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("world %vx%v too small to record", world.Width, world.Height)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create frame directory: %w", err)
	}

	return &Recorder{
		dir:  dir,
		dc:   gg.NewContext(w, h),
		ball: gg.RGB(r, g, b),
	}, nil
}

// Render draws the snapshot and saves it as frame_NNNNN.png
func (rec *Recorder) Render(snap engine.Snapshot) error {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.closed {
		return fmt.Errorf("recorder closed")
	}

	// Positions are scaled so a resized session still fills the canvas
	sx := float64(rec.dc.Width()) / snap.Bounds.Width
	sy := float64(rec.dc.Height()) / snap.Bounds.Height

	rec.dc.ClearWithColor(Background)
	rec.dc.SetColor(rec.ball.Color())
	rec.dc.DrawEllipse(snap.Position.X*sx, snap.Position.Y*sy, float64(snap.Radius)*sx, float64(snap.Radius)*sy)
	if err := rec.dc.Fill(); err != nil {
		return fmt.Errorf("fill ball: %w", err)
	}

	path := filepath.Join(rec.dir, fmt.Sprintf("frame_%05d.png", rec.frames))
	if err := rec.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	rec.frames++
	return nil
}

// Frames returns the number of frames written
func (rec *Recorder) Frames() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.frames
}

// Close releases the canvas; further Render calls fail
func (rec *Recorder) Close() error {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.closed {
		return nil
	}
	rec.closed = true
	return rec.dc.Close()
}
