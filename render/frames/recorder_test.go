package frames

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
)

func TestRecorderWritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	world := core.Bounds{Width: 100, Height: 80}

	rec, err := NewRecorder(dir, world, 0, 0.7, 0.3)
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}
	defer rec.Close()

	s, err := engine.NewSession(engine.SessionConfig{
		Position: core.Point2D{X: 50, Y: 40},
		Velocity: core.Velocity2D{DX: 0, DY: 0},
		Radius:   10,
		Bounds:   world,
	})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := s.Frame(rec); err != nil {
			t.Fatalf("Frame %d failed: %v", i, err)
		}
	}

	if rec.Frames() != 3 {
		t.Errorf("Expected 3 frames, got %d", rec.Frames())
	}

	for _, name := range []string{"frame_00000.png", "frame_00001.png", "frame_00002.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s to exist: %v", name, err)
		}
	}

	f, err := os.Open(filepath.Join(dir, "frame_00002.png"))
	if err != nil {
		t.Fatalf("open frame: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("Expected 100x80 image, got %dx%d", b.Dx(), b.Dy())
	}

	// Ball center is green, corner is background
	r, g, _, _ := img.At(50, 40).RGBA()
	if g>>8 < 150 || r>>8 > 30 {
		t.Errorf("Expected ball color at center, got r=%d g=%d", r>>8, g>>8)
	}
	_, g, _, _ = img.At(2, 2).RGBA()
	if g>>8 > 60 {
		t.Errorf("Expected background at corner, got g=%d", g>>8)
	}
}

func TestRecorderClose(t *testing.T) {
	rec, err := NewRecorder(t.TempDir(), core.Bounds{Width: 10, Height: 10}, 1, 1, 1)
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Errorf("Expected clean close, got %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Errorf("Expected idempotent close, got %v", err)
	}
	if err := rec.Render(engine.Snapshot{Bounds: core.Bounds{Width: 10, Height: 10}, Radius: 1}); err == nil {
		t.Error("Expected render after close to fail")
	}
	if rec.Frames() != 0 {
		t.Errorf("Expected 0 frames, got %d", rec.Frames())
	}
}

func TestNewRecorderRejectsEmptyWorld(t *testing.T) {
	if _, err := NewRecorder(t.TempDir(), core.Bounds{Width: 0.5, Height: 10}, 0, 0, 0); err == nil {
		t.Error("Expected error for sub-pixel world")
	}
}
