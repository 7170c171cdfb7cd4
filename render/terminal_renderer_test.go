package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func testSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Position: core.Point2D{X: 400, Y: 400},
		Radius:   20,
		Bounds:   core.Bounds{Width: 800, Height: 800},
		Score:    3,
	}
}

func TestTerminalRenderer_DrawsBallAtCenter(t *testing.T) {
	screen := newSimScreen(t, 80, 21)
	r := NewTerminalRenderer(screen, tcell.ColorGreen)

	if err := r.Render(testSnapshot()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// 80x20 arena over 800x800 world: cells are 10x40, center lands in (40,10)
	ch, _, style, _ := screen.GetContent(40, 10)
	if ch != BallRune {
		t.Errorf("Expected ball glyph at (40,10), got %q", ch)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.ColorGreen {
		t.Errorf("Expected green ball, got %v", fg)
	}

	// Cells overlapping x in [380,420] on rows 9 and 10 are covered
	if ch, _, _, _ := screen.GetContent(37, 9); ch != BallRune {
		t.Errorf("Expected ball glyph at (37,9), got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(40, 11); ch != ' ' {
		t.Errorf("Expected no ball at (40,11), got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(39, 10); ch != BallRune {
		t.Errorf("Expected ball glyph at (39,10), got %q", ch)
	}

	// Far corner is empty arena
	if ch, _, _, _ := screen.GetContent(0, 0); ch != ' ' {
		t.Errorf("Expected empty arena at origin, got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(45, 10); ch != ' ' {
		t.Errorf("Expected no ball at (45,10), got %q", ch)
	}
}

func TestTerminalRenderer_StatusBar(t *testing.T) {
	screen := newSimScreen(t, 80, 21)
	r := NewTerminalRenderer(screen, tcell.ColorGreen)

	snap := testSnapshot()
	snap.Paused = true
	snap.Elapsed = 65 * time.Second
	if err := r.Render(snap); err != nil {
		t.Fatal(err)
	}

	status := rowText(screen, 20, 80)
	if !strings.Contains(status, "Score: 3") {
		t.Errorf("Expected score in status bar, got %q", status)
	}
	if !strings.Contains(status, "1:05") {
		t.Errorf("Expected play time 1:05, got %q", status)
	}
	if !strings.Contains(status, "PAUSED") {
		t.Errorf("Expected PAUSED marker, got %q", status)
	}
	if !strings.Contains(status, "[q]uit") {
		t.Errorf("Expected key hint, got %q", status)
	}
}

func TestTerminalRenderer_PointerToWorld(t *testing.T) {
	screen := newSimScreen(t, 80, 21)
	r := NewTerminalRenderer(screen, tcell.ColorDefault)

	if _, ok := r.PointerToWorld(40, 10); ok {
		t.Error("Expected no mapping before the first frame")
	}

	if err := r.Render(testSnapshot()); err != nil {
		t.Fatal(err)
	}

	p, ok := r.PointerToWorld(40, 10)
	if !ok {
		t.Fatal("Expected arena cell to map")
	}
	// The ball center lies on the cell's corner, so it is the nearest point
	if p != (core.Point2D{X: 400, Y: 400}) {
		t.Errorf("Expected (400,400), got %+v", p)
	}

	p, _ = r.PointerToWorld(60, 2)
	if p != (core.Point2D{X: 600, Y: 120}) {
		t.Errorf("Expected nearest corner (600,120), got %+v", p)
	}

	if _, ok := r.PointerToWorld(10, 20); ok {
		t.Error("Expected status bar click to be rejected")
	}
}

func TestTerminalRenderer_ClickHitsRenderedBall(t *testing.T) {
	screen := newSimScreen(t, 80, 21)
	r := NewTerminalRenderer(screen, tcell.ColorGreen)

	s, err := engine.NewSession(engine.SessionConfig{
		Position: core.Point2D{X: 400, Y: 400},
		Radius:   20,
		Bounds:   core.Bounds{Width: 800, Height: 800},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Frame(r); err != nil {
		t.Fatal(err)
	}

	p, ok := r.PointerToWorld(40, 10)
	if !ok || !s.Click(p) {
		t.Errorf("Expected click on the drawn ball cell to score, point %+v", p)
	}
	p, _ = r.PointerToWorld(60, 10)
	if s.Click(p) {
		t.Error("Expected click far from the ball to miss")
	}
	if s.Score() != 1 {
		t.Errorf("Expected score 1, got %d", s.Score())
	}
}

func TestTerminalRenderer_Resize(t *testing.T) {
	screen := newSimScreen(t, 80, 21)
	r := NewTerminalRenderer(screen, tcell.ColorGreen)

	screen.SetSize(40, 11)
	r.Resize(40, 11)
	if err := r.Render(testSnapshot()); err != nil {
		t.Fatal(err)
	}

	vp := r.Viewport()
	if vp.Cols != 40 || vp.Rows != 10 {
		t.Errorf("Expected 40x10 arena, got %dx%d", vp.Cols, vp.Rows)
	}
	if ch, _, _, _ := screen.GetContent(20, 5); ch != BallRune {
		t.Errorf("Expected ball at (20,5) after resize, got %q", ch)
	}
}
