package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/bounce/core"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeDiscrete, false},
		{"discrete", ModeDiscrete, false},
		{"Swept", ModeSwept, false},
		{" continuous ", ModeSwept, false},
		{"teleport", ModeDiscrete, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if ModeSwept.String() != "swept" || ModeDiscrete.String() != "discrete" {
		t.Error("Mode names do not round-trip")
	}
}

func TestAdvanceSwept_MatchesDiscreteAwayFromWalls(t *testing.T) {
	p := core.Point2D{X: 400, Y: 400}
	v := core.Velocity2D{DX: 2, DY: 3}

	dp, dv := Advance(p, v, 20, arena)
	sp, sv, ct := AdvanceSwept(p, v, 20, arena)

	if dp != sp || dv != sv {
		t.Errorf("Expected swept (%+v, %+v) to equal discrete (%+v, %+v)", sp, sv, dp, dv)
	}
	if ct != ContactNone {
		t.Errorf("Expected no contact, got %b", ct)
	}
}

func TestAdvanceSwept_MirrorsOvershoot(t *testing.T) {
	p, v, ct := AdvanceSwept(core.Point2D{X: 15, Y: 400}, core.Velocity2D{DX: -5, DY: 0}, 20, arena)

	// Travel to x=10 is folded about x=20
	if p.X != 30 {
		t.Errorf("Expected x=30, got %v", p.X)
	}
	if v.DX != 5 {
		t.Errorf("Expected dx=5, got %v", v.DX)
	}
	if ct != ContactX {
		t.Errorf("Expected ContactX, got %b", ct)
	}
}

func TestAdvanceSwept_NoTunnelling(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const r = 20.0

	for trial := 0; trial < 100; trial++ {
		p := arena.Center()
		v := core.Velocity2D{DX: (rng.Float64()*2 - 1) * 5000, DY: (rng.Float64()*2 - 1) * 5000}

		for frame := 0; frame < 500; frame++ {
			p, v, _ = Step(ModeSwept, p, v, r, arena)
			if p.X < r-1e-9 || p.X > arena.Width-r+1e-9 || p.Y < r-1e-9 || p.Y > arena.Height-r+1e-9 {
				t.Fatalf("trial %d frame %d: position %+v left the band", trial, frame, p)
			}
		}
	}
}

func TestAdvanceSwept_EvenBouncesKeepDirection(t *testing.T) {
	// 760-wide band; travelling 1520 to the right bounces twice and lands where it started
	p, v, ct := AdvanceSwept(core.Point2D{X: 100, Y: 400}, core.Velocity2D{DX: 1520, DY: 0}, 20, arena)
	if math.Abs(p.X-100) > 1e-9 {
		t.Errorf("Expected x=100, got %v", p.X)
	}
	if v.DX != 1520 {
		t.Errorf("Expected direction kept after two bounces, got %v", v.DX)
	}
	if ct&ContactX == 0 {
		t.Error("Expected ContactX")
	}
}

func TestAdvanceSwept_NarrowAxisFallsBack(t *testing.T) {
	b := core.Bounds{Width: 30, Height: 800}
	p, v, ct := AdvanceSwept(core.Point2D{X: 15, Y: 400}, core.Velocity2D{DX: 1, DY: 0}, 20, b)

	if p.X != 16 {
		t.Errorf("Expected unfolded x=16, got %v", p.X)
	}
	if v.DX != -1 || ct != ContactX {
		t.Errorf("Expected discrete reflection, got dx=%v contact=%b", v.DX, ct)
	}
}

func TestAdvanceSwept_TouchingEitherWallReflects(t *testing.T) {
	tests := []struct {
		name   string
		x, dx  float64
		wantX  float64
		wantDX float64
	}{
		{"left wall", 25, -5, 20, 5},
		{"right wall", 775, 5, 780, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, v, ct := AdvanceSwept(core.Point2D{X: tt.x, Y: 400}, core.Velocity2D{DX: tt.dx}, 20, arena)
			if p.X != tt.wantX {
				t.Errorf("Expected x=%v, got %v", tt.wantX, p.X)
			}
			if v.DX != tt.wantDX {
				t.Errorf("Expected dx=%v, got %v", tt.wantDX, v.DX)
			}
			if ct != ContactX {
				t.Errorf("Expected ContactX, got %b", ct)
			}

			// Discrete mode agrees on contact frames at the exact touch point
			dp, dv := Advance(core.Point2D{X: tt.x, Y: 400}, core.Velocity2D{DX: tt.dx}, 20, arena)
			if dp != p || dv != v {
				t.Errorf("Expected discrete (%+v, %+v), got swept (%+v, %+v)", dp, dv, p, v)
			}
		})
	}
}
