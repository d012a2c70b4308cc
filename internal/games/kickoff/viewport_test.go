package kickoff

import (
	"testing"

	"github.com/vovakirdan/space-kickoff/internal/core"
)

func TestViewportSetTopLeft(t *testing.T) {
	tests := []struct {
		name  string
		start core.Vec2
		x, y  float64
	}{
		{"from origin", core.Vec2{}, 0, -500},
		{"from scrolled", core.V(0, -300), 0, -900},
		{"back to origin", core.V(40, -1200), 0, 0},
		{"same spot", core.V(0, -100), 0, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(1600, 960, 200)
			v.Offset = tt.start
			v.SetTopLeft(tt.x, tt.y)
			if v.Offset != core.V(tt.x, tt.y) {
				t.Errorf("Offset = %v, want (%v, %v)", v.Offset, tt.x, tt.y)
			}
		})
	}
}

func TestViewportTranslateBy(t *testing.T) {
	v := NewViewport(1600, 960, 200)
	v.TranslateBy(10, 20)
	v.TranslateBy(5, -5)
	if want := core.V(-15, -15); v.Offset != want {
		t.Errorf("Offset = %v, want %v", v.Offset, want)
	}
}

func TestViewportWorldHeight(t *testing.T) {
	v := NewViewport(1600, 960, 200)

	if got := v.WorldHeight(760); got != 0 {
		t.Errorf("WorldHeight(H-RulerOffset) = %v, want 0", got)
	}
	if got := v.WorldHeight(660); got != 100 {
		t.Errorf("WorldHeight(660) = %v, want 100", got)
	}
	if got := v.WorldHeight(-240); got != 1000 {
		t.Errorf("WorldHeight(-240) = %v, want 1000", got)
	}

	// Scrolling must not change heights of canvas points.
	before := v.WorldHeight(123)
	v.SetTopLeft(0, -5000)
	if after := v.WorldHeight(123); after != before {
		t.Errorf("WorldHeight changed with offset: %v -> %v", before, after)
	}
}

func TestViewportBounds(t *testing.T) {
	const d = 100
	tests := []struct {
		name   string
		offset core.Vec2
		pos    core.Vec2
		want   OutOfBounds
	}{
		{"inside", core.Vec2{}, core.V(500, 500), OutOfBounds{}},
		{"just above bottom", core.Vec2{}, core.V(500, 959.9), OutOfBounds{}},
		{"at bottom", core.Vec2{}, core.V(500, 960), OutOfBounds{Below: true}},
		{"above", core.Vec2{}, core.V(500, -1), OutOfBounds{Above: true}},
		{"left", core.Vec2{}, core.V(-1, 500), OutOfBounds{Left: true}},
		{"right edge flush", core.Vec2{}, core.V(1500, 500), OutOfBounds{}},
		{"right", core.Vec2{}, core.V(1501, 500), OutOfBounds{Right: true}},
		{"scrolled inside", core.V(0, -2000), core.V(500, -1500), OutOfBounds{}},
		{"scrolled below", core.V(0, -2000), core.V(500, -1040), OutOfBounds{Below: true}},
		{"corner", core.Vec2{}, core.V(-5, 970), OutOfBounds{Below: true, Left: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(1600, 960, 200)
			v.Offset = tt.offset
			got := v.Bounds(tt.pos, d)
			if got != tt.want {
				t.Errorf("Bounds(%v) = %+v, want %+v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestOutOfBoundsHelpers(t *testing.T) {
	if (OutOfBounds{}).Any() {
		t.Error("empty OutOfBounds should report nothing")
	}
	o := OutOfBounds{Left: true}
	if !o.X() || o.Y() || !o.Any() {
		t.Errorf("Left only: X=%v Y=%v Any=%v", o.X(), o.Y(), o.Any())
	}
	o = OutOfBounds{Below: true}
	if o.X() || !o.Y() {
		t.Errorf("Below only: X=%v Y=%v", o.X(), o.Y())
	}
}

func TestViewportViewWorldRoundTrip(t *testing.T) {
	v := NewViewport(1600, 960, 200)
	v.SetTopLeft(30, -700)
	p := core.V(123, 456)
	if got := v.ToWorld(v.ToView(p)); got != p {
		t.Errorf("ToWorld(ToView(p)) = %v, want %v", got, p)
	}
	if got := v.ToView(core.V(30, -700)); got != (core.Vec2{}) {
		t.Errorf("top-left in view coordinates = %v, want origin", got)
	}
}
