package geom

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const epsilon = 1e-9

func TestHalves(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
	}{
		{"unit", R(0, 0, 1, 1)},
		{"offset", R(10, 20, 30, 40)},
		{"odd width", R(-3, 7, 11, 5)},
		{"fractional", R(0.25, 0.5, 99.75, 3.125)},
		{"zero width", R(5, 5, 0, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := LeftHalf(tt.r), RightHalf(tt.r)
			if math.Abs(l.W+r.W-tt.r.W) > epsilon {
				t.Errorf("left.W + right.W = %v, want %v", l.W+r.W, tt.r.W)
			}
			if l.H != tt.r.H || r.H != tt.r.H {
				t.Errorf("heights = %v, %v, want %v", l.H, r.H, tt.r.H)
			}
			if l.Y != tt.r.Y || r.Y != tt.r.Y {
				t.Errorf("y origins = %v, %v, want %v", l.Y, r.Y, tt.r.Y)
			}
			if l.X != tt.r.X {
				t.Errorf("left.X = %v, want %v", l.X, tt.r.X)
			}
			if r.X != tt.r.MidX() {
				t.Errorf("right.X = %v, want midX %v", r.X, tt.r.MidX())
			}
			if math.Abs(r.MaxX()-tt.r.MaxX()) > epsilon {
				t.Errorf("right.MaxX = %v, want %v", r.MaxX(), tt.r.MaxX())
			}
		})
	}
}

func TestZoomIdentity(t *testing.T) {
	for _, r := range []Rect{R(0, 0, 100, 150), R(-5, 12.5, 7, 3), R(1e6, 1e6, 1, 1)} {
		got := Zoom(r, 1.0)
		if !ApproxEqual(got, r, epsilon) {
			t.Errorf("Zoom(%+v, 1) = %+v, want identity", r, got)
		}
	}
}

func TestZoomKeepsCenter(t *testing.T) {
	r := R(10, 20, 200, 300)
	tests := []struct {
		scale float64
		want  Rect
	}{
		{0.5, R(60, 95, 100, 150)},
		{0.75, R(35, 57.5, 150, 225)},
		{2, R(-90, -130, 400, 600)},
	}
	for _, tt := range tests {
		got := Zoom(r, tt.scale)
		if !ApproxEqual(got, tt.want, epsilon) {
			t.Errorf("Zoom(r, %v) = %+v, want %+v", tt.scale, got, tt.want)
		}
		if c := got.Center(); c.Distance(r.Center()) > epsilon {
			t.Errorf("Zoom(r, %v) moved centre to %+v", tt.scale, c)
		}
	}
}

func TestInset(t *testing.T) {
	r := R(0, 0, 100, 50)
	got := Inset(r, 10, 5)
	want := R(10, 5, 80, 40)
	if got != want {
		t.Errorf("Inset = %+v, want %+v", got, want)
	}
	if got := InsetBySize(r, Size{W: 10, H: 5}); got != want {
		t.Errorf("InsetBySize = %+v, want %+v", got, want)
	}
	if got := Inset(r, -1, -1); got != R(-1, -1, 102, 52) {
		t.Errorf("negative Inset = %+v", got)
	}
}

func TestOffset(t *testing.T) {
	got := Offset(gg.Pt(3, 4), -1, 2.5)
	if got != gg.Pt(2, 6.5) {
		t.Errorf("Offset = %+v, want (2, 6.5)", got)
	}
}

func TestGGRoundTrip(t *testing.T) {
	r := R(1, 2, 3, 4)
	g := r.ToGG()
	if g.Width() != 3 || g.Height() != 4 {
		t.Errorf("ToGG size = %vx%v, want 3x4", g.Width(), g.Height())
	}
	if back := FromGG(g); back != r {
		t.Errorf("FromGG(ToGG(r)) = %+v, want %+v", back, r)
	}
}

func TestSized(t *testing.T) {
	got := Sized(R(5, 6, 7, 8), Size{W: 1, H: 2})
	if got != R(5, 6, 1, 2) {
		t.Errorf("Sized = %+v", got)
	}
	if !R(0, 0, 0, 5).Empty() || R(0, 0, 1, 1).Empty() {
		t.Error("Empty() mismatch")
	}
}

func TestFit(t *testing.T) {
	card := Size{W: 250, H: 350}
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"same aspect", R(0, 0, 500, 700), R(0, 0, 500, 700)},
		{"wide window", R(0, 0, 1000, 350), R(375, 0, 250, 350)},
		{"tall window", R(10, 10, 250, 1000), R(10, 335, 250, 350)},
		{"empty window", R(0, 0, 0, 100), R(0, 50, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fit(card, tt.in); !ApproxEqual(got, tt.want, 1e-9) {
				t.Errorf("Fit = %+v, want %+v", got, tt.want)
			}
		})
	}
}
