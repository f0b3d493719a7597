package corner

import (
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/cardface/geom"
)

const tolerance = 1e-9

// lineMeasurer stacks lines 1.2em high, each rune 0.6em wide.
type lineMeasurer struct{}

func (lineMeasurer) Measure(text string, size float64) (w, h float64) {
	lines := strings.Split(text, "\n")
	for _, l := range lines {
		w = max(w, size*0.6*float64(len([]rune(l))))
	}
	return w, size * 1.2 * float64(len(lines))
}

func near(a, b gg.Point) bool {
	return a.Distance(b) <= tolerance
}

func TestText(t *testing.T) {
	if got := Text("A", "♠"); got != "A\n♠" {
		t.Errorf("Text = %q", got)
	}
}

func TestComposeUpperLeft(t *testing.T) {
	bounds := geom.R(0, 0, 250, 350)
	metrics := Metrics{FontSize: 350 * 0.085, Offset: 350 * 0.06 * 0.33}
	ul, _ := Compose(lineMeasurer{}, metrics, bounds, "10\n♥", true)

	if ul.Hidden {
		t.Error("face-up label is hidden")
	}
	want := gg.Pt(metrics.Offset, metrics.Offset)
	if !near(ul.Origin, want) {
		t.Errorf("origin = %+v, want %+v", ul.Origin, want)
	}
	if got := ul.Transform.TransformPoint(gg.Pt(0, 0)); !near(got, want) {
		t.Errorf("transform(0,0) = %+v, want %+v", got, want)
	}
	wantW := metrics.FontSize * 0.6 * 2
	if ul.Size.W != wantW || ul.Size.H != metrics.FontSize*1.2*2 {
		t.Errorf("size = %+v", ul.Size)
	}
}

func TestComposeLowerRightFarCorner(t *testing.T) {
	tests := []struct {
		name   string
		bounds geom.Rect
		text   string
	}{
		{"portrait", geom.R(0, 0, 250, 350), "A\n♠"},
		{"offset origin", geom.R(40, 60, 120, 180), "10\n♦"},
		{"landscape", geom.R(0, 0, 600, 200), "Q\n♣"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off := tt.bounds.H * 0.06 * 0.33
			metrics := Metrics{FontSize: tt.bounds.H * 0.085, Offset: off}
			_, lr := Compose(lineMeasurer{}, metrics, tt.bounds, tt.text, true)

			far := gg.Pt(tt.bounds.MaxX()-off, tt.bounds.MaxY()-off)
			if got := lr.Transform.TransformPoint(gg.Pt(0, 0)); !near(got, far) {
				t.Errorf("label-local (0,0) -> %+v, want %+v", got, far)
			}
			if got := lr.Transform.TransformPoint(gg.Pt(lr.Size.W, lr.Size.H)); !near(got, lr.Origin) {
				t.Errorf("label-local (w,h) -> %+v, want origin %+v", got, lr.Origin)
			}
			frame := lr.Frame()
			if !near(gg.Pt(frame.MaxX(), frame.MaxY()), far) {
				t.Errorf("frame far corner = (%v, %v), want %+v", frame.MaxX(), frame.MaxY(), far)
			}
		})
	}
}

func TestMirrorIsHalfTurn(t *testing.T) {
	s := geom.Size{W: 30, H: 50}
	m := Mirror(s)
	cases := map[gg.Point]gg.Point{
		gg.Pt(0, 0):   gg.Pt(30, 50),
		gg.Pt(30, 50): gg.Pt(0, 0),
		gg.Pt(30, 0):  gg.Pt(0, 50),
		gg.Pt(15, 25): gg.Pt(15, 25),
	}
	for in, want := range cases {
		if got := m.TransformPoint(in); !near(got, want) {
			t.Errorf("Mirror(%+v) = %+v, want %+v", in, got, want)
		}
	}
}

func TestComposeFaceDownHidesBoth(t *testing.T) {
	ul, lr := Compose(lineMeasurer{}, Metrics{FontSize: 10, Offset: 2}, geom.R(0, 0, 100, 140), "K\n♠", false)
	if !ul.Hidden || !lr.Hidden {
		t.Errorf("hidden = %v, %v, want both hidden", ul.Hidden, lr.Hidden)
	}
}

func TestComposeNilMeasurer(t *testing.T) {
	ul, lr := Compose(nil, Metrics{FontSize: 10, Offset: 2}, geom.R(0, 0, 100, 140), "K\n♠", true)
	if ul.Size != (geom.Size{}) {
		t.Errorf("size = %+v, want zero", ul.Size)
	}
	if !near(lr.Origin, gg.Pt(98, 138)) {
		t.Errorf("lower-right origin = %+v", lr.Origin)
	}
}
