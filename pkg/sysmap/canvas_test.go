package sysmap

import (
	"testing"

	"github.com/matzehuels/zbxmap/pkg/graph"
)

func TestTransformAtExtent(t *testing.T) {
	for _, maxX := range []float64{27, 250, 999.5, 1843} {
		extent := graph.Point{X: maxX, Y: 400}
		x, _ := DefaultCanvas.Transform(graph.Point{X: maxX, Y: 10}, extent)

		w := float64(CanvasWidth)
		want := int(w*ScaleFactor - maxX*SkewFactor)
		if x != want {
			t.Errorf("maxX=%v: x = %d, want %d", maxX, x, want)
		}
	}
}

func TestTransformFlipsVerticalAxis(t *testing.T) {
	extent := graph.Point{X: 200, Y: 300}

	_, top := DefaultCanvas.Transform(graph.Point{X: 100, Y: 300}, extent)
	_, bottom := DefaultCanvas.Transform(graph.Point{X: 100, Y: 0}, extent)

	if top >= bottom {
		t.Errorf("highest layout node y = %d, lowest = %d; want highest above lowest", top, bottom)
	}
	// y=maxY: (H - H)*0.65 + maxY*0.1
	if want := int(300 * SkewFactor); top != want {
		t.Errorf("top y = %d, want %d", top, want)
	}
	// y=0: H*0.65
	if want := int(float64(CanvasHeight) * ScaleFactor); bottom != want {
		t.Errorf("bottom y = %d, want %d", bottom, want)
	}
}

func TestTransformValues(t *testing.T) {
	tests := []struct {
		name   string
		p      graph.Point
		extent graph.Point
		wantX  int
		wantY  int
	}{
		{"origin", graph.Point{X: 0, Y: 0}, graph.Point{X: 100, Y: 100}, 0, 832},
		// x: 50*1920/100*0.65 - 5 = 619; y: (1280-640)*0.65 + 5 = 421
		{"midpoint", graph.Point{X: 50, Y: 50}, graph.Point{X: 100, Y: 100}, 619, 421},
		// x: 1248 - 10 = 1238; y: (1280-1280)*0.65 + 10 = 10
		{"corner", graph.Point{X: 100, Y: 100}, graph.Point{X: 100, Y: 100}, 1238, 10},
		// truncation toward zero: 27*1920/81*0.65 - 2.7 = 413.3
		{"truncates", graph.Point{X: 27, Y: 0}, graph.Point{X: 81, Y: 1}, 413, 832},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := DefaultCanvas.Transform(tt.p, tt.extent)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Transform(%+v, %+v) = (%d, %d), want (%d, %d)", tt.p, tt.extent, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTransformZeroExtent(t *testing.T) {
	// A single node at the origin must not divide by zero.
	x, y := DefaultCanvas.Transform(graph.Point{}, graph.Point{})
	if x != 0 || y != 832 {
		t.Errorf("Transform(zero) = (%d, %d), want (0, 832)", x, y)
	}
}
