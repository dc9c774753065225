package sysmap

import "github.com/matzehuels/zbxmap/pkg/graph"

// Canvas dimensions of every generated map.
const (
	CanvasWidth  = 1920
	CanvasHeight = 1280
)

// Layout fitting constants. They were tuned by eye against the Zabbix map
// renderer and have no derivation.
const (
	// ScaleFactor compresses the rescaled layout.
	ScaleFactor = 0.65
	// SkewFactor is the per-coordinate counter skew.
	SkewFactor = 0.1
)

// Canvas is the pixel area a map is drawn on.
type Canvas struct {
	Width  int
	Height int
}

// DefaultCanvas is the fixed 1920x1280 canvas.
var DefaultCanvas = Canvas{Width: CanvasWidth, Height: CanvasHeight}

// Transform maps a Graphviz position to canvas pixels. extent holds the
// largest X and Y over all nodes. The vertical axis is flipped and results
// are truncated toward zero.
//
//	x' = x*W/maxX*0.65 - x*0.1
//	y' = (H - y*H/maxY)*0.65 + y*0.1
//
// A zero extent on an axis drops the rescale term for that axis.
func (c Canvas) Transform(p, extent graph.Point) (x, y int) {
	w, h := float64(c.Width), float64(c.Height)

	var sx, sy float64
	if extent.X != 0 {
		sx = p.X * w / extent.X
	}
	if extent.Y != 0 {
		sy = p.Y * h / extent.Y
	}

	x = int(sx*ScaleFactor - p.X*SkewFactor)
	y = int((h-sy)*ScaleFactor + p.Y*SkewFactor)
	return x, y
}
