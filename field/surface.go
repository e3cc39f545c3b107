package field

import "image/color"

// Surface is the 2D immediate-mode drawing target a Field renders onto.
// Coordinates are pixels with the origin at the top-left corner.
//
// Providers own resize notification: when the surface dimensions change they
// call Field.Resize with the new size, between ticks.
type Surface interface {
	// Size returns the current pixel width and height.
	Size() (w, h float64)

	// Clear erases the whole surface.
	Clear()

	// FillCircle draws a filled circle and, when glow > 0, a blurred halo of
	// roughly glow pixels in the same color around it.
	FillCircle(x, y, r float64, clr color.Color, glow float64)

	// StrokeLine draws a straight line with the given width. Opacity in
	// [0, 1] scales the alpha of clr.
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color, opacity float64)
}

// CircleOp is a FillCircle call captured by a Recorder.
type CircleOp struct {
	X, Y, R float64
	Color   color.Color
	Glow    float64
}

// LineOp is a StrokeLine call captured by a Recorder.
type LineOp struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          color.Color
	Opacity        float64
}

// Recorder is an in-memory Surface that captures the draw calls of the
// current frame. Clear discards everything recorded so far.
type Recorder struct {
	W, H    float64
	Circles []CircleOp
	Lines   []LineOp
	Clears  int
}

// NewRecorder creates a Recorder of the given pixel size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

// Resize changes the recorder's reported size.
func (r *Recorder) Resize(w, h float64) {
	r.W = w
	r.H = h
}

func (r *Recorder) Size() (float64, float64) {
	return r.W, r.H
}

func (r *Recorder) Clear() {
	r.Clears++
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
}

func (r *Recorder) FillCircle(x, y, radius float64, clr color.Color, glow float64) {
	r.Circles = append(r.Circles, CircleOp{X: x, Y: y, R: radius, Color: clr, Glow: glow})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color, opacity float64) {
	r.Lines = append(r.Lines, LineOp{
		X0: x0, Y0: y0, X1: x1, Y1: y1,
		Width:   width,
		Color:   clr,
		Opacity: opacity,
	})
}
