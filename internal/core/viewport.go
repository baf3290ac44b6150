package core

import "math"

// Viewport maps logical play-field coordinates onto a block of terminal
// cells. Scaling is independent per axis, so the field always fills the
// block regardless of the terminal's aspect ratio.
type Viewport struct {
	Origin Rect    // Cells the field is drawn into
	FieldW float64 // Logical field width
	FieldH float64 // Logical field height
}

// NewViewport creates a viewport of cols x rows cells at the origin.
func NewViewport(cols, rows int, fieldW, fieldH float64) Viewport {
	return Viewport{
		Origin: Rect{W: cols, H: rows},
		FieldW: fieldW,
		FieldH: fieldH,
	}
}

// Valid reports whether the viewport can map anything.
func (v Viewport) Valid() bool {
	return !v.Origin.Empty() && v.FieldW > 0 && v.FieldH > 0
}

// Col returns the cell column containing logical x.
func (v Viewport) Col(x float64) int {
	return v.Origin.X + int(math.Floor(x*float64(v.Origin.W)/v.FieldW))
}

// Row returns the cell row containing logical y.
func (v Viewport) Row(y float64) int {
	return v.Origin.Y + int(math.Floor(y*float64(v.Origin.H)/v.FieldH))
}

// Cells returns the cells covering the logical rectangle (x, y, w, h). Any
// partially covered cell is included; a zero-size rectangle covers nothing.
func (v Viewport) Cells(x, y, w, h float64) Rect {
	if w <= 0 || h <= 0 {
		return Rect{X: v.Col(x), Y: v.Row(y)}
	}
	cols, rows := float64(v.Origin.W), float64(v.Origin.H)

	x0 := int(math.Floor(x * cols / v.FieldW))
	y0 := int(math.Floor(y * rows / v.FieldH))
	x1 := int(math.Ceil((x + w) * cols / v.FieldW))
	y1 := int(math.Ceil((y + h) * rows / v.FieldH))
	return Rect{X: v.Origin.X + x0, Y: v.Origin.Y + y0, W: x1 - x0, H: y1 - y0}
}

// Visible reports whether the cell lies inside the viewport.
func (v Viewport) Visible(col, row int) bool {
	return v.Origin.Contains(col, row)
}
