// Package physics provides axis-aligned collision boxes.
package physics

// Rect is an axis-aligned box in logical units. Min is the top-left corner.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect builds a box from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Inset shrinks the box by the given margins on each side.
// Negative margins grow it.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	return Rect{
		MinX: r.MinX + left,
		MinY: r.MinY + top,
		MaxX: r.MaxX - right,
		MaxY: r.MaxY - bottom,
	}
}

// Offset moves the box by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Overlaps reports whether r and o share any point. Boxes whose edges
// exactly touch overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX &&
		r.MinY <= o.MaxY && o.MinY <= r.MaxY
}
