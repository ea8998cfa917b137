package entity

// MinProbeHeight is the smallest height the vine probe may shrink to.
const MinProbeHeight = 4

// Rect is an axis-aligned rectangle in pixel units.
// Width and height are never negative.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the exclusive right edge
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterX returns the horizontal center (integer division)
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the vertical center (integer division)
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps is a half-open AABB test: rects that only share an edge do not overlap.
// This keeps "resting exactly on top of a platform" a non-overlapping contact.
func (r Rect) Overlaps(o Rect) bool {
	return r.Right() > o.X && r.X < o.Right() && r.Bottom() > o.Y && r.Y < o.Bottom()
}

// OverlapsX reports horizontal overlap only
func (r Rect) OverlapsX(o Rect) bool {
	return r.Right() > o.X && r.X < o.Right()
}

// OverlapsY reports vertical overlap only
func (r Rect) OverlapsY(o Rect) bool {
	return r.Bottom() > o.Y && r.Y < o.Bottom()
}

// ContainsPoint reports whether (px, py) lies inside the rect (half-open)
func (r Rect) ContainsPoint(px, py int) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

// ProbeRect returns the reduced-height rect used for vine detection.
// It keeps the full width, half the height (at least MinProbeHeight) and is
// centered vertically inside r.
func (r Rect) ProbeRect() Rect {
	h := r.H / 2
	if h < MinProbeHeight {
		h = MinProbeHeight
	}
	return Rect{
		X: r.X,
		Y: r.Y + (r.H-h)/2,
		W: r.W,
		H: h,
	}
}

// ReachRect extends the probe rect by reach pixels on the side given by dir
// (-1 left, +1 right). Any other dir returns the probe unchanged.
func (r Rect) ReachRect(dir, reach int) Rect {
	p := r.ProbeRect()
	switch {
	case dir < 0:
		p.X -= reach
		p.W += reach
	case dir > 0:
		p.W += reach
	}
	return p
}
