package entity

// EntityKind identifies an entity inside an entity snapshot.
// Values are protocol bytes.
type EntityKind uint8

const (
	KindPlayer EntityKind = iota
	KindCrocodile
	KindFruit
)

// String returns the kind name
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindCrocodile:
		return "crocodile"
	case KindFruit:
		return "fruit"
	default:
		return "unknown"
	}
}

// Geometry is the static level data for one round.
// It is read-only while a round runs and replaced wholesale on level load.
type Geometry struct {
	Platforms []Rect
	Vines     []Rect
	Water     []Rect

	// Bounds is the playable viewport (left, top, width, height)
	Bounds Rect

	// Level data carried with the geometry
	SpawnX, SpawnY int
	WaterLine      int  // any player row at or below this y is water; 0 disables
	Goal           Rect // empty means the level has no goal
}

// NewGeometry creates geometry with the given world bounds
func NewGeometry(bounds Rect) *Geometry {
	return &Geometry{Bounds: bounds}
}

// Vine returns the vine at index i.
// Out-of-range indices (and a nil geometry) report not found instead of panicking.
func (g *Geometry) Vine(i int) (Rect, bool) {
	if g == nil || i < 0 || i >= len(g.Vines) {
		return Rect{}, false
	}
	return g.Vines[i], true
}

// InWater reports whether r touches the water line or any water rect
func (g *Geometry) InWater(r Rect) bool {
	if g == nil {
		return false
	}
	if g.WaterLine > 0 && r.Bottom() > g.WaterLine {
		return true
	}
	return g.WaterOverlapping(r)
}

// AtGoal reports whether the center of r is inside the goal rect
func (g *Geometry) AtGoal(r Rect) bool {
	if g == nil || g.Goal.Empty() {
		return false
	}
	return g.Goal.ContainsPoint(r.CenterX(), r.CenterY())
}

// FloorY returns the world floor (bounds bottom)
func (g *Geometry) FloorY() int {
	return g.Bounds.Bottom()
}

// PlatformUnder returns the index of the first platform whose top face r is
// resting on exactly, with horizontal overlap. Returns -1 if none.
func (g *Geometry) PlatformUnder(r Rect) int {
	if g == nil {
		return -1
	}
	for i, pl := range g.Platforms {
		if r.Bottom() == pl.Y && r.OverlapsX(pl) {
			return i
		}
	}
	return -1
}

// VineOverlapping returns the index of the first vine overlapping r, or -1
func (g *Geometry) VineOverlapping(r Rect) int {
	if g == nil {
		return -1
	}
	for i, v := range g.Vines {
		if r.Overlaps(v) {
			return i
		}
	}
	return -1
}

// WaterOverlapping reports whether r overlaps any water rect
func (g *Geometry) WaterOverlapping(r Rect) bool {
	if g == nil {
		return false
	}
	for _, w := range g.Water {
		if r.Overlaps(w) {
			return true
		}
	}
	return false
}
