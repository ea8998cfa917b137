package system

// Intent is the immutable per-frame input snapshot consumed by the core.
// Jump is an edge: true only on the frame the key first goes down.
type Intent struct {
	Left  bool `json:"l,omitempty"`
	Right bool `json:"r,omitempty"`
	Up    bool `json:"u,omitempty"`
	Down  bool `json:"d,omitempty"`
	Jump  bool `json:"j,omitempty"`
}

// Horizontal returns -1, 0 or +1. Opposite keys cancel out.
func (i Intent) Horizontal() int {
	return axis(i.Left, i.Right)
}

// Vertical returns -1 (up), 0 or +1 (down). Opposite keys cancel out.
func (i Intent) Vertical() int {
	return axis(i.Up, i.Down)
}

// IsZero reports whether no input is held
func (i Intent) IsZero() bool {
	return i == Intent{}
}

func axis(neg, pos bool) int {
	switch {
	case neg && !pos:
		return -1
	case pos && !neg:
		return 1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
