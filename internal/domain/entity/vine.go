package entity

// VineSide is the edge of a vine the player hangs on
type VineSide int

const (
	// SideLeft means the player hangs on the vine's left edge (player is left of center)
	SideLeft VineSide = -1
	// SideRight means the player hangs on the vine's right edge
	SideRight VineSide = 1
)

// Opposite returns the other side
func (s VineSide) Opposite() VineSide {
	return -s
}

// TowardCenter returns the horizontal input direction (-1/+1) that points at
// the vine center from this side.
func (s VineSide) TowardCenter() int {
	return int(-s)
}

// SideLock guards a single continuous key-hold from firing more than one
// swap/stretch. It is released by one frame of neutral horizontal input.
type SideLock int

const (
	LockNone SideLock = iota
	// LockHeld is set by a swap or a commit; it blocks swaps and stretches
	LockHeld
	// LockArmed is set by a stretch that found no neighbor; a second
	// consecutive stretch in that state becomes a forced fall
	LockArmed
)

// VineMode is the movement mode while interacting with vines.
// A nil VineMode means ordinary airborne/grounded physics.
type VineMode interface {
	isVineMode()
}

// OnVine holds a single vine
type OnVine struct {
	Index int
	Side  VineSide
	Lock  SideLock
}

func (*OnVine) isVineMode() {}

// BetweenVines holds two vines at once. Left has the smaller center x.
// Lock is set by the stretch that entered the mode; a directional commit
// needs a neutral frame first.
type BetweenVines struct {
	Left  int
	Right int
	Lock  SideLock
}

func (*BetweenVines) isVineMode() {}

// ForcedFall drops straight down with x pinned until grounded
type ForcedFall struct {
	LockedX int
}

func (*ForcedFall) isVineMode() {}

// VineAttachX returns the player x that overlaps vine v by exactly one
// pixel on the given side.
func VineAttachX(v Rect, side VineSide, playerW int) int {
	if side == SideLeft {
		return v.X - (playerW - 1)
	}
	return v.Right() - 1
}
