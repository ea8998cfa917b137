package entity

// Body is the physical state shared by every moving entity.
// Positions are whole pixels, velocities whole pixels per frame.
type Body struct {
	X, Y   int
	W, H   int
	VX, VY int
}

// Rect returns the full hitbox
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// SetPos moves the body without touching velocity
func (b *Body) SetPos(x, y int) {
	b.X = x
	b.Y = y
}

// Player represents the player entity
type Player struct {
	Body

	Grounded       bool
	Jumping        bool
	JumpFramesLeft int

	// Vine is nil while airborne or grounded
	Vine VineMode

	// Released holds vines let go of while still touching them.
	// They cannot be grabbed again until the probe clears them.
	Released []int

	Dead bool
	Won  bool

	// One-shot edges, cleared on read
	justDied        bool
	justWon         bool
	justPickedFruit bool
	LastFruitX      int
	LastFruitY      int
}

// NewPlayer creates a player at pixel position (x, y) with the given size
func NewPlayer(x, y, w, h int) *Player {
	p := &Player{}
	p.Reset(x, y, w, h)
	return p
}

// Reset reinitializes the player for a fresh life: velocity and every
// mode flag are zeroed.
func (p *Player) Reset(x, y, w, h int) {
	*p = Player{Body: Body{X: x, Y: y, W: w, H: h}}
}

// OnVine reports whether the player holds any vine (single or two)
func (p *Player) OnVine() bool {
	switch p.Vine.(type) {
	case *OnVine, *BetweenVines:
		return true
	}
	return false
}

// SingleVine returns the single-vine state, if any
func (p *Player) SingleVine() (*OnVine, bool) {
	v, ok := p.Vine.(*OnVine)
	return v, ok
}

// BetweenVines reports whether the player holds two vines
func (p *Player) BetweenVines() bool {
	_, ok := p.Vine.(*BetweenVines)
	return ok
}

// VineForcedFall reports whether the player is in a forced fall
func (p *Player) VineForcedFall() bool {
	_, ok := p.Vine.(*ForcedFall)
	return ok
}

// VineSideLock reports whether a swap/stretch lock is active
func (p *Player) VineSideLock() bool {
	v, ok := p.Vine.(*OnVine)
	return ok && v.Lock != LockNone
}

// VineIndices returns the held vine indices: (left, right) when between
// vines, (index, index) on a single vine, (-1, -1) otherwise.
func (p *Player) VineIndices() (left, right int) {
	switch m := p.Vine.(type) {
	case *OnVine:
		return m.Index, m.Index
	case *BetweenVines:
		return m.Left, m.Right
	}
	return -1, -1
}

// VineLeftIndex returns the left (or only) held vine index, -1 if none
func (p *Player) VineLeftIndex() int {
	l, _ := p.VineIndices()
	return l
}

// VineRightIndex returns the right (or only) held vine index, -1 if none
func (p *Player) VineRightIndex() int {
	_, r := p.VineIndices()
	return r
}

// VineFallLockedX returns the pinned x of a forced fall
func (p *Player) VineFallLockedX() (int, bool) {
	if f, ok := p.Vine.(*ForcedFall); ok {
		return f.LockedX, true
	}
	return 0, false
}

// StopJump ends any jump ascent
func (p *Player) StopJump() {
	p.Jumping = false
	p.JumpFramesLeft = 0
}

// MarkDead kills the player once. A second call while dead is a no-op.
func (p *Player) MarkDead() {
	if p.Dead {
		return
	}
	p.Dead = true
	p.justDied = true
	p.VX = 0
	p.VY = 0
	p.Vine = nil
	p.StopJump()
}

// JustDied returns true once per death
func (p *Player) JustDied() bool {
	if !p.justDied {
		return false
	}
	p.justDied = false
	return true
}

// MarkWon raises the win edge once per round. Dead players cannot win.
func (p *Player) MarkWon() {
	if p.Dead || p.Won {
		return
	}
	p.Won = true
	p.justWon = true
}

// JustWon returns true once per win
func (p *Player) JustWon() bool {
	if !p.justWon {
		return false
	}
	p.justWon = false
	return true
}

// PickFruit records a fruit pickup edge at (x, y)
func (p *Player) PickFruit(x, y int) {
	p.justPickedFruit = true
	p.LastFruitX = x
	p.LastFruitY = y
}

// JustPickedFruit returns the pickup coordinates once per pickup
func (p *Player) JustPickedFruit() (x, y int, ok bool) {
	if !p.justPickedFruit {
		return 0, 0, false
	}
	p.justPickedFruit = false
	return p.LastFruitX, p.LastFruitY, true
}
