package entity

// CrocVariant selects a crocodile behavior table. Values are protocol bytes.
type CrocVariant uint8

const (
	// CrocRed oscillates on vines and platforms
	CrocRed CrocVariant = 1
	// CrocBlue falls down vines and walks off platforms
	CrocBlue CrocVariant = 2
)

// Crocodile is a patrol agent
type Crocodile struct {
	Active  bool
	Variant CrocVariant
	X, Y    int
	W, H    int

	// Direction of travel: -1, 0 or +1 per axis
	DirX, DirY int

	// divider counts frames since the last movement step
	divider int
}

// Rect returns the crocodile hitbox
func (c *Crocodile) Rect() Rect {
	return Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// Tick advances the frame divider and reports whether this frame moves.
// every <= 1 moves on every frame.
func (c *Crocodile) Tick(every int) bool {
	c.divider++
	if c.divider < every {
		return false
	}
	c.divider = 0
	return true
}

// SaturationPolicy decides what a full pool does with a new spawn
type SaturationPolicy int

const (
	// OverwriteFirst reuses slot 0 when no slot is free
	OverwriteFirst SaturationPolicy = iota
	// RefuseSpawn drops the spawn when no slot is free
	RefuseSpawn
)

// CrocodilePool is a fixed-capacity arena of crocodiles
type CrocodilePool struct {
	Slots  []Crocodile
	Policy SaturationPolicy

	defaultW, defaultH int
}

// NewCrocodilePool creates a pool with capacity slots of default size w x h
func NewCrocodilePool(capacity, w, h int, policy SaturationPolicy) *CrocodilePool {
	p := &CrocodilePool{
		Slots:    make([]Crocodile, capacity),
		Policy:   policy,
		defaultW: w,
		defaultH: h,
	}
	p.Clear()
	return p
}

// Clear deactivates every slot
func (p *CrocodilePool) Clear() {
	for i := range p.Slots {
		p.Slots[i] = Crocodile{W: p.defaultW, H: p.defaultH, Variant: CrocRed}
	}
}

// Spawn activates a crocodile in the first inactive slot.
// Returns the slot index, or -1 if the pool refused the spawn.
func (p *CrocodilePool) Spawn(variant CrocVariant, x, y int) int {
	slot := freeSlot(len(p.Slots), func(i int) bool { return p.Slots[i].Active }, p.Policy)
	if slot < 0 {
		return -1
	}
	p.Slots[slot] = Crocodile{
		Active:  true,
		Variant: variant,
		X:       x,
		Y:       y,
		W:       p.defaultW,
		H:       p.defaultH,
	}
	return slot
}

// ActiveCount returns the number of active crocodiles
func (p *CrocodilePool) ActiveCount() int {
	n := 0
	for i := range p.Slots {
		if p.Slots[i].Active {
			n++
		}
	}
	return n
}

// FruitVariant selects a fruit sprite. Values are protocol bytes.
type FruitVariant uint8

const (
	FruitBanana FruitVariant = 1
	FruitApple  FruitVariant = 2
	FruitOrange FruitVariant = 3
)

// Fruit is a pickup
type Fruit struct {
	Active  bool
	Variant FruitVariant
	X, Y    int
	W, H    int
}

// Rect returns the fruit hitbox
func (f *Fruit) Rect() Rect {
	return Rect{X: f.X, Y: f.Y, W: f.W, H: f.H}
}

// FruitPool is a fixed-capacity arena of fruit
type FruitPool struct {
	Slots  []Fruit
	Policy SaturationPolicy

	defaultW, defaultH int
}

// NewFruitPool creates a pool with capacity slots of default size w x h
func NewFruitPool(capacity, w, h int, policy SaturationPolicy) *FruitPool {
	p := &FruitPool{
		Slots:    make([]Fruit, capacity),
		Policy:   policy,
		defaultW: w,
		defaultH: h,
	}
	p.Clear()
	return p
}

// Clear deactivates every slot
func (p *FruitPool) Clear() {
	for i := range p.Slots {
		p.Slots[i] = Fruit{W: p.defaultW, H: p.defaultH, Variant: FruitBanana}
	}
}

// Spawn activates a fruit in the first inactive slot.
// Returns the slot index, or -1 if the pool refused the spawn.
func (p *FruitPool) Spawn(variant FruitVariant, x, y int) int {
	slot := freeSlot(len(p.Slots), func(i int) bool { return p.Slots[i].Active }, p.Policy)
	if slot < 0 {
		return -1
	}
	p.Slots[slot] = Fruit{
		Active:  true,
		Variant: variant,
		X:       x,
		Y:       y,
		W:       p.defaultW,
		H:       p.defaultH,
	}
	return slot
}

// RemoveAt deactivates the first active fruit positioned exactly at (x, y)
func (p *FruitPool) RemoveAt(x, y int) bool {
	for i := range p.Slots {
		f := &p.Slots[i]
		if f.Active && f.X == x && f.Y == y {
			f.Active = false
			return true
		}
	}
	return false
}

// ActiveCount returns the number of active fruit
func (p *FruitPool) ActiveCount() int {
	n := 0
	for i := range p.Slots {
		if p.Slots[i].Active {
			n++
		}
	}
	return n
}

// freeSlot scans for the first inactive slot and applies the saturation
// policy when there is none.
func freeSlot(n int, active func(int) bool, policy SaturationPolicy) int {
	for i := 0; i < n; i++ {
		if !active(i) {
			return i
		}
	}
	if n == 0 || policy == RefuseSpawn {
		return -1
	}
	return 0
}
