package config

// TuningConfig is the root config for tuning.json
type TuningConfig struct {
	Display   DisplayConfig   `json:"display"`
	Movement  MovementConfig  `json:"movement"`
	Vine      VineConfig      `json:"vine"`
	Player    PlayerConfig    `json:"player"`
	Crocodile CrocodileConfig `json:"crocodile"`
	Fruit     FruitConfig     `json:"fruit"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// MovementConfig is the constant-velocity movement model (pixels per frame)
type MovementConfig struct {
	MoveSpeed        int `json:"moveSpeed"`
	FallSpeed        int `json:"fallSpeed"`
	JumpAscentSpeed  int `json:"jumpAscentSpeed"`  // negative = up
	JumpAscentFrames int `json:"jumpAscentFrames"` // frames of ascent per jump
}

// VineConfig tunes the vine state machine
type VineConfig struct {
	ClimbSpeed        int `json:"climbSpeed"`
	BetweenClimbSpeed int `json:"betweenClimbSpeed"` // faster than ClimbSpeed
	ReachDistance     int `json:"reachDistance"`     // pixels added to the reach rect
	ForcedFallNudge   int `json:"forcedFallNudge"`   // pixels pushed away on forced fall
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// Clamp enforces sane bounds on user-provided tuning in place
func (c *TuningConfig) Clamp() {
	if c == nil {
		return
	}

	c.Display.ScreenWidth = clampInt(c.Display.ScreenWidth, 64, 1024)
	c.Display.ScreenHeight = clampInt(c.Display.ScreenHeight, 64, 1024)
	c.Display.Scale = clampInt(c.Display.Scale, 1, 8)
	c.Display.Framerate = clampInt(c.Display.Framerate, 10, 240)

	c.Movement.MoveSpeed = clampInt(c.Movement.MoveSpeed, 1, 8)
	c.Movement.FallSpeed = clampInt(c.Movement.FallSpeed, 1, 8)
	c.Movement.JumpAscentSpeed = clampInt(c.Movement.JumpAscentSpeed, -8, -1)
	c.Movement.JumpAscentFrames = clampInt(c.Movement.JumpAscentFrames, 0, 120)

	c.Vine.ClimbSpeed = clampInt(c.Vine.ClimbSpeed, 1, 8)
	c.Vine.BetweenClimbSpeed = clampInt(c.Vine.BetweenClimbSpeed, c.Vine.ClimbSpeed, 16)
	c.Vine.ReachDistance = clampInt(c.Vine.ReachDistance, 0, 64)
	c.Vine.ForcedFallNudge = clampInt(c.Vine.ForcedFallNudge, 0, 16)

	c.Player.Width = clampInt(c.Player.Width, 1, 64)
	c.Player.Height = clampInt(c.Player.Height, 1, 64)

	c.Crocodile.Width = clampInt(c.Crocodile.Width, 1, 64)
	c.Crocodile.Height = clampInt(c.Crocodile.Height, 1, 64)
	c.Crocodile.Capacity = clampInt(c.Crocodile.Capacity, 0, 64)
	c.Crocodile.Divider = clampInt(c.Crocodile.Divider, 1, 60)
	c.Crocodile.BaseSpeed = clampInt(c.Crocodile.BaseSpeed, 1, 16)
	c.Crocodile.MaxSpeed = clampInt(c.Crocodile.MaxSpeed, c.Crocodile.BaseSpeed, 16)
	c.Crocodile.FallMargin = clampInt(c.Crocodile.FallMargin, 0, 256)

	c.Fruit.Width = clampInt(c.Fruit.Width, 1, 64)
	c.Fruit.Height = clampInt(c.Fruit.Height, 1, 64)
	c.Fruit.Capacity = clampInt(c.Fruit.Capacity, 0, 64)
}

// DefaultTuning returns the built-in tuning used when no file overrides it
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		Display: DisplayConfig{
			ScreenWidth:  256,
			ScreenHeight: 240,
			Scale:        3,
			Framerate:    60,
		},
		Movement: MovementConfig{
			MoveSpeed:        1,
			FallSpeed:        1,
			JumpAscentSpeed:  -1,
			JumpAscentFrames: 18,
		},
		Vine: VineConfig{
			ClimbSpeed:        1,
			BetweenClimbSpeed: 2,
			ReachDistance:     12,
			ForcedFallNudge:   2,
		},
		Player: PlayerConfig{Width: 16, Height: 16},
		Crocodile: CrocodileConfig{
			Width:      8,
			Height:     8,
			Capacity:   8,
			Divider:    4,
			BaseSpeed:  1,
			MaxSpeed:   4,
			FallMargin: 16,
			Saturation: SaturationOverwrite,
		},
		Fruit: FruitConfig{Width: 8, Height: 8, Capacity: 8},
	}
}
