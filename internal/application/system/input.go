package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings maps each intent field to the keys that trigger it
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Up    []ebiten.Key
	Down  []ebiten.Key
	Jump  []ebiten.Key
}

// DefaultKeyBindings returns arrows + WASD, jump on Space or Z
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Up:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Down:  []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Jump:  []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ},
	}
}

// InputSystem turns keyboard state into an Intent snapshot
type InputSystem struct {
	bindings KeyBindings
}

// NewInputSystem creates a new input system
func NewInputSystem(bindings KeyBindings) *InputSystem {
	return &InputSystem{bindings: bindings}
}

// GetInput reads the current keyboard state
func (s *InputSystem) GetInput() Intent {
	return s.Read(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// Read builds an Intent from key query functions.
// Jump uses the just-pressed query so it is an edge.
func (s *InputSystem) Read(pressed, justPressed func(ebiten.Key) bool) Intent {
	return Intent{
		Left:  anyKey(s.bindings.Left, pressed),
		Right: anyKey(s.bindings.Right, pressed),
		Up:    anyKey(s.bindings.Up, pressed),
		Down:  anyKey(s.bindings.Down, pressed),
		Jump:  anyKey(s.bindings.Jump, justPressed),
	}
}

func anyKey(keys []ebiten.Key, query func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if query(k) {
			return true
		}
	}
	return false
}
