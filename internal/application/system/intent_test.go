package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntent_Axes(t *testing.T) {
	tests := []struct {
		name  string
		in    Intent
		horiz int
		vert  int
	}{
		{"neutral", Intent{}, 0, 0},
		{"left", Intent{Left: true}, -1, 0},
		{"right", Intent{Right: true}, 1, 0},
		{"both horizontal cancel", Intent{Left: true, Right: true}, 0, 0},
		{"up", Intent{Up: true}, 0, -1},
		{"down", Intent{Down: true}, 0, 1},
		{"both vertical cancel", Intent{Up: true, Down: true}, 0, 0},
		{"diagonal", Intent{Left: true, Down: true}, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.horiz, tt.in.Horizontal())
			assert.Equal(t, tt.vert, tt.in.Vertical())
		})
	}
}

func TestIntent_IsZero(t *testing.T) {
	assert.True(t, Intent{}.IsZero())
	assert.False(t, Intent{Jump: true}.IsZero())
}
