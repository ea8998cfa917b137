package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStateBundle(t *testing.T) {
	raw := []byte{
		0x10, 0x00, 0x04, 0x00, 0x00, 0x00, 0x2A, // tick 42
		0x99, 0x00, 0x02, 0xDE, 0xAD, // unknown tag, skipped
		0x11, 0x00, 0x07, 0x01, 0x00, 0x03, 0x00, 0xC0, 0xFF, 0xFE, // corr
		0x12, 0x00, 0x07, 0x01, 0x01, 0x02, 0x00, 0x50, 0x00, 0x60, // one croc
	}

	m, err := DecodeStateBundle(raw)
	require.NoError(t, err)

	require.NotNil(t, m.Tick)
	assert.Equal(t, uint32(42), *m.Tick)

	require.NotNil(t, m.Correction)
	assert.Equal(t, PlayerCorr{Grounded: true, PlatformID: 3, Y: 192, VY: -2}, *m.Correction)

	require.Len(t, m.Entities, 1)
	assert.Equal(t, EntityRecord{Kind: 1, Sprite: 2, X: 80, Y: 96}, m.Entities[0])
}

func TestStateBundle_EncodeMatchesDecode(t *testing.T) {
	tick := uint32(7)
	in := StateBundle{
		Tick:       &tick,
		Correction: &PlayerCorr{Grounded: false, PlatformID: -1, Y: 0, VY: 3},
		Entities: []EntityRecord{
			{Kind: 0, Sprite: 0, X: 16, Y: 192},
			{Kind: 2, Sprite: 3, X: 60, Y: 60},
		},
	}

	out, err := DecodeStateBundle(in.Encode())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeStateBundle_Partial(t *testing.T) {
	m, err := DecodeStateBundle([]byte{0x10, 0x00, 0x04, 0, 0, 0, 1})
	require.NoError(t, err)
	assert.NotNil(t, m.Tick)
	assert.Nil(t, m.Correction)
	assert.Nil(t, m.Entities)

	m, err = DecodeStateBundle(nil)
	require.NoError(t, err)
	assert.Nil(t, m.Tick)
}

func TestDecodeStateBundle_Truncated(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"tlv header cut", []byte{0x10, 0x00}},
		{"value shorter than length", []byte{0x10, 0x00, 0x04, 0x00, 0x00}},
		{"tick value too small", []byte{0x10, 0x00, 0x02, 0x00, 0x00}},
		{"entity count lies", []byte{0x12, 0x00, 0x01, 0x05}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeStateBundle(tt.raw)
			assert.ErrorIs(t, err, ErrShortPayload)
		})
	}
}

func TestEncodeEntities_CapsCount(t *testing.T) {
	recs := make([]EntityRecord, 300)
	v := EncodeEntities(recs)

	assert.Equal(t, uint8(255), v[0])
	assert.Len(t, v, 1+6*255)
}

func TestInitStatic(t *testing.T) {
	in := InitStatic{
		Player:     Rect{X: 16, Y: 192, W: 16, H: 16},
		Platforms:  []Rect{{X: 0, Y: 208, W: 256, H: 8}},
		Vines:      []Rect{{X: 100, Y: 50, W: 8, H: 100}, {X: 140, Y: 40, W: 8, H: 120}},
		Crocodiles: []Rect{},
		Fruits:     []Rect{{X: 60, Y: 60, W: 8, H: 8}},
	}

	raw := in.Encode()
	assert.Len(t, raw, 8+2+8+2+16+2+2+8, "no water list when there is no water")

	out, err := DecodeInitStatic(raw)
	require.NoError(t, err)
	assert.Equal(t, in.Player, out.Player)
	assert.Equal(t, in.Platforms, out.Platforms)
	assert.Equal(t, in.Vines, out.Vines)
	assert.Empty(t, out.Crocodiles)
	assert.Equal(t, in.Fruits, out.Fruits)
	assert.Nil(t, out.Water)

	in.Water = []Rect{{X: 96, Y: 216, W: 80, H: 24}}
	out, err = DecodeInitStatic(in.Encode())
	require.NoError(t, err)
	assert.Equal(t, in.Water, out.Water)
}

func TestDecodeInitStatic_CountPastEnd(t *testing.T) {
	raw := appendRect(nil, Rect{W: 16, H: 16})
	raw = append(raw, 0x00, 0x05) // claims 5 platforms, carries none

	_, err := DecodeInitStatic(raw)
	assert.ErrorIs(t, err, ErrShortPayload)
}
