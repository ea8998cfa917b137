package wire

import (
	"encoding/binary"
	"fmt"
)

// PlayerProp is the client's proposed state for one tick (13 bytes)
type PlayerProp struct {
	Tick   uint32
	X, Y   int16
	VX, VY int16
	Flags  uint8
}

// NewPlayerProp converts ints to wire width, saturating out-of-range values
func NewPlayerProp(tick uint32, x, y, vx, vy int, flags uint8) PlayerProp {
	return PlayerProp{
		Tick:  tick,
		X:     clampI16(x),
		Y:     clampI16(y),
		VX:    clampI16(vx),
		VY:    clampI16(vy),
		Flags: flags,
	}
}

// Encode returns the payload bytes
func (m PlayerProp) Encode() []byte {
	b := make([]byte, 0, 13)
	b = binary.BigEndian.AppendUint32(b, m.Tick)
	b = appendI16(b, m.X)
	b = appendI16(b, m.Y)
	b = appendI16(b, m.VX)
	b = appendI16(b, m.VY)
	return append(b, m.Flags)
}

// DecodePlayerProp parses a PLAYER_PROP payload
func DecodePlayerProp(b []byte) (PlayerProp, error) {
	r := reader{b: b}
	m := PlayerProp{
		Tick:  r.u32(),
		X:     r.i16(),
		Y:     r.i16(),
		VX:    r.i16(),
		VY:    r.i16(),
		Flags: r.u8(),
	}
	if r.err != nil {
		return PlayerProp{}, fmt.Errorf("player prop: %w", r.err)
	}
	return m, nil
}

// Spawn places a crocodile or fruit (CROC_SPAWN / FRUIT_SPAWN, 5 bytes)
type Spawn struct {
	Variant uint8
	X, Y    int16
}

// Encode returns the payload bytes
func (m Spawn) Encode() []byte {
	b := make([]byte, 0, 5)
	b = append(b, m.Variant)
	b = appendI16(b, m.X)
	return appendI16(b, m.Y)
}

// DecodeSpawn parses a spawn payload
func DecodeSpawn(b []byte) (Spawn, error) {
	r := reader{b: b}
	m := Spawn{Variant: r.u8(), X: r.i16(), Y: r.i16()}
	if r.err != nil {
		return Spawn{}, fmt.Errorf("spawn: %w", r.err)
	}
	return m, nil
}

// Point is a bare position (REMOVE_FRUIT / NOTIFY_FRUIT_PICK, 4 bytes)
type Point struct {
	X, Y int16
}

// NewPoint converts ints to wire width
func NewPoint(x, y int) Point {
	return Point{X: clampI16(x), Y: clampI16(y)}
}

// Encode returns the payload bytes
func (m Point) Encode() []byte {
	b := make([]byte, 0, 4)
	b = appendI16(b, m.X)
	return appendI16(b, m.Y)
}

// DecodePoint parses a position payload
func DecodePoint(b []byte) (Point, error) {
	r := reader{b: b}
	m := Point{X: r.i16(), Y: r.i16()}
	if r.err != nil {
		return Point{}, fmt.Errorf("point: %w", r.err)
	}
	return m, nil
}

// Ack is the server's role acknowledgement. Older servers send it empty.
type Ack struct {
	Role          uint8 // 0 rejected, 1 player, 2 spectator
	Player1Specs  uint8 // 255 when the slot is inactive
	Player2Specs  uint8
	HasSlotCounts bool
}

// DecodeAck parses a CLIENT_ACK payload
func DecodeAck(b []byte) (Ack, error) {
	if len(b) == 0 {
		return Ack{Role: 1}, nil
	}
	r := reader{b: b}
	m := Ack{Role: r.u8(), Player1Specs: r.u8(), Player2Specs: r.u8(), HasSlotCounts: true}
	if r.err != nil {
		return Ack{}, fmt.Errorf("ack: %w", r.err)
	}
	return m, nil
}

// DecodeLives parses a LIVES_UPDATE payload
func DecodeLives(b []byte) (uint8, error) {
	r := reader{b: b}
	v := r.u8()
	if r.err != nil {
		return 0, fmt.Errorf("lives: %w", r.err)
	}
	return v, nil
}

// DecodeScore parses a SCORE_UPDATE payload
func DecodeScore(b []byte) (int32, error) {
	r := reader{b: b}
	v := int32(r.u32())
	if r.err != nil {
		return 0, fmt.Errorf("score: %w", r.err)
	}
	return v, nil
}
