package wire

import (
	"encoding/binary"
	"fmt"
)

// TLV tags inside a STATE_BUNDLE
const (
	TagStateHeader = 0x10 // u32 tick
	TagPlayerCorr  = 0x11 // u8 grounded, i16 platId, i16 yCorr, i16 vyCorr
	TagEntities    = 0x12 // u8 count, count x {u8 kind, u8 sprite, i16 x, i16 y}
)

// MaxEntities is the most entities one TLV can carry
const MaxEntities = 255

// PlayerCorr is the authoritative vertical correction
type PlayerCorr struct {
	Grounded   bool
	PlatformID int16
	Y          int16
	VY         int16
}

// EntityRecord is one entity in an entities TLV
type EntityRecord struct {
	Kind   uint8
	Sprite uint8
	X, Y   int16
}

// StateBundle is the decoded TLV content of a STATE_BUNDLE frame.
// Absent TLVs leave their field nil.
type StateBundle struct {
	Tick       *uint32
	Correction *PlayerCorr
	Entities   []EntityRecord
}

// Encode writes every present TLV in tag order
func (m StateBundle) Encode() []byte {
	var b []byte
	if m.Tick != nil {
		b = appendTLV(b, TagStateHeader, binary.BigEndian.AppendUint32(nil, *m.Tick))
	}
	if m.Correction != nil {
		c := m.Correction
		var v []byte
		if c.Grounded {
			v = append(v, 1)
		} else {
			v = append(v, 0)
		}
		v = appendI16(v, c.PlatformID)
		v = appendI16(v, c.Y)
		v = appendI16(v, c.VY)
		b = appendTLV(b, TagPlayerCorr, v)
	}
	if m.Entities != nil {
		b = appendTLV(b, TagEntities, EncodeEntities(m.Entities))
	}
	return b
}

// EncodeEntities builds an entities TLV value. Records past MaxEntities
// are dropped.
func EncodeEntities(records []EntityRecord) []byte {
	if len(records) > MaxEntities {
		records = records[:MaxEntities]
	}
	v := make([]byte, 0, 1+6*len(records))
	v = append(v, uint8(len(records)))
	for _, e := range records {
		v = append(v, e.Kind, e.Sprite)
		v = appendI16(v, e.X)
		v = appendI16(v, e.Y)
	}
	return v
}

func appendTLV(dst []byte, tag uint8, value []byte) []byte {
	dst = append(dst, tag)
	dst = binary.BigEndian.AppendUint16(dst, uint16(len(value)))
	return append(dst, value...)
}

// DecodeStateBundle walks the TLVs of a STATE_BUNDLE payload.
// Unknown tags are skipped; a truncated TLV is an error.
func DecodeStateBundle(b []byte) (StateBundle, error) {
	var m StateBundle
	r := reader{b: b}

	for r.remaining() > 0 {
		tag := r.u8()
		n := int(r.u16())
		value := r.take(n)
		if r.err != nil {
			return StateBundle{}, fmt.Errorf("state bundle tlv 0x%02X: %w", tag, r.err)
		}

		switch tag {
		case TagStateHeader:
			vr := reader{b: value}
			tick := vr.u32()
			if vr.err != nil {
				return StateBundle{}, fmt.Errorf("state header: %w", vr.err)
			}
			m.Tick = &tick
		case TagPlayerCorr:
			vr := reader{b: value}
			c := PlayerCorr{
				Grounded:   vr.u8() != 0,
				PlatformID: vr.i16(),
				Y:          vr.i16(),
				VY:         vr.i16(),
			}
			if vr.err != nil {
				return StateBundle{}, fmt.Errorf("player corr: %w", vr.err)
			}
			m.Correction = &c
		case TagEntities:
			recs, err := decodeEntities(value)
			if err != nil {
				return StateBundle{}, err
			}
			m.Entities = recs
		}
	}
	return m, nil
}

func decodeEntities(b []byte) ([]EntityRecord, error) {
	r := reader{b: b}
	count := int(r.u8())
	recs := make([]EntityRecord, 0, count)
	for i := 0; i < count; i++ {
		recs = append(recs, EntityRecord{
			Kind:   r.u8(),
			Sprite: r.u8(),
			X:      r.i16(),
			Y:      r.i16(),
		})
	}
	if r.err != nil {
		return nil, fmt.Errorf("entities: %w", r.err)
	}
	return recs, nil
}

// Rect is an 8-byte wire rectangle
type Rect struct {
	X, Y, W, H int16
}

// InitStatic is the level bootstrap: player rect plus static and initial
// dynamic rectangles. Water is optional and trails the other lists.
type InitStatic struct {
	Player     Rect
	Platforms  []Rect
	Vines      []Rect
	Crocodiles []Rect
	Fruits     []Rect
	Water      []Rect
}

// Encode returns the payload bytes. Water is written only when present.
func (m InitStatic) Encode() []byte {
	var b []byte
	b = appendRect(b, m.Player)
	for _, list := range [][]Rect{m.Platforms, m.Vines, m.Crocodiles, m.Fruits} {
		b = appendRects(b, list)
	}
	if len(m.Water) > 0 {
		b = appendRects(b, m.Water)
	}
	return b
}

func appendRect(dst []byte, r Rect) []byte {
	dst = appendI16(dst, r.X)
	dst = appendI16(dst, r.Y)
	dst = appendI16(dst, r.W)
	return appendI16(dst, r.H)
}

func appendRects(dst []byte, list []Rect) []byte {
	dst = binary.BigEndian.AppendUint16(dst, uint16(len(list)))
	for _, r := range list {
		dst = appendRect(dst, r)
	}
	return dst
}

// DecodeInitStatic parses an INIT_STATIC payload
func DecodeInitStatic(b []byte) (InitStatic, error) {
	r := reader{b: b}
	var m InitStatic

	m.Player = readRect(&r)
	m.Platforms = readRects(&r)
	m.Vines = readRects(&r)
	m.Crocodiles = readRects(&r)
	m.Fruits = readRects(&r)
	if r.err == nil && r.remaining() > 0 {
		m.Water = readRects(&r)
	}

	if r.err != nil {
		return InitStatic{}, fmt.Errorf("init static: %w", r.err)
	}
	return m, nil
}

func readRect(r *reader) Rect {
	return Rect{X: r.i16(), Y: r.i16(), W: r.i16(), H: r.i16()}
}

func readRects(r *reader) []Rect {
	n := int(r.u16())
	if r.err != nil {
		return nil
	}
	if n*8 > r.remaining() {
		r.err = ErrShortPayload
		return nil
	}
	out := make([]Rect, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, readRect(r))
	}
	return out
}
