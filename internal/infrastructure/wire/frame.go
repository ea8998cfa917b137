// Package wire encodes and decodes client/server protocol frames.
// Every integer is big-endian.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Version is the only protocol version accepted
const Version = 1

// HeaderSize is the fixed frame header length
const HeaderSize = 16

// MaxPayload bounds a single frame payload
const MaxPayload = 1 << 16

var (
	ErrShortPayload    = errors.New("wire: short payload")
	ErrBadVersion      = errors.New("wire: unsupported version")
	ErrPayloadTooLarge = errors.New("wire: payload too large")
)

// MsgType identifies a frame
type MsgType uint8

const (
	TypeClientAck         MsgType = 0x01
	TypeInitStatic        MsgType = 0x02
	TypeStateBundle       MsgType = 0x10
	TypePlayerProp        MsgType = 0x20
	TypeCrocSpawn         MsgType = 0x30
	TypeFruitSpawn        MsgType = 0x40
	TypeRemoveFruit       MsgType = 0x41
	TypeSpectatorState    MsgType = 0x50
	TypeSpectateRequest   MsgType = 0x51
	TypeNotifyDeath       MsgType = 0x60
	TypeNotifyVictory     MsgType = 0x61
	TypeNotifyFruitPick   MsgType = 0x62
	TypePlayerRespawn     MsgType = 0x70
	TypeGameOver          MsgType = 0x71
	TypeRespawnVictory    MsgType = 0x72
	TypeLivesUpdate       MsgType = 0x73
	TypeScoreUpdate       MsgType = 0x74
	TypeCrocSpeedIncrease MsgType = 0x75
	TypeRequestRestart    MsgType = 0x76
	TypeGameRestart       MsgType = 0x77

	// Liveness probe answered with a PONG echoing the payload. Local
	// extension; servers speaking the base protocol never send it.
	TypePing MsgType = 0x7E
	TypePong MsgType = 0x7F
)

var typeNames = map[MsgType]string{
	TypeClientAck:         "CLIENT_ACK",
	TypeInitStatic:        "INIT_STATIC",
	TypeStateBundle:       "STATE_BUNDLE",
	TypePlayerProp:        "PLAYER_PROP",
	TypeCrocSpawn:         "CROC_SPAWN",
	TypeFruitSpawn:        "FRUIT_SPAWN",
	TypeRemoveFruit:       "REMOVE_FRUIT",
	TypeSpectatorState:    "SPECTATOR_STATE",
	TypeSpectateRequest:   "SPECTATE_REQUEST",
	TypeNotifyDeath:       "NOTIFY_DEATH",
	TypeNotifyVictory:     "NOTIFY_VICTORY",
	TypeNotifyFruitPick:   "NOTIFY_FRUIT_PICK",
	TypePlayerRespawn:     "PLAYER_RESPAWN",
	TypeGameOver:          "GAME_OVER",
	TypeRespawnVictory:    "RESPAWN_VICTORY",
	TypeLivesUpdate:       "LIVES_UPDATE",
	TypeScoreUpdate:       "SCORE_UPDATE",
	TypeCrocSpeedIncrease: "CROC_SPEED_INCREASE",
	TypeRequestRestart:    "REQUEST_RESTART",
	TypeGameRestart:       "GAME_RESTART",
	TypePing:              "PING",
	TypePong:              "PONG",
}

// String returns the protocol name
func (t MsgType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("MsgType(0x%02X)", uint8(t))
}

// Header is the fixed 16-byte frame header
type Header struct {
	Version    uint8
	Type       MsgType
	Reserved   uint16
	ClientID   uint32
	GameID     uint32
	PayloadLen uint32
}

// AppendHeader appends the encoded header to dst
func AppendHeader(dst []byte, h Header) []byte {
	dst = append(dst, h.Version, uint8(h.Type))
	dst = binary.BigEndian.AppendUint16(dst, h.Reserved)
	dst = binary.BigEndian.AppendUint32(dst, h.ClientID)
	dst = binary.BigEndian.AppendUint32(dst, h.GameID)
	dst = binary.BigEndian.AppendUint32(dst, h.PayloadLen)
	return dst
}

// ParseHeader decodes a header from the first HeaderSize bytes of b
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("header: %w", ErrShortPayload)
	}
	h := Header{
		Version:    b[0],
		Type:       MsgType(b[1]),
		Reserved:   binary.BigEndian.Uint16(b[2:4]),
		ClientID:   binary.BigEndian.Uint32(b[4:8]),
		GameID:     binary.BigEndian.Uint32(b[8:12]),
		PayloadLen: binary.BigEndian.Uint32(b[12:16]),
	}
	if h.Version != Version {
		return h, fmt.Errorf("header version %d: %w", h.Version, ErrBadVersion)
	}
	return h, nil
}

// Frame is a header plus its payload
type Frame struct {
	Header  Header
	Payload []byte
}

// Type returns the frame type
func (f Frame) Type() MsgType {
	return f.Header.Type
}

// EncodeFrame builds a complete frame
func EncodeFrame(t MsgType, clientID, gameID uint32, payload []byte) []byte {
	out := make([]byte, 0, HeaderSize+len(payload))
	out = AppendHeader(out, Header{
		Version:    Version,
		Type:       t,
		ClientID:   clientID,
		GameID:     gameID,
		PayloadLen: uint32(len(payload)),
	})
	return append(out, payload...)
}

// DecodeFrame decodes exactly one frame from b. Trailing bytes are an error.
func DecodeFrame(b []byte) (Frame, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return Frame{}, err
	}
	if h.PayloadLen > MaxPayload {
		return Frame{}, fmt.Errorf("frame %s: %w", h.Type, ErrPayloadTooLarge)
	}
	body := b[HeaderSize:]
	if uint32(len(body)) != h.PayloadLen {
		return Frame{}, fmt.Errorf("frame %s: want %d payload bytes, have %d: %w",
			h.Type, h.PayloadLen, len(body), ErrShortPayload)
	}
	return Frame{Header: h, Payload: body}, nil
}

// ReadFrame reads one frame from a byte stream such as a TCP connection
func ReadFrame(r io.Reader) (Frame, error) {
	var raw [HeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return Frame{}, fmt.Errorf("read header: %w", err)
	}
	h, err := ParseHeader(raw[:])
	if err != nil {
		return Frame{}, err
	}
	if h.PayloadLen > MaxPayload {
		return Frame{}, fmt.Errorf("frame %s: %w", h.Type, ErrPayloadTooLarge)
	}

	payload := make([]byte, h.PayloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Frame{}, fmt.Errorf("read %s payload: %w", h.Type, err)
	}
	return Frame{Header: h, Payload: payload}, nil
}
