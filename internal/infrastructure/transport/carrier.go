package transport

import (
	"bufio"
	"errors"
	"io"
	"log"
	"net"
	"time"

	"github.com/gorilla/websocket"

	"github.com/younwookim/junglejr/internal/infrastructure/wire"
)

// carrier moves encoded frames over one connection. read runs on the
// reader goroutine and write/keepalive on the writer goroutine.
type carrier interface {
	read() (wire.Frame, error)
	write(msg []byte) error
	keepalive() error
	close() error
	// closedByPeer reports a read error that is an orderly shutdown
	closedByPeer(err error) bool
}

// wsCarrier sends one frame per binary websocket message
type wsCarrier struct {
	conn *websocket.Conn
}

func newWSCarrier(conn *websocket.Conn) *wsCarrier {
	conn.SetReadLimit(wire.HeaderSize + wire.MaxPayload)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	return &wsCarrier{conn: conn}
}

// read skips text messages and frames that fail to decode
func (w *wsCarrier) read() (wire.Frame, error) {
	for {
		kind, msg, err := w.conn.ReadMessage()
		if err != nil {
			return wire.Frame{}, err
		}
		if kind != websocket.BinaryMessage {
			continue
		}

		f, err := wire.DecodeFrame(msg)
		if err != nil {
			log.Printf("transport: dropping frame: %v", err)
			continue
		}
		return f, nil
	}
}

func (w *wsCarrier) write(msg []byte) error {
	_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return w.conn.WriteMessage(websocket.BinaryMessage, msg)
}

func (w *wsCarrier) keepalive() error {
	_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return w.conn.WriteMessage(websocket.PingMessage, nil)
}

func (w *wsCarrier) close() error {
	_ = w.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	return w.conn.Close()
}

func (w *wsCarrier) closedByPeer(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}

// streamCarrier writes frames back to back on a TCP stream. A frame that
// fails to decode loses the framing, so it ends the connection.
type streamCarrier struct {
	conn net.Conn
	r    *bufio.Reader
}

func newStreamCarrier(conn net.Conn) *streamCarrier {
	return &streamCarrier{conn: conn, r: bufio.NewReader(conn)}
}

func (s *streamCarrier) read() (wire.Frame, error) {
	return wire.ReadFrame(s.r)
}

func (s *streamCarrier) write(msg []byte) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_, err := s.conn.Write(msg)
	return err
}

// keepalive is left to TCP; the frame protocol has no ping of its own
func (s *streamCarrier) keepalive() error {
	return nil
}

func (s *streamCarrier) close() error {
	return s.conn.Close()
}

func (s *streamCarrier) closedByPeer(err error) bool {
	return errors.Is(err, io.EOF)
}
