// Package transport carries wire frames over a websocket or a raw TCP
// stream.
package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/younwookim/junglejr/internal/infrastructure/wire"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = 25 * time.Second
	incomingSize = 256
	sendSize     = 256
)

var (
	ErrClosed   = errors.New("transport: connection closed")
	ErrSendFull = errors.New("transport: send buffer full")
	ErrScheme   = errors.New("transport: unsupported url scheme")
)

// Client exchanges wire frames with the server over a carrier.
// Incoming frames are decoded on a reader goroutine and queued until the
// frame loop drains them.
type Client struct {
	carrier  carrier
	clientID uint32
	gameID   uint32

	incoming chan wire.Frame
	send     chan []byte
	done     chan struct{}

	closeOnce sync.Once
	mu        sync.Mutex
	err       error
}

// Dial connects to a server. ws:// and wss:// URLs use a websocket,
// tcp://host:port a raw frame stream.
func Dial(ctx context.Context, rawURL string, clientID, gameID uint32) (*Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}

	switch u.Scheme {
	case "ws", "wss":
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", rawURL, err)
		}
		return newClient(newWSCarrier(conn), clientID, gameID), nil
	case "tcp":
		var d net.Dialer
		conn, err := d.DialContext(ctx, "tcp", u.Host)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", rawURL, err)
		}
		return newClient(newStreamCarrier(conn), clientID, gameID), nil
	default:
		return nil, fmt.Errorf("dial %s: %w", rawURL, ErrScheme)
	}
}

func newClient(cr carrier, clientID, gameID uint32) *Client {
	c := &Client{
		carrier:  cr,
		clientID: clientID,
		gameID:   gameID,
		incoming: make(chan wire.Frame, incomingSize),
		send:     make(chan []byte, sendSize),
		done:     make(chan struct{}),
	}

	go c.readPump()
	go c.writePump()
	return c
}

// Incoming returns the decoded frame queue. It is closed when the
// connection ends.
func (c *Client) Incoming() <-chan wire.Frame {
	return c.incoming
}

// Drain returns every frame queued right now without blocking
func (c *Client) Drain() []wire.Frame {
	var out []wire.Frame
	for {
		select {
		case f, ok := <-c.incoming:
			if !ok {
				return out
			}
			out = append(out, f)
		default:
			return out
		}
	}
}

// Send queues one frame. It never blocks the caller.
func (c *Client) Send(t wire.MsgType, payload []byte) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	msg := wire.EncodeFrame(t, c.clientID, c.gameID, payload)
	select {
	case c.send <- msg:
		return nil
	case <-c.done:
		return ErrClosed
	default:
		return fmt.Errorf("%s: %w", t, ErrSendFull)
	}
}

// Err returns the error that ended the connection, if any
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close ends the connection. It is safe to call more than once.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		err = c.carrier.close()
	})
	return err
}

func (c *Client) fail(err error) {
	c.mu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.mu.Unlock()
}

func (c *Client) readPump() {
	defer func() {
		c.Close()
		close(c.incoming)
	}()

	for {
		f, err := c.carrier.read()
		if err != nil {
			select {
			case <-c.done:
			default:
				if !c.carrier.closedByPeer(err) {
					c.fail(err)
				}
			}
			return
		}

		select {
		case c.incoming <- f:
		case <-c.done:
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg := <-c.send:
			if err := c.carrier.write(msg); err != nil {
				c.fail(err)
				c.Close()
				return
			}
		case <-ticker.C:
			if err := c.carrier.keepalive(); err != nil {
				c.fail(err)
				c.Close()
				return
			}
		case <-c.done:
			return
		}
	}
}
