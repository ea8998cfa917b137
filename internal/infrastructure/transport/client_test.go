package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/junglejr/internal/infrastructure/wire"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// createTestServer starts a websocket server running handle per connection
// and returns its ws:// URL.
func createTestServer(t *testing.T, handle func(conn *websocket.Conn)) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		handle(conn)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func echo(conn *websocket.Conn) {
	for {
		kind, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if err := conn.WriteMessage(kind, msg); err != nil {
			return
		}
	}
}

func dialTest(t *testing.T, url string) *Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, err := Dial(ctx, url, 11, 22)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func receive(t *testing.T, c *Client) wire.Frame {
	t.Helper()
	select {
	case f, ok := <-c.Incoming():
		require.True(t, ok, "incoming closed")
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frame")
	}
	return wire.Frame{}
}

func TestClient_EchoRoundTrip(t *testing.T) {
	c := dialTest(t, createTestServer(t, echo))

	prop := wire.NewPlayerProp(5, 16, 192, 1, 0, 1)
	require.NoError(t, c.Send(wire.TypePlayerProp, prop.Encode()))

	f := receive(t, c)
	assert.Equal(t, wire.TypePlayerProp, f.Type())
	assert.Equal(t, uint32(11), f.Header.ClientID)
	assert.Equal(t, uint32(22), f.Header.GameID)

	got, err := wire.DecodePlayerProp(f.Payload)
	require.NoError(t, err)
	assert.Equal(t, prop, got)
}

func TestClient_DropsTextAndMalformedFrames(t *testing.T) {
	url := createTestServer(t, func(conn *websocket.Conn) {
		_ = conn.WriteMessage(websocket.TextMessage, []byte("hello"))
		_ = conn.WriteMessage(websocket.BinaryMessage, []byte{0x09, 0x09})
		_ = conn.WriteMessage(websocket.BinaryMessage,
			wire.EncodeFrame(wire.TypeCrocSpeedIncrease, 0, 0, nil))
		echo(conn)
	})
	c := dialTest(t, url)

	f := receive(t, c)
	assert.Equal(t, wire.TypeCrocSpeedIncrease, f.Type())
}

func TestClient_ServerCloseEndsIncoming(t *testing.T) {
	url := createTestServer(t, func(conn *websocket.Conn) {
		_ = conn.WriteMessage(websocket.BinaryMessage,
			wire.EncodeFrame(wire.TypeGameOver, 0, 0, nil))
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
		time.Sleep(50 * time.Millisecond)
	})
	c := dialTest(t, url)

	f := receive(t, c)
	assert.Equal(t, wire.TypeGameOver, f.Type())

	select {
	case _, ok := <-c.Incoming():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("incoming was not closed")
	}
	assert.NoError(t, c.Err())
	assert.ErrorIs(t, c.Send(wire.TypePing, nil), ErrClosed)
}

func TestClient_Drain(t *testing.T) {
	c := dialTest(t, createTestServer(t, echo))

	require.NoError(t, c.Send(wire.TypePing, nil))
	require.NoError(t, c.Send(wire.TypeRequestRestart, nil))

	var got []wire.Frame
	require.Eventually(t, func() bool {
		got = append(got, c.Drain()...)
		return len(got) == 2
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, wire.TypePing, got[0].Type())
	assert.Equal(t, wire.TypeRequestRestart, got[1].Type())
}

func TestClient_SendAfterClose(t *testing.T) {
	c := dialTest(t, createTestServer(t, echo))

	require.NoError(t, c.Close())
	assert.NoError(t, c.Close())
	assert.ErrorIs(t, c.Send(wire.TypePing, nil), ErrClosed)
}

func TestDial_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Dial(ctx, "ws://127.0.0.1:1/nowhere", 1, 1)
	assert.Error(t, err)
}
