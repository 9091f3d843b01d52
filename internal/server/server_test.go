package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JackT-C/poker/internal/config"
	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.Default()
	cfg.Redis.Addr = mr.Addr()

	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func dial(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()

	ts := httptest.NewServer(s.router)
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) *protocol.Message {
	t.Helper()
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	msg, err := codec.Decode(data)
	require.NoError(t, err)
	return msg
}

// readUntil drains frames until one of the wanted type arrives.
func readUntil(t *testing.T, conn *websocket.Conn, want protocol.MessageType) *protocol.Message {
	t.Helper()
	for range 20 {
		msg := readMessage(t, conn)
		if msg.Type == want {
			return msg
		}
	}
	t.Fatalf("no %s message received", want)
	return nil
}

func writeMessage(t *testing.T, conn *websocket.Conn, msg *protocol.Message) {
	t.Helper()
	data, err := codec.Encode(msg)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
}

func TestConnectAssignsIdentity(t *testing.T) {
	s := newTestServer(t)
	conn := dial(t, s)

	msg := readUntil(t, conn, protocol.MsgConnected)
	payload, err := codec.ParsePayload[protocol.ConnectedPayload](msg)
	require.NoError(t, err)
	assert.NotEmpty(t, payload.PlayerID)
	assert.True(t, strings.HasPrefix(payload.PlayerName, "Guest-"))
}

func TestJoinRoomOverSocket(t *testing.T) {
	s := newTestServer(t)
	conn := dial(t, s)
	readUntil(t, conn, protocol.MsgConnected)

	writeMessage(t, conn, codec.MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{
		RoomKey: "table1", Game: "poker", PlayerName: "alice",
	}))

	readUntil(t, conn, protocol.MsgRoomUpdate)
	assert.Eventually(t, func() bool { return s.RoomCount() == 1 }, time.Second, 10*time.Millisecond)
}

func TestDisconnectTearsDownRoom(t *testing.T) {
	s := newTestServer(t)
	conn := dial(t, s)
	readUntil(t, conn, protocol.MsgConnected)

	writeMessage(t, conn, codec.MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{
		RoomKey: "table1", Game: "poker", PlayerName: "alice",
	}))
	readUntil(t, conn, protocol.MsgRoomUpdate)

	conn.Close()

	assert.Eventually(t, func() bool {
		return s.RoomCount() == 0 && s.ClientCount() == 0
	}, 2*time.Second, 20*time.Millisecond, "a dropped connection vacates its room")
}

func TestMalformedFrameGetsError(t *testing.T) {
	s := newTestServer(t)
	conn := dial(t, s)
	readUntil(t, conn, protocol.MsgConnected)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	msg := readUntil(t, conn, protocol.MsgError)
	payload, err := codec.ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeInvalidMsg, payload.Code)
}
