package server

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
)

const (
	// write timeout per frame
	writeWait = 10 * time.Second

	// pong wait; a silent peer is dropped after this
	pongWait = 60 * time.Second

	// ping interval, must stay under pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096

	sendBufferSize = 256
)

// Client is one connected player. It satisfies types.ClientInterface for
// the game core and owns the read/write pumps for its socket.
type Client struct {
	ID   string
	Name string
	IP   string

	server *Server
	conn   *websocket.Conn
	send   chan []byte

	mu       sync.RWMutex
	roomKind string
	roomKey  string
	closed   bool
}

// NewClient wraps an upgraded connection.
func NewClient(s *Server, conn *websocket.Conn) *Client {
	id := uuid.New().String()
	return &Client{
		ID:     id,
		Name:   "Guest-" + id[:8],
		server: s,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
	}
}

func (c *Client) GetID() string   { return c.ID }
func (c *Client) GetName() string { return c.Name }

func (c *Client) GetRoomKind() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.roomKind
}

func (c *Client) GetRoomKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.roomKey
}

// SetRoom records the client's room membership. Empty values clear it.
func (c *Client) SetRoom(kind, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roomKind = kind
	c.roomKey = key
}

// ReadPump reads frames off the socket and hands decoded messages to the
// dispatcher. It owns disconnect cleanup.
func (c *Client) ReadPump() {
	defer func() {
		c.server.handleDisconnect(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("read error from %s: %v", c.ID, err)
			}
			break
		}

		msg, err := codec.Decode(data)
		if err != nil {
			log.Printf("bad frame from %s: %v", c.ID, err)
			c.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			continue
		}

		c.server.handler.Handle(c, msg)
	}
}

// WritePump serializes all socket writes: queued messages and keepalive
// pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendMessage queues a message for the write pump. A client that cannot
// drain its buffer is disconnected rather than allowed to stall the room.
func (c *Client) SendMessage(msg *protocol.Message) {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return
	}
	c.mu.RUnlock()

	data, err := codec.Encode(msg)
	if err != nil {
		log.Printf("encode error for %s: %v", c.ID, err)
		return
	}

	select {
	case c.send <- data:
	default:
		log.Printf("send buffer full for %s, dropping connection", c.ID)
		c.Close()
	}
}

// Close shuts the send channel once; the write pump then closes the
// socket.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// String identifies the client in logs.
func (c *Client) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.ID)
}
