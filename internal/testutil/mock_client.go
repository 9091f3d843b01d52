// Package testutil provides test doubles for the gateway boundary.
package testutil

import (
	"sync"

	"github.com/JackT-C/poker/internal/protocol"
)

// MockClient is a types.ClientInterface that records every message sent to
// it instead of writing to a socket.
type MockClient struct {
	ID   string
	Name string

	mu       sync.Mutex
	roomKind string
	roomKey  string
	sent     []*protocol.Message
	closed   bool
}

// NewMockClient creates a mock client with the given identity.
func NewMockClient(id, name string) *MockClient {
	return &MockClient{ID: id, Name: name}
}

func (c *MockClient) GetID() string   { return c.ID }
func (c *MockClient) GetName() string { return c.Name }

func (c *MockClient) GetRoomKind() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roomKind
}

func (c *MockClient) GetRoomKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roomKey
}

func (c *MockClient) SetRoom(kind, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roomKind = kind
	c.roomKey = key
}

func (c *MockClient) SendMessage(msg *protocol.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, msg)
}

func (c *MockClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Sent returns a copy of every recorded message.
func (c *MockClient) Sent() []*protocol.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*protocol.Message, len(c.sent))
	copy(out, c.sent)
	return out
}

// SentOfType returns the recorded messages with the given type, in order.
func (c *MockClient) SentOfType(t protocol.MessageType) []*protocol.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*protocol.Message
	for _, m := range c.sent {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// Closed reports whether Close was called.
func (c *MockClient) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Reset drops all recorded messages.
func (c *MockClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = nil
}
