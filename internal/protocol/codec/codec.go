// Package codec encodes and decodes protocol messages. Buffers are pooled
// to keep per-message allocations off the broadcast path.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/JackT-C/poker/internal/protocol"
)

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// GetBuffer retrieves a bytes.Buffer from the pool.
func GetBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// PutBuffer returns a bytes.Buffer to the pool.
// The buffer is reset but capacity is preserved.
func PutBuffer(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

// NewMessage builds a Message with the payload marshalled to JSON.
func NewMessage(msgType protocol.MessageType, payload any) (*protocol.Message, error) {
	msg := &protocol.Message{Type: msgType}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload for %s: %w", msgType, err)
		}
		msg.Payload = data
	}
	return msg, nil
}

// MustNewMessage is NewMessage for payloads that cannot fail to marshal.
// All protocol payload types qualify.
func MustNewMessage(msgType protocol.MessageType, payload any) *protocol.Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// NewErrorMessage builds an error message from a known error code.
func NewErrorMessage(code int) *protocol.Message {
	return MustNewMessage(protocol.MsgError, protocol.ErrorPayload{
		Code:    code,
		Message: protocol.ErrorMessages[code],
	})
}

// NewErrorMessageWithText builds an error message with custom text.
func NewErrorMessageWithText(code int, text string) *protocol.Message {
	return MustNewMessage(protocol.MsgError, protocol.ErrorPayload{
		Code:    code,
		Message: text,
	})
}

// Encode serializes a message to its wire form.
func Encode(msg *protocol.Message) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	if err := json.NewEncoder(buf).Encode(msg); err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	// Copy out: the buffer goes back to the pool.
	data := make([]byte, buf.Len())
	copy(data, buf.Bytes())
	return data, nil
}

// Decode parses a wire frame into a Message.
func Decode(data []byte) (*protocol.Message, error) {
	var msg protocol.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}
	if msg.Type == "" {
		return nil, fmt.Errorf("decode message: missing type")
	}
	return &msg, nil
}

// ParsePayload unmarshals a message payload into the requested type.
func ParsePayload[T any](msg *protocol.Message) (T, error) {
	var payload T
	if len(msg.Payload) == 0 {
		return payload, fmt.Errorf("message %s: empty payload", msg.Type)
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("message %s: %w", msg.Type, err)
	}
	return payload, nil
}
