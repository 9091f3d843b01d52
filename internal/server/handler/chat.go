package handler

import (
	"strings"
	"time"

	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
	"github.com/JackT-C/poker/internal/types"
)

const maxChatLen = 200

// handleChat relays a chat line to everyone in the sender's room.
func (h *Handler) handleChat(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.ChatPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	text := strings.TrimSpace(payload.Text)
	if text == "" {
		return
	}
	if len(text) > maxChatLen {
		text = text[:maxChatLen]
	}

	r, err := h.currentRoom(client)
	if err != nil {
		sendError(client, err)
		return
	}

	r.Lock()
	defer r.Unlock()

	sender := client.GetName()
	if p := r.PlayerByID(client.GetID()); p != nil {
		sender = p.Name
	}

	r.Broadcast(codec.MustNewMessage(protocol.MsgChatMessage, protocol.ChatMessagePayload{
		Sender:    sender,
		SenderID:  client.GetID(),
		Text:      text,
		Timestamp: time.Now().Unix(),
	}))
}
