package handler

import (
	"fmt"
	"strings"

	"github.com/JackT-C/poker/internal/apperrors"
	"github.com/JackT-C/poker/internal/game/bot"
	"github.com/JackT-C/poker/internal/game/room"
	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
	"github.com/JackT-C/poker/internal/types"
)

// handleJoinRoom seats the client in the requested room, creating it on
// first join. A client already seated somewhere is moved.
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	kind, ok := room.ParseKind(payload.Game)
	if !ok {
		client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeInvalidMsg,
			fmt.Sprintf("unknown game %q", payload.Game)))
		return
	}
	key := strings.TrimSpace(payload.RoomKey)
	if key == "" {
		client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeInvalidMsg, "missing room key"))
		return
	}

	// moving between rooms implies leaving the old one
	if client.GetRoomKey() != "" {
		h.handleLeaveRoom(client)
	}

	name := strings.TrimSpace(payload.PlayerName)
	if name == "" {
		name = client.GetName()
	}

	r := h.registry.GetOrCreate(kind, key)
	p, err := h.registry.Join(r, client.GetID(), name, client, false)
	if err != nil {
		sendError(client, err)
		return
	}

	r.Lock()
	r.Announce(fmt.Sprintf("%s joined the table", p.Name))
	r.SnapshotUpdate(fmt.Sprintf("%s joined", p.Name))
	r.Unlock()
}

// handleLeaveRoom removes the client from its room, if any.
func (h *Handler) handleLeaveRoom(client types.ClientInterface) {
	r, err := h.currentRoom(client)
	if err != nil {
		sendError(client, err)
		return
	}

	p := h.registry.Leave(r, client.GetID())
	if p == nil {
		return
	}

	r.Lock()
	if len(r.Players) > 0 {
		r.Announce(fmt.Sprintf("%s left the table", p.Name))
		r.SnapshotUpdate(fmt.Sprintf("%s left", p.Name))
	}
	r.Unlock()
}

// handleAddBot seats a bot in the client's room. Only the card games know
// how to play one.
func (h *Handler) handleAddBot(client types.ClientInterface) {
	r, err := h.currentRoom(client)
	if err != nil {
		sendError(client, err)
		return
	}
	if r.Kind != room.KindPoker && r.Kind != room.KindBlackjack {
		sendError(client, apperrors.ErrInvalidAction)
		return
	}

	name := h.botNamer.Next()
	p, err := h.registry.Join(r, bot.NewID(), name, nil, true)
	if err != nil {
		sendError(client, err)
		return
	}

	r.Lock()
	r.Announce(fmt.Sprintf("%s joined the table", p.Name))
	r.SnapshotUpdate(fmt.Sprintf("%s joined", p.Name))
	r.Unlock()
}

// HandleDisconnect cleans up after a dropped connection. Unlike an
// explicit leave_room no reply goes to the leaver.
func (h *Handler) HandleDisconnect(client types.ClientInterface) {
	r, err := h.currentRoom(client)
	if err != nil {
		return
	}

	p := h.registry.Leave(r, client.GetID())
	if p == nil {
		return
	}

	r.Lock()
	if len(r.Players) > 0 {
		r.Announce(fmt.Sprintf("%s disconnected", p.Name))
		r.SnapshotUpdate(fmt.Sprintf("%s disconnected", p.Name))
	}
	r.Unlock()
}
