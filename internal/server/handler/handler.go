// Package handler routes decoded protocol messages from connected clients
// to the room registry and the game engines.
package handler

import (
	"errors"
	"log"

	"github.com/JackT-C/poker/internal/apperrors"
	"github.com/JackT-C/poker/internal/game/bot"
	"github.com/JackT-C/poker/internal/game/room"
	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
	"github.com/JackT-C/poker/internal/types"
)

// Deps are the collaborators a Handler needs.
type Deps struct {
	Registry *room.Registry
}

// Handler is the message dispatcher. It holds no per-connection state;
// room membership lives on the client and the registry.
type Handler struct {
	registry *room.Registry
	botNamer *bot.Namer
	handlers map[protocol.MessageType]handlerFunc
}

type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// New creates the dispatcher.
func New(deps Deps) *Handler {
	h := &Handler{
		registry: deps.Registry,
		botNamer: &bot.Namer{},
	}
	h.initHandlers()
	return h
}

func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// room operations
		protocol.MsgJoinRoom:  h.handleJoinRoom,
		protocol.MsgLeaveRoom: func(c types.ClientInterface, _ *protocol.Message) { h.handleLeaveRoom(c) },
		protocol.MsgAddBot:    func(c types.ClientInterface, _ *protocol.Message) { h.handleAddBot(c) },

		// card games
		protocol.MsgStartGame:   func(c types.ClientInterface, _ *protocol.Message) { h.handleStartGame(c) },
		protocol.MsgResetGame:   func(c types.ClientInterface, _ *protocol.Message) { h.handleResetGame(c) },
		protocol.MsgPokerAction: h.handlePokerAction,
		protocol.MsgPlaceBet:    h.handlePlaceBet,
		protocol.MsgHit:         func(c types.ClientInterface, _ *protocol.Message) { h.handleHit(c) },
		protocol.MsgStand:       func(c types.ClientInterface, _ *protocol.Message) { h.handleStand(c) },

		// arcade games
		protocol.MsgReady:       func(c types.ClientInterface, _ *protocol.Message) { h.handleReady(c) },
		protocol.MsgClickReport: h.handleClickReport,
		protocol.MsgPaddleMove:  h.handlePaddleMove,
		protocol.MsgArenaMove:   h.handleArenaMove,
		protocol.MsgArenaShoot:  h.handleArenaShoot,
		protocol.MsgTargetHit:   h.handleTargetHit,

		// chat
		protocol.MsgChat: h.handleChat,
	}
}

// Handle dispatches one decoded message.
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	fn, ok := h.handlers[msg.Type]
	if !ok {
		log.Printf("unknown message type %q from %s", msg.Type, client.GetID())
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeUnknown))
		return
	}
	fn(client, msg)
}

// currentRoom resolves the client's room from its stored membership.
func (h *Handler) currentRoom(client types.ClientInterface) (*room.Room, error) {
	kind, ok := room.ParseKind(client.GetRoomKind())
	if !ok || client.GetRoomKey() == "" {
		return nil, apperrors.ErrNotInRoom
	}
	r := h.registry.Get(kind, client.GetRoomKey())
	if r == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	return r, nil
}

// sendError reports a rejected operation back to the offending client.
func sendError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(codec.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
		return
	}
	client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}

// reply sends the error if there is one; successes are broadcast by the
// engines themselves.
func reply(client types.ClientInterface, err error) {
	if err != nil {
		sendError(client, err)
	}
}
