package handler

import (
	"github.com/JackT-C/poker/internal/apperrors"
	"github.com/JackT-C/poker/internal/game/blackjack"
	"github.com/JackT-C/poker/internal/game/holdem"
	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
	"github.com/JackT-C/poker/internal/types"
)

// sessionAs resolves the client's room session to the concrete engine
// type, rejecting clients playing a different game.
func sessionAs[T any](h *Handler, client types.ClientInterface) (T, error) {
	var zero T
	r, err := h.currentRoom(client)
	if err != nil {
		return zero, err
	}
	s, ok := r.Session.(T)
	if !ok {
		return zero, apperrors.ErrInvalidAction
	}
	return s, nil
}

// starter is implemented by the card game engines.
type starter interface {
	Start() error
	Reset() error
}

// handleStartGame starts a round in the client's card game room.
func (h *Handler) handleStartGame(client types.ClientInterface) {
	s, err := sessionAs[starter](h, client)
	if err != nil {
		sendError(client, err)
		return
	}
	reply(client, s.Start())
}

// handleResetGame clears the table in the client's card game room.
func (h *Handler) handleResetGame(client types.ClientInterface) {
	s, err := sessionAs[starter](h, client)
	if err != nil {
		sendError(client, err)
		return
	}
	reply(client, s.Reset())
}

// handlePokerAction applies a fold/call/raise.
func (h *Handler) handlePokerAction(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.PokerActionPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	s, err := sessionAs[*holdem.Session](h, client)
	if err != nil {
		sendError(client, err)
		return
	}
	reply(client, s.HandleAction(client.GetID(), payload.Action, payload.Amount))
}

// handlePlaceBet records a blackjack bet.
func (h *Handler) handlePlaceBet(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.PlaceBetPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	s, err := sessionAs[*blackjack.Session](h, client)
	if err != nil {
		sendError(client, err)
		return
	}
	reply(client, s.PlaceBet(client.GetID(), payload.Amount))
}

// handleHit draws a blackjack card.
func (h *Handler) handleHit(client types.ClientInterface) {
	s, err := sessionAs[*blackjack.Session](h, client)
	if err != nil {
		sendError(client, err)
		return
	}
	reply(client, s.Hit(client.GetID()))
}

// handleStand stands the blackjack seat.
func (h *Handler) handleStand(client types.ClientInterface) {
	s, err := sessionAs[*blackjack.Session](h, client)
	if err != nil {
		sendError(client, err)
		return
	}
	reply(client, s.Stand(client.GetID()))
}
