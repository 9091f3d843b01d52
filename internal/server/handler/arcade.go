package handler

import (
	"github.com/JackT-C/poker/internal/apperrors"
	"github.com/JackT-C/poker/internal/game/arcade"
	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
	"github.com/JackT-C/poker/internal/types"
)

// readier is implemented by every arcade engine.
type readier interface {
	Ready(playerID string) error
}

// handleReady flags the client's seat ready in its arcade room.
func (h *Handler) handleReady(client types.ClientInterface) {
	s, err := sessionAs[readier](h, client)
	if err != nil {
		sendError(client, err)
		return
	}
	reply(client, s.Ready(client.GetID()))
}

// handleClickReport stores a click-race progress report.
func (h *Handler) handleClickReport(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.ClickReportPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	if payload.Clicks < 0 {
		sendError(client, apperrors.ErrInvalidAction)
		return
	}

	s, err := sessionAs[*arcade.ClickRace](h, client)
	if err != nil {
		sendError(client, err)
		return
	}
	reply(client, s.Report(client.GetID(), payload.Clicks))
}

// handlePaddleMove positions the client's paddle.
func (h *Handler) handlePaddleMove(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.PaddleMovePayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	s, err := sessionAs[*arcade.Paddle](h, client)
	if err != nil {
		sendError(client, err)
		return
	}
	reply(client, s.Move(client.GetID(), payload.Y))
}

// handleArenaMove updates position and aim in the arena.
func (h *Handler) handleArenaMove(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.ArenaMovePayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	s, err := sessionAs[*arcade.Arena](h, client)
	if err != nil {
		sendError(client, err)
		return
	}
	reply(client, s.Move(client.GetID(), payload.X, payload.Y, payload.Angle))
}

// handleArenaShoot fires a projectile in the arena.
func (h *Handler) handleArenaShoot(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.ArenaShootPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	s, err := sessionAs[*arcade.Arena](h, client)
	if err != nil {
		sendError(client, err)
		return
	}
	reply(client, s.Shoot(client.GetID(), payload.X, payload.Y, payload.Angle))
}

// handleTargetHit records a reflex target hit.
func (h *Handler) handleTargetHit(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.TargetHitPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	if payload.TimeMs < 0 {
		sendError(client, apperrors.ErrInvalidAction)
		return
	}

	s, err := sessionAs[*arcade.Reflex](h, client)
	if err != nil {
		sendError(client, err)
		return
	}
	reply(client, s.Hit(client.GetID(), payload.TimeMs))
}
