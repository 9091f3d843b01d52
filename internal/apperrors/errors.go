// Package apperrors defines the game error taxonomy shared by the room
// registry and the game engines. A GameError is reported to the offending
// connection only and never mutates room state.
package apperrors

import (
	"github.com/JackT-C/poker/internal/protocol"
)

// GameError is a rejected operation with a protocol error code.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Predefined errors.
var (
	ErrRoomNotFound      = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "room not found"}
	ErrRoomFull          = &GameError{Code: protocol.ErrCodeRoomFull, Message: "room is full"}
	ErrNotInRoom         = &GameError{Code: protocol.ErrCodeNotInRoom, Message: "you are not in a room"}
	ErrGameStarted       = &GameError{Code: protocol.ErrCodeGameStarted, Message: "game already in progress"}
	ErrGameNotStart      = &GameError{Code: protocol.ErrCodeGameNotStart, Message: "game has not started"}
	ErrNotYourTurn       = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: "not your turn"}
	ErrInsufficientChips = &GameError{Code: protocol.ErrCodeInsufficientChips, Message: "insufficient chips"}
	ErrInvalidBet        = &GameError{Code: protocol.ErrCodeInvalidBet, Message: "invalid bet amount"}
	ErrInvalidAction     = &GameError{Code: protocol.ErrCodeInvalidAction, Message: "invalid action"}
	ErrNotEnoughPlayers  = &GameError{Code: protocol.ErrCodeNotEnoughPlayers, Message: "not enough players"}
	ErrDeckExhausted     = &GameError{Code: protocol.ErrCodeDeckExhausted, Message: "deck exhausted"}
)
