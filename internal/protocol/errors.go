package protocol

// Error codes carried by error messages.
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001

	ErrCodeRoomNotFound = 2001
	ErrCodeRoomFull     = 2002
	ErrCodeNotInRoom    = 2003

	ErrCodeGameStarted       = 3001
	ErrCodeGameNotStart      = 3002
	ErrCodeNotYourTurn       = 3003
	ErrCodeInsufficientChips = 3004
	ErrCodeInvalidBet        = 3005
	ErrCodeInvalidAction     = 3006
	ErrCodeNotEnoughPlayers  = 3007
	ErrCodeDeckExhausted     = 3008
)

// ErrorMessages maps error codes to their default user-facing text.
var ErrorMessages = map[int]string{
	ErrCodeUnknown:           "unknown error",
	ErrCodeInvalidMsg:        "invalid message format",
	ErrCodeRoomNotFound:      "room not found",
	ErrCodeRoomFull:          "room is full",
	ErrCodeNotInRoom:         "you are not in a room",
	ErrCodeGameStarted:       "game already in progress",
	ErrCodeGameNotStart:      "game has not started",
	ErrCodeNotYourTurn:       "not your turn",
	ErrCodeInsufficientChips: "insufficient chips",
	ErrCodeInvalidBet:        "invalid bet amount",
	ErrCodeInvalidAction:     "invalid action",
	ErrCodeNotEnoughPlayers:  "not enough players",
	ErrCodeDeckExhausted:     "deck exhausted",
}
