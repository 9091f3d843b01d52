// Package types holds the interfaces shared between the gateway and the
// game packages, breaking what would otherwise be import cycles.
package types

import "github.com/JackT-C/poker/internal/protocol"

// ClientInterface is a connected human player as seen by the game core.
type ClientInterface interface {
	GetID() string
	GetName() string
	GetRoomKind() string
	GetRoomKey() string
	SetRoom(kind, key string)
	SendMessage(msg *protocol.Message)
	Close()
}
