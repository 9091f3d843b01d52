// Package room owns the per-room membership envelope and the registry of
// live rooms. Game rules live in the engine packages; a room carries one
// engine session for its game kind.
package room

import (
	"sync"
	"time"

	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
	"github.com/JackT-C/poker/internal/types"
)

// Kind identifies which game a room plays.
type Kind string

const (
	KindPoker     Kind = "poker"
	KindBlackjack Kind = "blackjack"
	KindClickRace Kind = "clickrace"
	KindPaddle    Kind = "paddle"
	KindArena     Kind = "arena"
	KindReflex    Kind = "reflex"
)

// maxPlayers is the per-game seat cap.
var maxPlayers = map[Kind]int{
	KindPoker:     6,
	KindBlackjack: 5,
	KindClickRace: 2,
	KindPaddle:    2,
	KindArena:     4,
	KindReflex:    2,
}

// ParseKind validates a client-supplied game name.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	_, ok := maxPlayers[k]
	return k, ok
}

// MaxPlayers returns the seat cap for a game kind.
func MaxPlayers(kind Kind) int {
	return maxPlayers[kind]
}

// StartingChips is the bankroll a player sits down with.
const StartingChips = 1000

// Player is a seated room member, human or bot. Humans carry their
// connection; bots have a nil Client and never receive private sends.
type Player struct {
	ID    string
	Name  string
	Chips int
	IsBot bool

	Client types.ClientInterface
}

// Send delivers a private message to a human player; bots drop it.
func (p *Player) Send(msg *protocol.Message) {
	if p.Client != nil {
		p.Client.SendMessage(msg)
	}
}

// Session is the game engine attached to a room. Every method is invoked
// with the owning room's lock held.
type Session interface {
	// PlayerJoined seats a new player in the engine's state.
	PlayerJoined(p *Player)
	// PlayerLeft reconciles an active game with a departed player.
	PlayerLeft(p *Player)
	// Snapshot returns the broadcastable room state.
	Snapshot() any
	// Stop cancels scheduled work; the session must ignore any timer that
	// fires afterwards.
	Stop()
}

// Room is one active game instance: ordered membership (join order is turn
// order) plus the engine session for its kind. All mutation happens under
// the room lock, which makes each gateway handler atomic per room.
type Room struct {
	Kind      Kind
	Key       string
	Players   []*Player
	Session   Session
	CreatedAt time.Time

	mu sync.Mutex
}

// Lock acquires the room lock.
func (r *Room) Lock() { r.mu.Lock() }

// Unlock releases the room lock.
func (r *Room) Unlock() { r.mu.Unlock() }

// PlayerByID returns the seated player with the given id. Callers hold the
// room lock.
func (r *Room) PlayerByID(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// SeatIndex returns the player's position in turn order, -1 if absent.
// Callers hold the room lock.
func (r *Room) SeatIndex(id string) int {
	for i, p := range r.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Broadcast sends a message to every human in the room. Sends go to
// buffered per-client channels, so broadcasting under the room lock is
// safe and preserves per-room ordering.
func (r *Room) Broadcast(msg *protocol.Message) {
	for _, p := range r.Players {
		p.Send(msg)
	}
}

// BroadcastExcept sends a message to everyone but one player.
func (r *Room) BroadcastExcept(playerID string, msg *protocol.Message) {
	for _, p := range r.Players {
		if p.ID != playerID {
			p.Send(msg)
		}
	}
}

// SendTo sends a message to a single seated player.
func (r *Room) SendTo(playerID string, msg *protocol.Message) {
	if p := r.PlayerByID(playerID); p != nil {
		p.Send(msg)
	}
}

// Announce broadcasts a system chat line to the room.
func (r *Room) Announce(text string) {
	r.Broadcast(codec.MustNewMessage(protocol.MsgChatSystem, protocol.ChatSystemPayload{Text: text}))
}

// SnapshotUpdate broadcasts a room_update with the session snapshot and an
// optional announcement line.
func (r *Room) SnapshotUpdate(message string) {
	r.Broadcast(codec.MustNewMessage(protocol.MsgRoomUpdate, protocol.RoomUpdatePayload{
		Room:    r.Session.Snapshot(),
		Message: message,
	}))
}
